package handler

import (
	"context"
	"net/http"
	"time"

	coreport "github.com/amirhossein-jamali/card-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/card-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Pinger reports whether the backing storage is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness and storage reachability
type HealthHandler struct {
	storage     Pinger
	driver      string
	poolMetrics func() any
	timeout     time.Duration
	logger      coreport.Logger
}

// NewHealthHandler creates a new health handler. poolMetrics may be nil.
func NewHealthHandler(storage Pinger, driver string, poolMetrics func() any, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		storage:     storage,
		driver:      driver,
		poolMetrics: poolMetrics,
		timeout:     2 * time.Second,
		logger:      logger,
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	resp := dto.HealthResponse{
		Status:  "ok",
		Storage: "up",
		Driver:  h.driver,
	}
	if h.poolMetrics != nil {
		resp.Pool = h.poolMetrics()
	}

	if err := h.storage.Ping(ctx); err != nil {
		h.logger.Error("Health check failed", map[string]any{
			"driver": h.driver,
			"error":  err.Error(),
		})
		resp.Status = "degraded"
		resp.Storage = "down"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}
