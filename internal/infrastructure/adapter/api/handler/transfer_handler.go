package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/card-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/card-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/card-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// TransferHandler handles transfers between the caller's own cards
type TransferHandler struct {
	transferUseCase usecase.TransferUseCase
	logger          coreport.Logger
}

// NewTransferHandler creates a new transfer handler instance
func NewTransferHandler(transferUseCase usecase.TransferUseCase, logger coreport.Logger) *TransferHandler {
	return &TransferHandler{
		transferUseCase: transferUseCase,
		logger:          logger,
	}
}

// Transfer handles POST /api/cards/transfer
func (h *TransferHandler) Transfer(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	amount, err := entity.ValidatePositiveAmount(req.Amount)
	if err != nil {
		respondError(c, h.logger, "Invalid transfer amount", err)
		return
	}

	result, err := h.transferUseCase.Transfer(c.Request.Context(), entity.TransferCommand{
		SourceCardID:      req.SourceCardID,
		DestinationCardID: req.DestinationCardID,
		OwnerID:           identity.UserID,
		Amount:            amount,
		RequestID:         req.RequestID,
	})
	if err != nil {
		respondError(c, h.logger, "Transfer rejected", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransferResponse(result))
}

// History handles GET /api/cards/transfers
func (h *TransferHandler) History(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := h.transferUseCase.History(c.Request.Context(), identity.UserID, query.ToPageRequest())
	if err != nil {
		respondError(c, h.logger, "Error listing transfers", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPageResponse(page, dto.NewTransferRecord))
}
