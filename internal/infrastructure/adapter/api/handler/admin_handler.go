package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/card-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/card-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/card-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/card-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AdminHandler serves the /api/admin routes. Nothing here is owner scoped.
type AdminHandler struct {
	cardUseCase      usecase.CardUseCase
	userUseCase      usecase.UserUseCase
	lifecycleUseCase usecase.LifecycleUseCase
	logger           coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(
	cardUseCase usecase.CardUseCase,
	userUseCase usecase.UserUseCase,
	lifecycleUseCase usecase.LifecycleUseCase,
	logger coreport.Logger,
) *AdminHandler {
	return &AdminHandler{
		cardUseCase:      cardUseCase,
		userUseCase:      userUseCase,
		lifecycleUseCase: lifecycleUseCase,
		logger:           logger,
	}
}

// ListCards handles GET /api/admin/cards
func (h *AdminHandler) ListCards(c *gin.Context) {
	cards, err := h.cardUseCase.ListAllCards(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "Error listing cards", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCardResponses(cards))
}

// IssueCard handles POST /api/admin/cards?username=
func (h *AdminHandler) IssueCard(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		respondError(c, h.logger, "Missing username", domainerr.ErrInvalidRequest)
		return
	}

	var req dto.IssueCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	cmd, err := issueCommandFrom(req, 0)
	if err != nil {
		respondError(c, h.logger, "Invalid card issuance request", err)
		return
	}

	card, err := h.cardUseCase.IssueCardForUsername(c.Request.Context(), username, cmd)
	if err != nil {
		respondError(c, h.logger, "Card issuance rejected", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewCardResponse(card))
}

// UpdateStatus handles PATCH /api/admin/cards/:id/status?status=
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	cardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	status, err := parseStatusQuery(c)
	if err != nil {
		respondError(c, h.logger, "Invalid card status", err)
		return
	}

	card, err := h.cardUseCase.SetCardStatus(c.Request.Context(), cardID, status)
	if err != nil {
		respondError(c, h.logger, "Card status update rejected", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCardResponse(card))
}

// DeleteCard handles DELETE /api/admin/cards/:id
func (h *AdminHandler) DeleteCard(c *gin.Context) {
	cardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.cardUseCase.DeleteCard(c.Request.Context(), cardID); err != nil {
		respondError(c, h.logger, "Card deletion rejected", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// FilterCards handles GET /api/admin/cards/filter. userId narrows to one owner.
func (h *AdminHandler) FilterCards(c *gin.Context) {
	var query dto.CardFilterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	filter, err := query.ToFilter()
	if err != nil {
		respondError(c, h.logger, "Invalid card filter", err)
		return
	}
	if query.UserID != 0 {
		filter = filter.WithOwner(query.UserID)
	}

	page, err := h.cardUseCase.FilterCards(c.Request.Context(), filter, query.ToPageRequest())
	if err != nil {
		respondError(c, h.logger, "Error filtering cards", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPageResponse(page, dto.NewCardResponse))
}

// CreateUser handles POST /api/admin/users
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userUseCase.CreateUser(c.Request.Context(), req.Username, req.Password, req.Role)
	if err != nil {
		respondError(c, h.logger, "User creation rejected", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// DeleteUser handles DELETE /api/admin/users/:id. The user's cards go with it.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.userUseCase.DeleteUser(c.Request.Context(), userID); err != nil {
		respondError(c, h.logger, "User deletion rejected", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Sweep handles POST /api/admin/sweep
func (h *AdminHandler) Sweep(c *gin.Context) {
	expired, err := h.lifecycleUseCase.Sweep(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "Manual expiration sweep failed", err)
		return
	}

	h.logger.Info("Manual expiration sweep completed", map[string]any{
		"expired": expired,
	})
	c.JSON(http.StatusOK, dto.SweepResponse{Expired: expired})
}
