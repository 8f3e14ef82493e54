package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/card-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/card-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/card-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// CardHandler serves the caller's own cards. Cards of other owners are
// reported as not found.
type CardHandler struct {
	cardUseCase usecase.CardUseCase
	logger      coreport.Logger
}

// NewCardHandler creates a new card handler instance
func NewCardHandler(cardUseCase usecase.CardUseCase, logger coreport.Logger) *CardHandler {
	return &CardHandler{
		cardUseCase: cardUseCase,
		logger:      logger,
	}
}

// ListCards handles GET /api/cards
func (h *CardHandler) ListCards(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := h.cardUseCase.ListOwnerCards(c.Request.Context(), identity.UserID, query.ToPageRequest())
	if err != nil {
		respondError(c, h.logger, "Error listing cards", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPageResponse(page, dto.NewCardResponse))
}

// ListAllCards handles GET /api/cards/all
func (h *CardHandler) ListAllCards(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	cards, err := h.cardUseCase.ListAllOwnerCards(c.Request.Context(), identity.UserID)
	if err != nil {
		respondError(c, h.logger, "Error listing cards", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCardResponses(cards))
}

// GetCard handles GET /api/cards/:id
func (h *CardHandler) GetCard(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	cardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	card, err := h.cardUseCase.GetOwnerCard(c.Request.Context(), identity.UserID, cardID)
	if err != nil {
		respondError(c, h.logger, "Error getting card", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCardResponse(card))
}

// IssueCard handles POST /api/cards
func (h *CardHandler) IssueCard(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req dto.IssueCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	cmd, err := issueCommandFrom(req, identity.UserID)
	if err != nil {
		respondError(c, h.logger, "Invalid card issuance request", err)
		return
	}

	card, err := h.cardUseCase.IssueCard(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, h.logger, "Card issuance rejected", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewCardResponse(card))
}

// UpdateStatus handles PATCH /api/cards/:id/status?status=
func (h *CardHandler) UpdateStatus(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	cardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	status, err := parseStatusQuery(c)
	if err != nil {
		respondError(c, h.logger, "Invalid card status", err)
		return
	}

	card, err := h.cardUseCase.SetOwnerCardStatus(c.Request.Context(), identity.UserID, cardID, status)
	if err != nil {
		respondError(c, h.logger, "Card status update rejected", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCardResponse(card))
}

// DeleteCard handles DELETE /api/cards/:id
func (h *CardHandler) DeleteCard(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	cardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.cardUseCase.DeleteOwnerCard(c.Request.Context(), identity.UserID, cardID); err != nil {
		respondError(c, h.logger, "Card deletion rejected", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// FilterCards handles GET /api/cards/filter
func (h *CardHandler) FilterCards(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

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

	page, err := h.cardUseCase.FilterCards(c.Request.Context(), filter.WithOwner(identity.UserID), query.ToPageRequest())
	if err != nil {
		respondError(c, h.logger, "Error filtering cards", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPageResponse(page, dto.NewCardResponse))
}
