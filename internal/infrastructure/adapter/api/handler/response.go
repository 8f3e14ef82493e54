package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/card-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/card-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/card-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/card-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/card-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// respondError writes the error response for err. Client errors are logged at
// Warn, everything else at Error.
func respondError(c *gin.Context, logger coreport.Logger, message string, err error) {
	status := domainerr.HTTPStatus(err)

	fields := domainerr.LogFields(err)
	fields["path"] = c.Request.URL.Path
	fields["request_id"] = middleware.GetRequestID(c)
	if identity, ok := middleware.CurrentIdentity(c); ok {
		fields["user_id"] = identity.UserID
	}

	if status >= http.StatusInternalServerError {
		logger.Error(message, fields)
	} else {
		logger.Warn(message, fields)
	}

	c.JSON(status, dto.NewErrorResponse(err))
}

// respondBindError answers a request body or query that failed binding
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: "Invalid request format: " + err.Error(),
	})
}

// parseIDParam reads a positive numeric path parameter
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid " + name + " format",
		})
		return 0, false
	}
	return id, true
}

// parseStatusQuery reads the mandatory ?status= parameter
func parseStatusQuery(c *gin.Context) (entity.CardStatus, error) {
	raw, ok := c.GetQuery("status")
	if !ok || raw == "" {
		return "", domainerr.ErrInvalidStatus
	}
	return entity.ParseCardStatus(raw)
}

// requireIdentity returns the caller or answers 401
func requireIdentity(c *gin.Context) (entity.Identity, bool) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(domainerr.ErrUnauthenticated))
		return entity.Identity{}, false
	}
	return identity, true
}

// issueCommandFrom converts the request body into a use case command
func issueCommandFrom(req dto.IssueCardRequest, ownerID uint64) (usecase.IssueCardCommand, error) {
	expiry, err := time.Parse(dto.DateLayout, req.ExpiryDate)
	if err != nil {
		return usecase.IssueCardCommand{}, domainerr.ErrInvalidExpiryDate
	}

	var balance int64
	if req.InitialBalance != "" {
		balance, err = entity.ValidateAndConvertAmount(req.InitialBalance)
		if err != nil {
			return usecase.IssueCardCommand{}, err
		}
	}

	return usecase.IssueCardCommand{
		OwnerID:        ownerID,
		Number:         req.CardNumber,
		HolderName:     req.HolderName,
		ExpiryDate:     expiry,
		InitialBalance: balance,
	}, nil
}
