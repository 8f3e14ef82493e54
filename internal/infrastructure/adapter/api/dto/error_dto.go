package dto

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/card-ledger/internal/domain/error"
)

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse builds the response body for err. Server-side failures
// never expose their message.
func NewErrorResponse(err error) ErrorResponse {
	if domainerr.HTTPStatus(err) >= http.StatusInternalServerError {
		return ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Internal server error",
		}
	}
	return ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: err.Error(),
	}
}
