package dto

import (
	"time"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/card-ledger/internal/domain/port/usecase"
)

// TransferRequest represents the API request for moving funds between two own cards
type TransferRequest struct {
	SourceCardID      uint64 `json:"sourceCardId" binding:"required"`
	DestinationCardID uint64 `json:"destinationCardId" binding:"required"`
	Amount            string `json:"amount" binding:"required,amount"`
	RequestID         string `json:"requestId" binding:"omitempty,max=64"`
}

// TransferResponse represents the API response for a processed transfer
type TransferResponse struct {
	TransferID         string `json:"transferId"`
	RequestID          string `json:"requestId,omitempty"`
	SourceCardID       uint64 `json:"sourceCardId"`
	DestinationCardID  uint64 `json:"destinationCardId"`
	Amount             string `json:"amount"`
	SourceBalance      string `json:"sourceBalance,omitempty"`
	DestinationBalance string `json:"destinationBalance,omitempty"`
	Replayed           bool   `json:"replayed"`
	CreatedAt          string `json:"createdAt"`
}

// NewTransferResponse converts a transfer result. Balances are omitted on replay
// since no money moved.
func NewTransferResponse(result *usecase.TransferResult) TransferResponse {
	resp := NewTransferRecord(result.Transfer)
	resp.Replayed = result.Replayed
	if !result.Replayed {
		if result.Source != nil {
			resp.SourceBalance = result.Source.GetBalance()
		}
		if result.Destination != nil {
			resp.DestinationBalance = result.Destination.GetBalance()
		}
	}
	return resp
}

// NewTransferRecord converts a stored transfer for history listings
func NewTransferRecord(t *entity.Transfer) TransferResponse {
	return TransferResponse{
		TransferID:        t.ID,
		RequestID:         t.RequestID,
		SourceCardID:      t.SourceCardID,
		DestinationCardID: t.DestinationCardID,
		Amount:            t.GetAmount(),
		CreatedAt:         t.CreatedAt.UTC().Format(time.RFC3339),
	}
}
