package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/card-ledger/internal/domain/error"
)

// Transfer is the immutable record of a completed movement between two cards
type Transfer struct {
	ID                string // uuid
	RequestID         string // optional client idempotency key
	SourceCardID      uint64
	DestinationCardID uint64
	OwnerID           uint64
	Amount            int64 // cents
	CreatedAt         time.Time
}

// TransferCommand is a request to move funds between two cards of one owner
type TransferCommand struct {
	SourceCardID      uint64
	DestinationCardID uint64
	OwnerID           uint64
	Amount            int64
	RequestID         string
}

// Validate checks the preconditions that need no storage access
func (c TransferCommand) Validate() error {
	if c.Amount <= 0 {
		return errs.ErrNonPositiveAmount
	}
	if c.SourceCardID == 0 || c.DestinationCardID == 0 {
		return errs.ErrInvalidRequest
	}
	if c.SourceCardID == c.DestinationCardID {
		return errs.ErrSelfTransfer
	}
	return nil
}

// Matches reports whether a stored transfer was produced by an equivalent command
func (t *Transfer) Matches(c TransferCommand) bool {
	return t.SourceCardID == c.SourceCardID &&
		t.DestinationCardID == c.DestinationCardID &&
		t.OwnerID == c.OwnerID &&
		t.Amount == c.Amount
}

// GetAmount returns the amount formatted with 2 decimal places
func (t *Transfer) GetAmount() string {
	return AmountInCentsToString(t.Amount)
}
