package persistence

import (
	"context"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
)

// TransferRepository stores immutable transfer records
type TransferRepository interface {
	// Create saves a transfer record. Called with the context handed to a
	// CardPairMutation so the record commits with the balance changes.
	//
	// Possible errors:
	// - ErrIdempotencyKeyReused: If the owner already has a record with the request id
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transfer *entity.Transfer) error

	// GetByRequestID finds the owner's transfer recorded under a client request id
	//
	// Possible errors:
	// - ErrNotFound: If there is no such record
	GetByRequestID(ctx context.Context, ownerID uint64, requestID string) (*entity.Transfer, error)

	// ListByOwner returns the owner's transfers, newest first
	ListByOwner(ctx context.Context, ownerID uint64, page entity.PageRequest) (entity.Page[*entity.Transfer], error)
}
