package usecase

import (
	"context"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
)

// TransferResult describes a completed transfer
type TransferResult struct {
	Transfer    *entity.Transfer
	Source      *entity.Card
	Destination *entity.Card
	// Replayed is set when the request id matched an earlier transfer and no money moved
	Replayed bool
}

// TransferUseCase moves funds between two cards of one owner
type TransferUseCase interface {
	// Transfer executes the command atomically
	Transfer(ctx context.Context, cmd entity.TransferCommand) (*TransferResult, error)

	// History lists the owner's transfers, newest first
	History(ctx context.Context, ownerID uint64, page entity.PageRequest) (entity.Page[*entity.Transfer], error)
}
