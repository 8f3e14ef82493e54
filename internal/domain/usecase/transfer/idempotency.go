package transfer

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/card-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/card-ledger/internal/domain/port/persistence"
)

// IdempotencyHandler looks up earlier transfers recorded under a client request id
type IdempotencyHandler struct {
	transferRepo persistence.TransferRepository
}

// NewIdempotencyHandler creates a new IdempotencyHandler
func NewIdempotencyHandler(transferRepo persistence.TransferRepository) *IdempotencyHandler {
	return &IdempotencyHandler{
		transferRepo: transferRepo,
	}
}

// CheckIdempotency returns the stored transfer for cmd.RequestID, if any.
// A stored transfer with different parameters yields ErrIdempotencyKeyReused.
func (h *IdempotencyHandler) CheckIdempotency(
	ctx context.Context,
	cmd entity.TransferCommand,
) (*entity.Transfer, bool, error) {
	if cmd.RequestID == "" {
		return nil, false, nil
	}

	existing, err := h.transferRepo.GetByRequestID(ctx, cmd.OwnerID, cmd.RequestID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to look up request id: %w", err)
	}

	if !existing.Matches(cmd) {
		return nil, true, errs.ErrIdempotencyKeyReused
	}
	return existing, true, nil
}
