package memstore

import (
	"context"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/card-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/card-ledger/internal/domain/port/persistence"
)

// TransferRepository implements persistence.TransferRepository in memory
type TransferRepository struct {
	s *Store
}

var _ persistence.TransferRepository = (*TransferRepository)(nil)

// Create appends a transfer record, staged when ctx carries an open unit
func (r *TransferRepository) Create(ctx context.Context, transfer *entity.Transfer) error {
	record := *transfer
	key := transferKey{ownerID: record.OwnerID, requestID: record.RequestID}

	return r.s.run(ctx, stagedOp{
		check: func() error {
			if record.RequestID == "" {
				return nil
			}
			if _, taken := r.s.transferKeys[key]; taken {
				return errs.ErrIdempotencyKeyReused
			}
			return nil
		},
		apply: func() {
			r.s.transfers = append(r.s.transfers, &record)
			if record.RequestID != "" {
				r.s.transferKeys[key] = len(r.s.transfers) - 1
			}
		},
	})
}

// GetByRequestID finds the owner's transfer recorded under requestID
func (r *TransferRepository) GetByRequestID(_ context.Context, ownerID uint64, requestID string) (*entity.Transfer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	idx, ok := r.s.transferKeys[transferKey{ownerID: ownerID, requestID: requestID}]
	if !ok {
		return nil, errs.ErrNotFound
	}
	cp := *r.s.transfers[idx]
	return &cp, nil
}

// ListByOwner returns the owner's transfers, newest first
func (r *TransferRepository) ListByOwner(_ context.Context, ownerID uint64, page entity.PageRequest) (entity.Page[*entity.Transfer], error) {
	page = page.Normalize(entity.DefaultPageSize, entity.MaxPageSize)

	r.s.mu.RLock()
	owned := make([]*entity.Transfer, 0)
	for i := len(r.s.transfers) - 1; i >= 0; i-- {
		if t := r.s.transfers[i]; t.OwnerID == ownerID {
			cp := *t
			owned = append(owned, &cp)
		}
	}
	r.s.mu.RUnlock()

	start := page.Offset()
	if start < 0 || start > len(owned) {
		start = len(owned)
	}
	end := start + page.Size
	if end > len(owned) {
		end = len(owned)
	}
	return entity.NewPage(owned[start:end], page, int64(len(owned))), nil
}
