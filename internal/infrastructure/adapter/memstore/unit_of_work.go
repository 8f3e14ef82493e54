package memstore

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/port/persistence"
)

var _ persistence.UnitOfWork = (*UnitOfWork)(nil)

var errNoTransaction = errors.New("no transaction in context")

// UnitOfWork stages writes made with its context and applies them together on Commit
type UnitOfWork struct {
	s *Store
}

// Begin starts a new unit and returns a context bound to it
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	return context.WithValue(ctx, txKey{}, &txState{}), nil
}

// Commit applies every staged write, or none if any check fails
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx := txFrom(ctx)
	if tx == nil {
		return errNoTransaction
	}

	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	return commitLocked(tx.drain())
}

// Rollback discards staged writes
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx := txFrom(ctx)
	if tx == nil {
		return errNoTransaction
	}
	tx.drain()
	return nil
}
