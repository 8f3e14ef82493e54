package persistence

import (
	"context"
)

// UnitOfWork coordinates operations across repositories so they commit or
// roll back together. Repositories called with the context returned by Begin
// participate in the unit.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error
}
