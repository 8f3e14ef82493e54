package memstore

import (
	"context"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/card-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/card-ledger/internal/domain/port/persistence"
)

// UserRepository implements persistence.UserRepository in memory
type UserRepository struct {
	s *Store
}

var _ persistence.UserRepository = (*UserRepository)(nil)

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(_ context.Context, id uint64) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.s.mu.RLock()
	id, ok := r.s.usernames[username]
	r.s.mu.RUnlock()

	if !ok {
		return nil, errs.ErrUserNotFound
	}
	return r.GetByID(ctx, id)
}

// ExistsByUsername reports whether the username is taken
func (r *UserRepository) ExistsByUsername(_ context.Context, username string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.usernames[username]
	return ok, nil
}

// Create stores a new user and assigns its ID
func (r *UserRepository) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, taken := r.s.usernames[user.Username]; taken {
		return errs.ErrAlreadyExists
	}

	r.s.nextUserID++
	user.ID = r.s.nextUserID
	cp := *user
	r.s.users[user.ID] = &cp
	r.s.usernames[user.Username] = user.ID
	return nil
}

// Delete removes a user
func (r *UserRepository) Delete(ctx context.Context, id uint64) error {
	return r.s.run(ctx, stagedOp{
		check: func() error {
			if _, ok := r.s.users[id]; !ok {
				return errs.ErrUserNotFound
			}
			return nil
		},
		apply: func() {
			if user, ok := r.s.users[id]; ok {
				delete(r.s.usernames, user.Username)
				delete(r.s.users, id)
			}
		},
	})
}
