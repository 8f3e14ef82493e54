package usecase

import (
	"context"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
)

// UserUseCase defines user registration and administration
type UserUseCase interface {
	// Register creates a USER account
	Register(ctx context.Context, username, password string) (*entity.User, error)

	// CreateUser creates an account with the given role; "" means USER
	CreateUser(ctx context.Context, username, password, role string) (*entity.User, error)

	// GetUser returns a user by id
	GetUser(ctx context.Context, userID uint64) (*entity.User, error)

	// DeleteUser removes the user together with all of their cards
	DeleteUser(ctx context.Context, userID uint64) error

	// EnsureDefaultAdmin creates the admin account unless the username already exists
	EnsureDefaultAdmin(ctx context.Context, username, password string) error
}
