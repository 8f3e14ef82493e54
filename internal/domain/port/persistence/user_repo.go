package persistence

import (
	"context"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
)

// UserRepository defines methods to interact with user data
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByUsername retrieves a user by username
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has the username
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// ExistsByUsername reports whether the username is taken
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Create creates a new user and assigns its ID
	//
	// Possible errors:
	// - ErrAlreadyExists: If the username is taken
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// Delete removes a user
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	Delete(ctx context.Context, id uint64) error
}
