package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
)

// LoginResult is a successful login
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// AuthUseCase exchanges credentials for tokens and tokens for identities
type AuthUseCase interface {
	// Login verifies credentials and issues a token
	Login(ctx context.Context, username, password string) (*LoginResult, error)

	// Authenticate verifies a token and resolves the caller
	Authenticate(ctx context.Context, token string) (entity.Identity, error)
}
