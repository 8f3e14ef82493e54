package auth

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/card-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/card-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/card-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/card-ledger/internal/domain/port/usecase"
)

// Service exchanges credentials for tokens and tokens for identities
type Service struct {
	users  persistence.UserRepository
	hasher coreport.PasswordHasher
	tokens coreport.TokenService
	logger coreport.Logger
}

// NewService creates a new auth Service
func NewService(
	users persistence.UserRepository,
	hasher coreport.PasswordHasher,
	tokens coreport.TokenService,
	logger coreport.Logger,
) *Service {
	return &Service{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

// Login verifies credentials and issues a token. Unknown usernames and wrong
// passwords produce the same error.
func (s *Service) Login(ctx context.Context, username, password string) (*usecase.LoginResult, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			s.logger.Warn("Login failed", map[string]any{"username": username, "reason": "unknown_user"})
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		s.logger.Warn("Login failed", map[string]any{"username": username, "reason": "bad_password"})
		return nil, errs.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User logged in", map[string]any{
		"user_id": user.ID,
		"role":    string(user.Role),
	})

	return &usecase.LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// Authenticate verifies the token and reloads the user so that deleted
// accounts and role changes take effect before the token expires
func (s *Service) Authenticate(ctx context.Context, token string) (entity.Identity, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return entity.Identity{}, errs.ErrUnauthenticated
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return entity.Identity{}, errs.ErrUnauthenticated
		}
		return entity.Identity{}, err
	}

	return entity.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}
