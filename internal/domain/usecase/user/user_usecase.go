package user

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/card-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/card-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/card-ledger/internal/domain/port/persistence"
)

// UserUseCase handles user-related business logic
type UserUseCase struct {
	userRepo     persistence.UserRepository
	cards        persistence.CardStore
	uow          persistence.UnitOfWork
	hasher       coreport.PasswordHasher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	userRepo persistence.UserRepository,
	cards persistence.CardStore,
	uow persistence.UnitOfWork,
	hasher coreport.PasswordHasher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		cards:        cards,
		uow:          uow,
		hasher:       hasher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetUser returns a user by id
func (u *UserUseCase) GetUser(ctx context.Context, userID uint64) (*entity.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}

// UserExists checks if a user with the given username exists
func (u *UserUseCase) UserExists(ctx context.Context, username string) (bool, error) {
	_, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// DeleteUser removes the user and all of their cards in one unit of work.
// Transfer records are kept; they reference cards by id only.
func (u *UserUseCase) DeleteUser(ctx context.Context, userID uint64) (err error) {
	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := u.uow.Rollback(txCtx); rbErr != nil {
				u.logger.Error("Failed to roll back user deletion", map[string]any{
					"user_id": userID,
					"error":   rbErr.Error(),
				})
			}
		}
	}()

	if _, err = u.userRepo.GetByID(txCtx, userID); err != nil {
		return err
	}

	removed, err := u.cards.DeleteByOwner(txCtx, userID)
	if err != nil {
		return err
	}

	if err = u.userRepo.Delete(txCtx, userID); err != nil {
		return err
	}

	if err = u.uow.Commit(txCtx); err != nil {
		return err
	}

	u.logger.Info("User deleted", map[string]any{
		"user_id":       userID,
		"cards_removed": removed,
	})
	return nil
}
