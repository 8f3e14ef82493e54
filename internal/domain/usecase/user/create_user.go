package user

import (
	"context"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/card-ledger/internal/domain/error"
)

// Register creates a USER account
func (u *UserUseCase) Register(ctx context.Context, username, password string) (*entity.User, error) {
	return u.create(ctx, username, password, entity.RoleUser)
}

// CreateUser creates an account with the given role; "" means USER
func (u *UserUseCase) CreateUser(ctx context.Context, username, password, role string) (*entity.User, error) {
	parsed, err := entity.ParseRole(role)
	if err != nil {
		return nil, err
	}
	return u.create(ctx, username, password, parsed)
}

func (u *UserUseCase) create(ctx context.Context, username, password string, role entity.Role) (*entity.User, error) {
	if err := entity.ValidatePassword(password); err != nil {
		return nil, err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user, err := entity.NewUser(username, hash, role, u.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	exists, err := u.userRepo.ExistsByUsername(ctx, user.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		u.logger.Warn("Username already taken", map[string]any{
			"username": user.Username,
		})
		return nil, errs.ErrAlreadyExists
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		u.logger.Error("Failed to create user", map[string]any{
			"username": user.Username,
			"error":    err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User created", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     string(user.Role),
	})

	return user, nil
}

// EnsureDefaultAdmin creates the admin account unless the username already exists
func (u *UserUseCase) EnsureDefaultAdmin(ctx context.Context, username, password string) error {
	exists, err := u.UserExists(ctx, username)
	if err != nil {
		return err
	}

	if exists {
		u.logger.Info("Default admin already exists", map[string]any{
			"username": username,
		})
		return nil
	}

	_, err = u.create(ctx, username, password, entity.RoleAdmin)
	if err != nil && err != errs.ErrAlreadyExists {
		return err
	}
	return nil
}
