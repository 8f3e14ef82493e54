package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/card-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/card-ledger/internal/domain/port/usecase"
)

// SeedDefaultAdmin creates the configured admin account unless the username
// is already taken. An empty username disables seeding.
func SeedDefaultAdmin(ctx context.Context, users usecase.UserUseCase, username, password string, logger coreport.Logger) error {
	if username == "" {
		logger.Info("Default admin seeding disabled", nil)
		return nil
	}

	if err := users.EnsureDefaultAdmin(ctx, username, password); err != nil {
		logger.Error("Failed to seed default admin", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return err
	}

	logger.Info("Default admin ready", map[string]any{
		"username": username,
	})
	return nil
}
