package main

import (
	"context"
	"fmt"

	coreport "github.com/amirhossein-jamali/card-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/card-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/card-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/card-ledger/internal/infrastructure/adapter/memstore"
	"github.com/amirhossein-jamali/card-ledger/internal/infrastructure/config"
)

// storage bundles the persistence ports of the selected backend
type storage struct {
	driver      string
	cards       persistence.CardStore
	users       persistence.UserRepository
	transfers   persistence.TransferRepository
	uow         persistence.UnitOfWork
	poolMetrics func() any
	close       func() error
}

// openStorage connects and migrates the configured backend
func openStorage(ctx context.Context, cfg *config.Config, logger coreport.Logger, tp coreport.TimeProvider) (*storage, error) {
	switch cfg.Database.Driver {
	case config.DriverMemory:
		logger.Warn("Using in-memory storage; data is lost on restart", nil)
		store := memstore.New()
		return &storage{
			driver:    config.DriverMemory,
			cards:     store.Cards(),
			users:     store.Users(),
			transfers: store.Transfers(),
			uow:       store.UnitOfWork(),
			close:     func() error { return nil },
		}, nil

	case config.DriverPostgres:
		dbConfig := database.FromAppConfig(cfg)
		if err := dbConfig.Validate(); err != nil {
			return nil, fmt.Errorf("invalid database configuration: %w", err)
		}

		dbManager := database.NewManager(dbConfig, logger, tp)
		if _, err := dbManager.Connect(ctx); err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := dbManager.Migrate(ctx); err != nil {
			_ = dbManager.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		return &storage{
			driver:      config.DriverPostgres,
			cards:       dbManager.CardStore(),
			users:       dbManager.UserRepository(),
			transfers:   dbManager.TransferRepository(),
			uow:         dbManager.CreateUnitOfWork(),
			poolMetrics: func() any { return dbManager.PoolMetrics() },
			close:       dbManager.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
}
