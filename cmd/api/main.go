package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	authUseCase "github.com/amirhossein-jamali/card-ledger/internal/domain/usecase/auth"
	cardUseCase "github.com/amirhossein-jamali/card-ledger/internal/domain/usecase/card"
	lifecycleUseCase "github.com/amirhossein-jamali/card-ledger/internal/domain/usecase/lifecycle"
	transferUseCase "github.com/amirhossein-jamali/card-ledger/internal/domain/usecase/transfer"
	userUseCase "github.com/amirhossein-jamali/card-ledger/internal/domain/usecase/user"

	"github.com/amirhossein-jamali/card-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/card-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/card-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/card-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/card-ledger/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/card-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/card-ledger/internal/infrastructure/adapter/scheduler"
	"github.com/amirhossein-jamali/card-ledger/internal/infrastructure/adapter/security"
	timeProvider "github.com/amirhossein-jamali/card-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/card-ledger/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Production: cfg.IsProduction() || strings.EqualFold(cfg.Logger.Format, "json"),
		Level:      cfg.Logger.Level,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	tp, err := timeProvider.NewRealTimeProvider(cfg.Ledger.Timezone)
	if err != nil {
		appLogger.Error("Invalid ledger timezone", map[string]any{"timezone": cfg.Ledger.Timezone, "error": err.Error()})
		os.Exit(1)
	}

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), time.Minute)
	store, err := openStorage(startupCtx, cfg, appLogger, tp)
	cancelStartup()
	if err != nil {
		appLogger.Error("Failed to open storage", map[string]any{"driver": cfg.Database.Driver, "error": err.Error()})
		os.Exit(1)
	}
	defer func() {
		if err := store.close(); err != nil {
			appLogger.Error("Failed to close storage", map[string]any{"error": err.Error()})
		}
	}()

	// Adapters
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens, err := security.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL, tp)
	if err != nil {
		appLogger.Error("Failed to create token service", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	ids := idgen.NewUUIDGenerator()

	// Use cases
	lifecycle := lifecycleUseCase.NewManager(store.cards, tp, appLogger)
	cards := cardUseCase.NewService(store.cards, store.users, lifecycle, tp, appLogger, cardUseCase.PagingPolicy{
		DefaultSize: cfg.Ledger.DefaultPageSize,
		MaxSize:     cfg.Ledger.MaxPageSize,
	})
	transfers := transferUseCase.NewEngine(store.cards, store.transfers, lifecycle, ids, tp, appLogger).
		WithPaging(cfg.Ledger.DefaultPageSize, cfg.Ledger.MaxPageSize)
	users := userUseCase.NewUserUseCase(store.users, store.cards, store.uow, hasher, tp, appLogger)
	auth := authUseCase.NewService(store.users, hasher, tokens, appLogger)

	switch {
	case cfg.Admin.Username == "":
	case cfg.Admin.Password == "":
		appLogger.Warn("Default admin not seeded: CL_ADMIN_PASSWORD is empty", map[string]any{"username": cfg.Admin.Username})
	default:
		if err := migration.SeedDefaultAdmin(context.Background(), users, cfg.Admin.Username, cfg.Admin.Password, appLogger); err != nil {
			appLogger.Error("Failed to seed default admin", map[string]any{"error": err.Error()})
		}
	}

	if cfg.Ledger.SweepOnStartup {
		sweepCtx, cancelSweep := context.WithTimeout(context.Background(), cfg.Ledger.SweepTimeout)
		expired, err := lifecycle.Sweep(sweepCtx)
		cancelSweep()
		if err != nil {
			appLogger.Error("Startup expiration sweep failed", map[string]any{"error": err.Error()})
		} else {
			appLogger.Info("Startup expiration sweep finished", map[string]any{"expired": expired})
		}
	}

	sweeper := scheduler.NewScheduler(lifecycle, appLogger, scheduler.Options{
		SweepSchedule: cfg.Ledger.SweepSchedule,
		RunTimeout:    cfg.Ledger.SweepTimeout,
		Location:      tp.Location(),
	})
	if err := sweeper.Start(); err != nil {
		appLogger.Error("Failed to start expiration scheduler", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	dto.RegisterValidators()

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, cfg.CORS.AllowedOrigins)
	routes.SetupRoutes(router, routes.Handlers{
		Auth:     handler.NewAuthHandler(auth, users, appLogger),
		Card:     handler.NewCardHandler(cards, appLogger),
		Transfer: handler.NewTransferHandler(transfers, appLogger),
		Admin:    handler.NewAdminHandler(cards, users, lifecycle, appLogger),
		Health:   handler.NewHealthHandler(store.cards, store.driver, store.poolMetrics, appLogger),
	}, auth, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":      server.Addr,
			"env":       cfg.Environment,
			"driver":    store.driver,
			"log_level": appLogger.GetLevel().String(),
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	// Let an in-flight sweep finish before the storage closes
	select {
	case <-sweeper.Stop().Done():
	case <-ctx.Done():
		appLogger.Warn("Expiration sweep still running at shutdown", nil)
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	switch cfg.Database.Driver {
	case config.DriverMemory:
	case config.DriverPostgres:
		required := []struct {
			key, env, value string
		}{
			{"database.host", "CL_DB_HOST", cfg.Database.Host},
			{"database.port", "CL_DB_PORT", cfg.Database.Port},
			{"database.username", "CL_DB_USERNAME", cfg.Database.Username},
			{"database.password", "CL_DB_PASSWORD", cfg.Database.Password},
			{"database.database", "CL_DB_NAME", cfg.Database.Database},
		}
		for _, r := range required {
			if r.value == "" {
				missingConfigs = append(missingConfigs, fmt.Sprintf("%s (or %s environment variable)", r.key, r.env))
			}
		}
		if cfg.Database.QueryTimeout == 0 {
			missingConfigs = append(missingConfigs, "database.queryTimeout")
		}
	default:
		return fmt.Errorf("invalid database driver: %s, must be %s or %s",
			cfg.Database.Driver, config.DriverPostgres, config.DriverMemory)
	}

	if cfg.Auth.JWTSecret == "" {
		missingConfigs = append(missingConfigs, "auth.jwtSecret (or CL_JWT_SECRET environment variable)")
	}
	if cfg.Auth.TokenTTL == 0 {
		missingConfigs = append(missingConfigs, "auth.tokenTTL")
	}

	if cfg.Ledger.SweepSchedule == "" {
		missingConfigs = append(missingConfigs, "ledger.sweepSchedule")
	}
	if cfg.Ledger.SweepTimeout == 0 {
		missingConfigs = append(missingConfigs, "ledger.sweepTimeout")
	}
	if cfg.Ledger.DefaultPageSize > cfg.Ledger.MaxPageSize {
		return fmt.Errorf("ledger.defaultPageSize (%d) exceeds ledger.maxPageSize (%d)",
			cfg.Ledger.DefaultPageSize, cfg.Ledger.MaxPageSize)
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.IsProduction() {
		var warnings []string

		if cfg.Database.Driver == config.DriverMemory {
			warnings = append(warnings, "database.driver is memory; balances will not survive a restart")
		}
		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if cfg.Database.Driver == config.DriverPostgres && sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if len(cfg.Auth.JWTSecret) < 32 {
			warnings = append(warnings, "auth.jwtSecret should be at least 32 bytes in production")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
