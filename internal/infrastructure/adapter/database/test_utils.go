package database

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/card-ledger/internal/domain/port/core"
	timeprovider "github.com/amirhossein-jamali/card-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/card-ledger/internal/infrastructure/config"
)

// TestDBHostEnv gates integration tests; they are skipped when it is unset
const TestDBHostEnv = "CL_TEST_DB_HOST"

// TestDBManager provides utilities for testing with a real PostgreSQL database
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager connects to the test database and migrates a clean schema.
// The test is skipped when CL_TEST_DB_HOST is not set.
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	host := os.Getenv(TestDBHostEnv)
	if host == "" {
		t.Skipf("%s not set, skipping database integration test", TestDBHostEnv)
	}

	timeProvider, err := timeprovider.NewRealTimeProvider("UTC")
	if err != nil {
		t.Fatalf("Failed to create time provider: %v", err)
	}

	cfg := &Config{
		Driver:             config.DriverPostgres,
		Host:               host,
		Port:               getEnvIntOrDefault("CL_TEST_DB_PORT", 5432),
		Username:           getEnvOrDefault("CL_TEST_DB_USERNAME", "postgres"),
		Password:           getEnvOrDefault("CL_TEST_DB_PASSWORD", "postgres"),
		Database:           getEnvOrDefault("CL_TEST_DB_NAME", "card_ledger_test"),
		SSLMode:            getEnvOrDefault("CL_TEST_DB_SSL_MODE", "disable"),
		MaxOpenConns:       20,
		MaxIdleConns:       5,
		ConnMaxLifetime:    5 * time.Minute,
		ConnMaxIdleTime:    5 * time.Minute,
		QueryTimeout:       5 * time.Second,
		LockTimeout:        2 * time.Second,
		LogLevel:           "silent",
		SlowQueryThreshold: 0,
		RetryAttempts:      1,
		RetryDelay:         time.Second,
	}

	manager := NewManager(cfg, logger, timeProvider)
	if _, err := manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	tm := &TestDBManager{
		Manager:      manager,
		Config:       cfg,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
	t.Cleanup(func() { tm.Close(t) })

	tm.SetupTestDB(t)
	return tm
}

// Close closes the test database connection
func (m *TestDBManager) Close(t *testing.T) {
	t.Helper()

	if err := m.Manager.Close(); err != nil {
		t.Logf("Warning: Failed to close test database connection: %v", err)
	}
}

// SetupTestDB drops every table and runs the migrations
func (m *TestDBManager) SetupTestDB(t *testing.T) {
	t.Helper()

	if err := m.Manager.DB().Exec(`
		DO $$ DECLARE
			r RECORD;
		BEGIN
			FOR r IN (SELECT tablename FROM pg_tables WHERE schemaname = current_schema()) LOOP
				EXECUTE 'DROP TABLE IF EXISTS ' || quote_ident(r.tablename) || ' CASCADE';
			END LOOP;
		END $$;
	`).Error; err != nil {
		t.Fatalf("Failed to drop tables: %v", err)
	}

	if err := m.Manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
}

// TruncateAllTables empties every table and restarts identities
func (m *TestDBManager) TruncateAllTables(t *testing.T) {
	t.Helper()

	if err := m.Manager.DB().Exec(`TRUNCATE TABLE transfers, cards, users RESTART IDENTITY CASCADE`).Error; err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if result, err := strconv.Atoi(value); err == nil {
			return result
		}
	}
	return defaultValue
}
