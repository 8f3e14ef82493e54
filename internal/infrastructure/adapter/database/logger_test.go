package database

import (
	"context"
	"errors"
	"testing"
	"time"

	applog "github.com/amirhossein-jamali/card-ledger/internal/infrastructure/adapter/logger"
	mockcore "github.com/amirhossein-jamali/card-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestDatabaseLogger_Trace(t *testing.T) {
	sql := func(s string) func() (string, int64) {
		return func() (string, int64) { return s, 1 }
	}

	t.Run("Failed statement logs at error with request id", func(t *testing.T) {
		log := mockcore.NewMockLogger(t)
		log.EXPECT().Error("SQL Error", mock.MatchedBy(func(f map[string]any) bool {
			return f["table"] == "cards" && f["type"] == "UPDATE" && f["request_id"] == "req-1" && f["error"] == "boom"
		})).Once()

		dbLogger := NewDatabaseLogger(log, nil, "info", time.Second)
		ctx := applog.WithRequestID(context.Background(), "req-1")
		dbLogger.Trace(ctx, time.Now(), sql(`UPDATE "cards" SET "balance"=1`), errors.New("boom"))
	})

	t.Run("Record not found is not an error", func(t *testing.T) {
		log := mockcore.NewMockLogger(t)
		log.EXPECT().Debug("SQL Query", mock.Anything).Once()

		dbLogger := NewDatabaseLogger(log, nil, "info", time.Second)
		dbLogger.Trace(context.Background(), time.Now(), sql(`SELECT * FROM "users"`), gorm.ErrRecordNotFound)
	})

	t.Run("Slow statement logs at warn", func(t *testing.T) {
		log := mockcore.NewMockLogger(t)
		log.EXPECT().Warn("Slow SQL Query", mock.Anything).Once()

		dbLogger := NewDatabaseLogger(log, nil, "warn", time.Millisecond)
		dbLogger.Trace(context.Background(), time.Now().Add(-time.Second), sql(`SELECT 1`), nil)
	})

	t.Run("Silent logs nothing", func(t *testing.T) {
		log := mockcore.NewMockLogger(t)

		dbLogger := NewDatabaseLogger(log, nil, "info", time.Second).LogMode(logger.Silent)
		dbLogger.Trace(context.Background(), time.Now(), sql(`SELECT 1`), errors.New("boom"))
	})
}

func TestExtractTableName(t *testing.T) {
	testCases := []struct {
		sql      string
		expected string
	}{
		{`SELECT * FROM "cards" WHERE id = 1`, "cards"},
		{`INSERT INTO "transfers" ("id") VALUES ($1)`, "transfers"},
		{`UPDATE "users" SET "role"='ADMIN'`, "users"},
		{`SET LOCAL lock_timeout = 3000`, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.sql, func(t *testing.T) {
			assert.Equal(t, tc.expected, extractTableName(tc.sql))
		})
	}
}
