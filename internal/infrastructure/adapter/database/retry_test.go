package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/card-ledger/internal/infrastructure/adapter/repository"
	mockcore "github.com/amirhossein-jamali/card-ledger/mocks/port/core"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newQuietLogger(t *testing.T) *mockcore.MockLogger {
	log := mockcore.NewMockLogger(t)
	for _, method := range []string{"Debug", "Info", "Warn", "Error"} {
		log.On(method, mock.Anything, mock.Anything).Maybe()
	}
	return log
}

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxRetries:    attempts,
		RetryInterval: time.Millisecond,
		MaxInterval:   5 * time.Millisecond,
	}
}

func TestRetryOnTransientError(t *testing.T) {
	classifier := repository.NewErrorClassifier()

	t.Run("Succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(5), func() error {
			calls++
			if calls < 3 {
				return &pgconn.PgError{Code: "40001", Message: "could not serialize access"}
			}
			return nil
		}, classifier, newQuietLogger(t))

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("Permanent error is not retried", func(t *testing.T) {
		calls := 0
		permanent := &pgconn.PgError{Code: "23505", Message: "duplicate key value"}
		err := RetryOnTransientError(context.Background(), fastRetry(5), func() error {
			calls++
			return permanent
		}, classifier, newQuietLogger(t))

		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("Gives up after max retries", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(3), func() error {
			calls++
			return errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
		}, classifier, newQuietLogger(t))

		assert.Error(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("Stops when context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		cfg := fastRetry(5)
		cfg.RetryInterval = time.Second
		cfg.MaxInterval = time.Second

		err := RetryOnTransientError(ctx, cfg, func() error {
			return errors.New("connection reset by peer")
		}, classifier, newQuietLogger(t))

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	cfg := RetryConfig{RetryInterval: 100 * time.Millisecond, MaxInterval: time.Second, JitterFactor: 0.2}

	first := calculateBackoffWithJitter(0, cfg)
	assert.GreaterOrEqual(t, first, 100*time.Millisecond)
	assert.LessOrEqual(t, first, 120*time.Millisecond)

	capped := calculateBackoffWithJitter(10, cfg)
	assert.GreaterOrEqual(t, capped, time.Second)
	assert.LessOrEqual(t, capped, 1200*time.Millisecond)
}
