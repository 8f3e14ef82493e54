package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	mockcore "github.com/amirhossein-jamali/card-ledger/mocks/port/core"
	mockusecase "github.com/amirhossein-jamali/card-ledger/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newQuietLogger(t *testing.T) *mockcore.MockLogger {
	log := mockcore.NewMockLogger(t)
	for _, method := range []string{"Debug", "Info", "Warn", "Error"} {
		log.On(method, mock.Anything, mock.Anything).Maybe()
	}
	return log
}

func TestScheduler_RunsSweep(t *testing.T) {
	lifecycle := mockusecase.NewMockLifecycleUseCase(t)
	ran := make(chan struct{}, 4)

	lifecycle.EXPECT().Sweep(mock.Anything).RunAndReturn(func(ctx context.Context) (int, error) {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		ran <- struct{}{}
		return 2, nil
	})

	s := NewScheduler(lifecycle, newQuietLogger(t), Options{SweepSchedule: "* * * * * *", RunTimeout: time.Second})
	require.NoError(t, s.Start())
	assert.False(t, s.NextRun().IsZero())

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("sweep did not run")
	}

	<-s.Stop().Done()
}

func TestScheduler_SweepFailureIsLogged(t *testing.T) {
	lifecycle := mockusecase.NewMockLifecycleUseCase(t)
	lifecycle.EXPECT().Sweep(mock.Anything).Return(0, errors.New("db down"))

	logged := make(chan map[string]any, 4)
	log := mockcore.NewMockLogger(t)
	log.On("Info", mock.Anything, mock.Anything).Maybe()
	log.On("Debug", mock.Anything, mock.Anything).Maybe()
	log.On("Error", "Scheduled expiration sweep failed", mock.Anything).
		Run(func(args mock.Arguments) { logged <- args.Get(1).(map[string]any) }).
		Maybe()

	s := NewScheduler(lifecycle, log, Options{SweepSchedule: "* * * * * *"})
	require.NoError(t, s.Start())
	defer func() { <-s.Stop().Done() }()

	select {
	case fields := <-logged:
		assert.Equal(t, "db down", fields["error"])
	case <-time.After(3 * time.Second):
		t.Fatal("failure was not logged")
	}
}

func TestScheduler_InvalidSchedule(t *testing.T) {
	lifecycle := mockusecase.NewMockLifecycleUseCase(t)
	s := NewScheduler(lifecycle, newQuietLogger(t), Options{SweepSchedule: "every day"})

	assert.Error(t, s.Start())
	assert.True(t, s.NextRun().IsZero())
}

func TestScheduler_Defaults(t *testing.T) {
	s := NewScheduler(mockusecase.NewMockLifecycleUseCase(t), newQuietLogger(t), Options{})

	assert.Equal(t, DefaultSweepSchedule, s.opts.SweepSchedule)
	assert.Equal(t, time.UTC, s.opts.Location)
	assert.Positive(t, s.opts.RunTimeout)
}

func TestCronLogger(t *testing.T) {
	log := mockcore.NewMockLogger(t)
	log.EXPECT().Debug("cron: wake", map[string]any{"now": "t"}).Once()
	log.EXPECT().Error("cron: panic", mock.MatchedBy(func(f map[string]any) bool {
		return f["error"] != nil && f["extra"] == "dangling"
	})).Once()

	cl := newCronLogger(log)
	cl.Info("wake", "now", "t")
	cl.Error(errors.New("boom"), "panic", "dangling")
}
