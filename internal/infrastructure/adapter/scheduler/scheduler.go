package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/card-ledger/internal/domain/port/usecase"
	"github.com/robfig/cron/v3"
)

// DefaultSweepSchedule fires at midnight every day (seconds field first)
const DefaultSweepSchedule = "0 0 0 * * *"

// Options configures the sweep scheduler
type Options struct {
	// SweepSchedule is a six-field cron expression
	SweepSchedule string
	// RunTimeout bounds a single sweep run
	RunTimeout time.Duration
	// Location is the timezone the schedule is evaluated in. Nil means UTC.
	Location *time.Location
}

// Scheduler runs the daily expiration sweep
type Scheduler struct {
	cron      *cron.Cron
	lifecycle usecase.LifecycleUseCase
	logger    core.Logger
	opts      Options
}

// NewScheduler creates a scheduler. Panics inside a run are recovered and
// a run that is still going when the next one fires is skipped.
func NewScheduler(lifecycle usecase.LifecycleUseCase, logger core.Logger, opts Options) *Scheduler {
	if opts.SweepSchedule == "" {
		opts.SweepSchedule = DefaultSweepSchedule
	}
	if opts.RunTimeout <= 0 {
		opts.RunTimeout = 5 * time.Minute
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}

	cl := newCronLogger(logger)
	c := cron.New(
		cron.WithSeconds(),
		cron.WithLocation(opts.Location),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)

	return &Scheduler{
		cron:      c,
		lifecycle: lifecycle,
		logger:    logger,
		opts:      opts,
	}
}

// Start registers the sweep job and starts the cron scheduler
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.opts.SweepSchedule, s.runSweep); err != nil {
		s.logger.Error("Failed to schedule expiration sweep", map[string]any{
			"schedule": s.opts.SweepSchedule,
			"error":    err.Error(),
		})
		return fmt.Errorf("invalid sweep schedule %q: %w", s.opts.SweepSchedule, err)
	}

	s.logger.Info("Scheduled expiration sweep", map[string]any{
		"schedule": s.opts.SweepSchedule,
		"timezone": s.opts.Location.String(),
	})

	s.cron.Start()
	return nil
}

// Stop stops the scheduler. The returned context is done once running jobs finish.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// NextRun reports when the sweep fires next. Zero before Start.
func (s *Scheduler) NextRun() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

func (s *Scheduler) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), s.opts.RunTimeout)
	defer cancel()

	start := time.Now()
	expired, err := s.lifecycle.Sweep(ctx)
	fields := map[string]any{
		"expired":     expired,
		"duration_ms": time.Since(start).Milliseconds(),
	}

	if err != nil {
		fields["error"] = err.Error()
		if errors.Is(err, context.DeadlineExceeded) {
			fields["timeout"] = s.opts.RunTimeout.String()
		}
		s.logger.Error("Scheduled expiration sweep failed", fields)
		return
	}

	s.logger.Info("Scheduled expiration sweep completed", fields)
}
