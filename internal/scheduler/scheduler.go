package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"readlater/internal/domain"
)

// Reconciler drains the shared-URL inbox into the article store.
type Reconciler interface {
	Reconcile(ctx context.Context) (*domain.ReconcileStats, error)
}

// Sweeper collapses duplicate article records.
type Sweeper interface {
	Sweep(ctx context.Context) (*domain.SweepStats, error)
}

// Scheduler drives the two background maintenance jobs on independent
// tickers. Reconciliation runs often; the sweep is a slow safety net.
type Scheduler struct {
	reconciler        Reconciler
	sweeper           Sweeper
	reconcileInterval time.Duration
	sweepInterval     time.Duration
	logger            *slog.Logger
}

func NewScheduler(
	reconciler Reconciler,
	sweeper Sweeper,
	reconcileInterval time.Duration,
	sweepInterval time.Duration,
	logger *slog.Logger,
) *Scheduler {
	return &Scheduler{
		reconciler:        reconciler,
		sweeper:           sweeper,
		reconcileInterval: reconcileInterval,
		sweepInterval:     sweepInterval,
		logger:            logger,
	}
}

// Start runs both jobs until ctx is cancelled. Each job fires once at
// startup so a restart never waits a full interval to catch up.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started",
		"reconcile_interval", s.reconcileInterval,
		"sweep_interval", s.sweepInterval,
	)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		s.loop(ctx, s.reconcileInterval, s.runReconcile)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		s.loop(ctx, s.sweepInterval, s.runSweep)
	}()

	wg.Wait()
	s.logger.Info("scheduler stopped")
	return ctx.Err()
}

func (s *Scheduler) loop(ctx context.Context, interval time.Duration, run func(ctx context.Context)) {
	run(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			run(ctx)
		}
	}
}

func (s *Scheduler) runReconcile(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	if _, err := s.reconciler.Reconcile(runCtx); err != nil && !domain.IsCancelled(err) {
		s.logger.Error("reconcile failed", "error", err)
	}
}

func (s *Scheduler) runSweep(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	if _, err := s.sweeper.Sweep(runCtx); err != nil && !domain.IsCancelled(err) {
		s.logger.Error("sweep failed", "error", err)
	}
}
