package usecase

import (
	"context"
	"log/slog"
	"time"

	lbdb "lanebook/internal/infra/db"
	"lanebook/internal/pkg/clock"
	"lanebook/internal/pkg/errs"
	"lanebook/internal/pkg/metrics"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ExpiredHoldDeleter interface {
	DeleteExpired(ctx context.Context, db lbdb.DBTX, now time.Time) (int64, error)
}

// Sweeper removes expired hold rows on an interval. It is a hygiene
// process, not a correctness requirement: availability queries and the
// hold path both exclude expired rows on their own. A sweep and a hold
// creation racing on the same rows resolve through ordinary row locks.
type Sweeper struct {
	holds    ExpiredHoldDeleter
	db       *pgxpool.Pool
	clock    clock.Clock
	metrics  *metrics.Metrics
	interval time.Duration
}

func NewSweeper(holds ExpiredHoldDeleter, db *pgxpool.Pool, clock clock.Clock, metrics *metrics.Metrics, interval time.Duration) *Sweeper {
	return &Sweeper{
		holds:    holds,
		db:       db,
		clock:    clock,
		metrics:  metrics,
		interval: interval,
	}
}

// RunOnce performs a single sweep and returns the number of rows removed.
func (s *Sweeper) RunOnce(ctx context.Context) (int64, error) {
	swept, err := s.holds.DeleteExpired(ctx, s.db, s.clock.Now())
	if err != nil {
		return 0, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	if swept > 0 {
		s.metrics.ExpiredSwept.Add(float64(swept))
		slog.Info("swept expired holds", "count", swept)
	}
	return swept, nil
}

// Run sweeps on the configured interval until ctx is cancelled. Sweep
// failures are logged and retried on the next tick.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("hold sweeper started", "interval", s.interval)
	for {
		select {
		case <-ctx.Done():
			slog.Info("hold sweeper stopped")
			return
		case <-ticker.C:
			if _, err := s.RunOnce(ctx); err != nil {
				slog.Error("hold sweep failed", "error", err)
			}
		}
	}
}
