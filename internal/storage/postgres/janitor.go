package postgres

import (
	"context"
	"time"

	"github.com/dtroode/medsetu-storefront/internal/logger"
)

// Janitor periodically drops durable entries that have not been written
// within the retention period.
type Janitor struct {
	repo      *KVRepository
	interval  time.Duration
	retention time.Duration
	now       func() time.Time
	logger    *logger.Logger
}

func NewJanitor(repo *KVRepository, interval, retention time.Duration, logger *logger.Logger) *Janitor {
	return &Janitor{
		repo:      repo,
		interval:  interval,
		retention: retention,
		now:       time.Now,
		logger:    logger,
	}
}

// Run sweeps every interval until ctx is done.
func (j *Janitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := j.Sweep(ctx); err != nil {
				j.logger.Error("KV janitor: sweep failed",
					"error", err.Error())
			}
		}
	}
}

// Sweep deletes expired entries once and returns how many were removed.
func (j *Janitor) Sweep(ctx context.Context) (int64, error) {
	n, err := j.repo.DeleteStale(ctx, j.now().Add(-j.retention))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		j.logger.Info("KV janitor: removed stale entries",
			"count", n)
	}
	return n, nil
}
