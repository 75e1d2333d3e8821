package backfill

import (
	"context"
	"log/slog"
	"time"
)

const maxConsecutiveBatches = 100

// Scheduler runs the backfill on a fixed interval. Each tick walks the
// catalog from the lowest id; movies the provider has no runtime for stay
// in the listing and are answered from the resolver cache until it expires.
type Scheduler struct {
	interval time.Duration
	lister   MovieLister
	resolver RuntimeResolver
	opts     JobOptions
}

func NewScheduler(interval time.Duration, lister MovieLister, resolver RuntimeResolver, opts JobOptions) *Scheduler {
	return &Scheduler{
		interval: interval,
		lister:   lister,
		resolver: resolver,
		opts:     opts.normalized(),
	}
}

// Start runs one pass immediately and then one per tick until ctx is
// cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("[Backfill] Starting runtime backfill scheduler",
		"interval", s.interval,
		"batch_size", s.opts.BatchSize,
		"workers", s.opts.WorkerCount,
	)

	s.runPass(ctx)

	for {
		select {
		case <-ticker.C:
			s.runPass(ctx)
		case <-ctx.Done():
			slog.Info("[Backfill] Stopping (context cancelled)")
			return nil
		}
	}
}

// runPass pages through every movie missing a runtime, up to
// maxConsecutiveBatches pages.
func (s *Scheduler) runPass(ctx context.Context) (scanned, resolved int) {
	var cursor int64

	for batch := 0; batch < maxConsecutiveBatches; batch++ {
		if ctx.Err() != nil {
			slog.Info("[Backfill] Pass interrupted by context cancellation", "batches_processed", batch)
			return scanned, resolved
		}

		result, err := RunBatch(ctx, s.lister, s.resolver, cursor, s.opts)
		if err != nil {
			slog.Error("[Backfill] Batch failed", "error", err, "batch_number", batch+1)
			return scanned, resolved
		}
		scanned += result.Scanned
		resolved += result.Resolved
		cursor = result.LastID

		if result.Scanned < s.opts.BatchSize {
			if scanned > 0 {
				slog.Info("[Backfill] Pass complete", "scanned", scanned, "resolved", resolved)
			}
			return scanned, resolved
		}
	}

	slog.Warn("[Backfill] Max consecutive batches reached, resuming next tick",
		"max_batches", maxConsecutiveBatches,
		"scanned", scanned,
	)
	return scanned, resolved
}
