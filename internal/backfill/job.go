// Package backfill periodically resolves runtimes for catalog movies that
// were stored without one.
package backfill

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	v1 "github.com/pinkpig777/cinestats/internal/api/v1"
	"github.com/pinkpig777/cinestats/internal/metrics"
)

const (
	defaultBatchSize   = 500
	defaultWorkerCount = 4
)

// MovieLister pages through linked catalog movies that have no runtime,
// ordered by id.
type MovieLister interface {
	ListMoviesMissingRuntime(ctx context.Context, afterID int64, limit int) ([]*v1.Movie, error)
}

// RuntimeResolver resolves and persists a movie's runtime. It returns 0 when
// no runtime could be found.
type RuntimeResolver interface {
	Resolve(ctx context.Context, movie *v1.Movie) int
}

// JobOptions controls page size and concurrency for a backfill run.
type JobOptions struct {
	BatchSize   int
	WorkerCount int
}

func (o JobOptions) normalized() JobOptions {
	n := o
	if n.BatchSize <= 0 {
		n.BatchSize = defaultBatchSize
	}
	if n.WorkerCount <= 0 {
		n.WorkerCount = defaultWorkerCount
	}
	return n
}

// BatchResult describes one page of work.
type BatchResult struct {
	Scanned  int
	Resolved int
	LastID   int64
}

// RunBatch resolves one page of movies with ids above afterID.
func RunBatch(ctx context.Context, lister MovieLister, resolver RuntimeResolver, afterID int64, opts JobOptions) (BatchResult, error) {
	opts = opts.normalized()

	movies, err := lister.ListMoviesMissingRuntime(ctx, afterID, opts.BatchSize)
	if err != nil {
		return BatchResult{LastID: afterID}, fmt.Errorf("list movies missing runtime: %w", err)
	}
	if len(movies) == 0 {
		slog.Debug("[Backfill] No movies missing a runtime", "after_id", afterID)
		return BatchResult{LastID: afterID}, nil
	}

	resolved := resolveConcurrently(ctx, resolver, movies, opts.WorkerCount)
	result := BatchResult{
		Scanned:  len(movies),
		Resolved: resolved,
		LastID:   movies[len(movies)-1].ID,
	}

	slog.Info("[Backfill] Batch complete",
		"scanned", result.Scanned,
		"resolved", result.Resolved,
		"cursor_advanced", fmt.Sprintf("%d -> %d", afterID, result.LastID),
	)
	return result, nil
}

func resolveConcurrently(ctx context.Context, resolver RuntimeResolver, movies []*v1.Movie, workerCount int) int {
	if workerCount > len(movies) {
		workerCount = len(movies)
	}

	jobs := make(chan *v1.Movie, len(movies))
	results := make(chan int, workerCount)

	var wg sync.WaitGroup
	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func() {
			defer wg.Done()
			local := 0
			for movie := range jobs {
				if ctx.Err() != nil {
					continue
				}
				if resolver.Resolve(ctx, movie) > 0 {
					local++
					metrics.RecordBackfill(metrics.BackfillResolved)
				} else {
					metrics.RecordBackfill(metrics.BackfillMissing)
				}
			}
			results <- local
		}()
	}

	for _, movie := range movies {
		jobs <- movie
	}
	close(jobs)

	wg.Wait()
	close(results)

	total := 0
	for n := range results {
		total += n
	}
	return total
}
