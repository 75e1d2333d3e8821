// Package resolver fills in missing movie runtimes from the metadata
// provider, caching both hits and misses so each movie is fetched at most
// once per cache lifetime.
package resolver

import (
	"context"
	"log/slog"
	"strconv"

	v1 "github.com/pinkpig777/cinestats/internal/api/v1"
	"github.com/pinkpig777/cinestats/internal/metrics"
	"golang.org/x/sync/singleflight"
)

// RuntimeFetcher looks up a runtime by external id. ok=false means the
// provider answered without a usable runtime.
type RuntimeFetcher interface {
	FetchRuntime(ctx context.Context, externalID int64) (minutes int, ok bool, err error)
}

// RuntimeWriter persists a resolved runtime on the catalog record.
type RuntimeWriter interface {
	UpdateRuntime(ctx context.Context, movieID int64, minutes int) error
}

// Resolver is safe for concurrent use.
type Resolver struct {
	cache   Cache
	fetcher RuntimeFetcher
	writer  RuntimeWriter
	group   singleflight.Group
}

// New creates a Resolver. writer may be nil to skip write-through.
func New(cache Cache, fetcher RuntimeFetcher, writer RuntimeWriter) *Resolver {
	return &Resolver{
		cache:   cache,
		fetcher: fetcher,
		writer:  writer,
	}
}

// Resolve returns the movie's runtime in minutes, or 0 when it cannot be
// determined. It never returns an error; provider failures are cached as
// missing and logged.
func (r *Resolver) Resolve(ctx context.Context, movie *v1.Movie) int {
	if movie == nil {
		return 0
	}
	if movie.HasRuntime() {
		return movie.Runtime()
	}
	if movie.ExternalID == 0 {
		return 0
	}

	if entry, ok := r.lookup(movie.ExternalID); ok {
		return entry.Minutes
	}

	key := strconv.FormatInt(movie.ExternalID, 10)
	result, _, _ := r.group.Do(key, func() (interface{}, error) {
		// Another caller may have filled the entry while we waited.
		if entry, ok := r.cache.Get(movie.ExternalID); ok {
			return entry, nil
		}
		entry := r.fetch(ctx, movie)
		if entry.Missing && ctx.Err() != nil {
			// The caller gave up; the provider was never really asked.
			return entry, nil
		}
		r.cache.Set(movie.ExternalID, entry)
		metrics.SetRuntimeCacheEntries(r.cache.Len())
		return entry, nil
	})

	return result.(Entry).Minutes
}

// Invalidate drops the cached lookup so the next Resolve fetches again.
func (r *Resolver) Invalidate(externalID int64) {
	r.cache.Delete(externalID)
	metrics.SetRuntimeCacheEntries(r.cache.Len())
}

func (r *Resolver) lookup(externalID int64) (Entry, bool) {
	entry, ok := r.cache.Get(externalID)
	switch {
	case !ok:
		metrics.RecordCacheLookup(metrics.LookupMiss)
	case entry.Missing:
		metrics.RecordCacheLookup(metrics.LookupMissing)
	default:
		metrics.RecordCacheLookup(metrics.LookupHit)
	}
	return entry, ok
}

func (r *Resolver) fetch(ctx context.Context, movie *v1.Movie) Entry {
	minutes, ok, err := r.fetcher.FetchRuntime(ctx, movie.ExternalID)
	if err != nil {
		metrics.RecordRuntimeFetch(metrics.FetchError)
		slog.Warn("[Resolver] Runtime fetch failed, caching as missing",
			"movie_id", movie.ID,
			"tmdb_id", movie.ExternalID,
			"error", err)
		return Entry{Missing: true}
	}
	if !ok || minutes <= 0 {
		metrics.RecordRuntimeFetch(metrics.FetchUnavailable)
		slog.Info("[Resolver] Provider has no runtime",
			"movie_id", movie.ID,
			"tmdb_id", movie.ExternalID)
		return Entry{Missing: true}
	}

	metrics.RecordRuntimeFetch(metrics.FetchOK)

	if r.writer != nil && movie.ID != 0 {
		if err := r.writer.UpdateRuntime(ctx, movie.ID, minutes); err != nil {
			metrics.RecordWriteThroughError()
			slog.Warn("[Resolver] Failed to persist runtime",
				"movie_id", movie.ID,
				"minutes", minutes,
				"error", err)
		}
	}
	return Entry{Minutes: minutes}
}
