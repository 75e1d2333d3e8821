package storage

import (
	"context"
	"errors"

	v1 "github.com/pinkpig777/cinestats/internal/api/v1"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// EventStore is the read surface over both watch channels.
// List methods return empty (non-nil) slices when there is no data.
type EventStore interface {
	// FindWatchHistory returns the user's Watch History container,
	// or ErrNotFound if the user never created one.
	FindWatchHistory(ctx context.Context, userID int64) (*v1.WatchHistory, error)

	// ListHistoryLogs returns every log in one Watch History ordered by
	// watched_on, then id.
	ListHistoryLogs(ctx context.Context, historyID int64) ([]v1.WatchLog, error)

	// ListHistoryLogsByUser scans history-channel logs by their denormalized
	// user_id. Fallback path for users whose container is missing.
	ListHistoryLogsByUser(ctx context.Context, userID int64) ([]v1.WatchLog, error)

	// ListLegacyLogs returns the user's legacy rating-centric entries.
	ListLegacyLogs(ctx context.Context, userID int64) ([]v1.LegacyLog, error)

	// DistinctWatchYears returns the distinct years of history-channel
	// watched_on dates for the user, newest first.
	DistinctWatchYears(ctx context.Context, userID int64) ([]int, error)
}

// Catalog is the movie metadata cache. The analytics engine reads movies and
// writes back runtimes resolved from the external provider.
type Catalog interface {
	// GetMovie returns the movie with genres and credits populated,
	// or ErrNotFound.
	GetMovie(ctx context.Context, id int64) (*v1.Movie, error)

	// GetOrCreateFromExternal finds a movie by ExternalID or inserts the
	// given provider record (with genres and credits).
	GetOrCreateFromExternal(ctx context.Context, movie *v1.Movie) (*v1.Movie, error)

	// UpdateRuntime persists a resolved runtime for the movie.
	UpdateRuntime(ctx context.Context, movieID int64, minutes int) error
}
