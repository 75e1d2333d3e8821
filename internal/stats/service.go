package stats

import (
	"context"
	"errors"
	"time"

	v1 "github.com/pinkpig777/cinestats/internal/api/v1"
	"github.com/pinkpig777/cinestats/internal/core/aggregation"
	"github.com/pinkpig777/cinestats/internal/core/storage"
	"github.com/pinkpig777/cinestats/internal/metrics"
)

const (
	defaultTopLimit = 10
	trendYearCount  = 5
	maxRankingLimit = 100
	reportOverview  = "overview"
	reportTop       = "top_contributors"
	reportTrends    = "trends"
	reportHeatmap   = "heatmap"
	reportYears     = "heatmap_years"
	reportMostWatch = "most_watched"
	reportIsRewatch = "is_rewatch"
)

// ErrInvalidQuery marks request validation errors that should return HTTP 400.
var ErrInvalidQuery = errors.New("invalid stats query")

// RuntimeResolver supplies runtimes for movies whose catalog record has none.
type RuntimeResolver interface {
	Resolve(ctx context.Context, movie *v1.Movie) int
}

// Service computes per-user viewing statistics on demand. Every report is a
// fresh fold over the user's events; nothing is persisted.
type Service struct {
	events   storage.EventStore
	catalog  storage.Catalog
	resolver RuntimeResolver
	topLimit int
	loc      *time.Location
	nowFn    func() time.Time
}

type Option func(*Service)

// WithTopLimit sets the default ranking length.
func WithTopLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topLimit = n
		}
	}
}

// WithLocation sets the zone that decides which calendar day "today" is.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithClock replaces the wall clock.
func WithClock(nowFn func() time.Time) Option {
	return func(s *Service) {
		s.nowFn = nowFn
	}
}

// NewService creates a stats service. resolver may be nil, in which case
// only catalog runtimes are counted.
func NewService(events storage.EventStore, catalog storage.Catalog, resolver RuntimeResolver, opts ...Option) *Service {
	s := &Service{
		events:   events,
		catalog:  catalog,
		resolver: resolver,
		topLimit: defaultTopLimit,
		loc:      time.UTC,
		nowFn:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// today is the current calendar date in the configured zone, as UTC midnight.
func (s *Service) today() time.Time {
	return aggregation.Day(s.nowFn().In(s.loc))
}

func (s *Service) limitOrDefault(limit int) int {
	if limit <= 0 {
		return s.topLimit
	}
	return limit
}

func (s *Service) runtimeOf(ctx context.Context, movie *v1.Movie) int {
	if s.resolver == nil {
		return movie.Runtime()
	}
	return s.resolver.Resolve(ctx, movie)
}

func observe(report string, start time.Time) {
	metrics.RecordReport(report, time.Since(start))
}
