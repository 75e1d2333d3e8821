package stats

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/pinkpig777/cinestats/internal/core/aggregation"
	"github.com/pinkpig777/cinestats/internal/metrics"
)

// CalculateOverview returns the user's totals and breakdowns. Any failure,
// including a panic while folding, yields the zero overview; the error is
// logged and never returned.
func (s *Service) CalculateOverview(ctx context.Context, userID int64) (out Overview) {
	defer observe(reportOverview, time.Now())
	defer func() {
		if r := recover(); r != nil {
			metrics.RecordReportFailure(reportOverview)
			slog.Error("[Stats] Overview panicked, returning defaults", "user_id", userID, "panic", r)
			out = emptyOverview()
		}
	}()

	ev, err := s.loadEventsWithMovies(ctx, userID)
	if err != nil {
		metrics.RecordReportFailure(reportOverview)
		slog.Error("[Stats] Overview failed, returning defaults", "user_id", userID, "error", err)
		return emptyOverview()
	}
	return s.foldOverview(ctx, ev)
}

func emptyOverview() Overview {
	return Overview{
		GenreBreakdown:  []aggregation.RankedEntry{},
		DecadeBreakdown: []aggregation.RankedEntry{},
	}
}

func (s *Service) foldOverview(ctx context.Context, ev *userEvents) Overview {
	out := emptyOverview()

	genres := aggregation.NewCounter()
	decades := aggregation.NewCounter()
	seen := make(map[int64]struct{})

	for _, e := range ev.History {
		movie := ev.Movies[e.MovieID]
		for _, g := range movie.Genres {
			genres.Add(g, "")
		}
		if e.Rewatch {
			out.TotalRewatches++
		}

		if _, ok := seen[e.MovieID]; ok {
			continue
		}
		seen[e.MovieID] = struct{}{}

		out.TotalMinutes += s.runtimeOf(ctx, movie)
		if year, ok := movie.ReleaseYear(); ok {
			decades.Add(aggregation.DecadeLabel(year), "")
		}
	}
	out.TotalMovies = len(seen)

	// Legacy rewatch flags are added on top of derived history rewatches.
	// A viewing recorded in both channels is counted twice.
	for _, e := range ev.Legacy {
		if e.Rating.Valid {
			out.TotalReviews++
		}
		if e.Rewatch {
			out.TotalRewatches++
		}
	}

	out.GenreBreakdown = genres.Ranked(0)

	decadeRows := decades.Ranked(0)
	sort.SliceStable(decadeRows, func(i, j int) bool {
		return decadeRows[i].Name < decadeRows[j].Name
	})
	out.DecadeBreakdown = decadeRows

	return out
}
