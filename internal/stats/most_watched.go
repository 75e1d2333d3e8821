package stats

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/pinkpig777/cinestats/internal/metrics"
)

// MostWatchedMovies ranks movies by history watch count. rewatch_count adds
// legacy rewatch flags for the same movie to the history repeats.
// limit <= 0 returns every watched movie.
func (s *Service) MostWatchedMovies(ctx context.Context, userID int64, limit int) []MovieWatchCount {
	defer observe(reportMostWatch, time.Now())

	ev, err := s.loadEventsWithMovies(ctx, userID)
	if err != nil {
		metrics.RecordReportFailure(reportMostWatch)
		slog.Error("[Stats] Most watched failed", "user_id", userID, "error", err)
		return []MovieWatchCount{}
	}
	return foldMostWatched(ev, limit)
}

func foldMostWatched(ev *userEvents, limit int) []MovieWatchCount {
	index := make(map[int64]int)
	rows := make([]MovieWatchCount, 0)

	for _, e := range ev.History {
		i, ok := index[e.MovieID]
		if !ok {
			i = len(rows)
			index[e.MovieID] = i
			row := MovieWatchCount{MovieID: e.MovieID}
			if m := ev.Movies[e.MovieID]; m != nil {
				row.Title = m.Title
				row.PosterPath = m.PosterPath
			}
			rows = append(rows, row)
		}
		rows[i].WatchCount++
	}

	legacyRewatches := make(map[int64]int)
	for _, e := range ev.Legacy {
		if e.Rewatch {
			legacyRewatches[e.MovieID]++
		}
	}

	for i := range rows {
		repeats := rows[i].WatchCount - 1
		if repeats < 0 {
			repeats = 0
		}
		rows[i].RewatchCount = repeats + legacyRewatches[rows[i].MovieID]
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].WatchCount > rows[j].WatchCount
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}
