package stats

import (
	"context"
	"log/slog"
	"time"

	"github.com/pinkpig777/cinestats/internal/core/aggregation"
)

// IsRewatch reports whether the user has a history event for movieID dated
// strictly before watchedOn. Used to label activity feed entries. Errors
// read as "not a rewatch".
func (s *Service) IsRewatch(ctx context.Context, userID, movieID int64, watchedOn time.Time) bool {
	defer observe(reportIsRewatch, time.Now())

	if movieID == 0 || watchedOn.IsZero() {
		return false
	}
	logs, err := s.loadHistoryLogs(ctx, userID)
	if err != nil {
		slog.Warn("[Stats] Rewatch lookup failed", "user_id", userID, "movie_id", movieID, "error", err)
		return false
	}

	day := aggregation.Day(watchedOn)
	for _, l := range logs {
		if l.MovieID == movieID && !l.WatchedOn.IsZero() && aggregation.Day(l.WatchedOn).Before(day) {
			return true
		}
	}
	return false
}
