package stats

import (
	"context"
	"log/slog"
	"time"

	v1 "github.com/pinkpig777/cinestats/internal/api/v1"
	"github.com/pinkpig777/cinestats/internal/core/aggregation"
	"github.com/pinkpig777/cinestats/internal/metrics"
)

// CalculateTopContributors ranks genres, directors and cast members across
// every history event, repeats included. limit <= 0 uses the default.
func (s *Service) CalculateTopContributors(ctx context.Context, userID int64, limit int) TopContributors {
	defer observe(reportTop, time.Now())
	limit = s.limitOrDefault(limit)

	ev, err := s.loadEventsWithMovies(ctx, userID)
	if err != nil {
		metrics.RecordReportFailure(reportTop)
		slog.Error("[Stats] Top contributors failed", "user_id", userID, "error", err)
		ev = &userEvents{}
	}
	return foldContributors(ev, limit)
}

func foldContributors(ev *userEvents, limit int) TopContributors {
	genres := aggregation.NewCounter()
	directors := aggregation.NewCounter()
	actors := aggregation.NewCounter()

	for _, e := range ev.History {
		movie := ev.Movies[e.MovieID]
		if movie == nil {
			continue
		}
		for _, g := range movie.Genres {
			genres.Add(g, "")
		}
		for _, c := range movie.Credits {
			switch c.Role {
			case v1.RoleDirector:
				directors.Add(c.PersonName, c.ProfilePath)
			case v1.RoleCast:
				actors.Add(c.PersonName, c.ProfilePath)
			}
		}
	}

	return TopContributors{
		TopGenres:    genres.Ranked(limit),
		TopDirectors: directors.Ranked(limit),
		TopActors:    actors.Ranked(limit),
	}
}
