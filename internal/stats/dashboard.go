package stats

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Dashboard computes every report for the user concurrently. Reports never
// fail individually; only a cancelled caller context is returned as an error.
func (s *Service) Dashboard(ctx context.Context, userID int64) (*Dashboard, error) {
	var d Dashboard
	year := s.today().Year()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d.Overview = s.CalculateOverview(gctx, userID)
		return nil
	})
	g.Go(func() error {
		d.Contributors = s.CalculateTopContributors(gctx, userID, 0)
		return nil
	})
	g.Go(func() error {
		d.Trends = s.CalculateTrends(gctx, userID)
		d.TrendYears = s.TrendYears()
		return nil
	})
	g.Go(func() error {
		d.Heatmap = s.CalculateHeatmap(gctx, userID, year)
		d.HeatmapYears = s.HeatmapYears(gctx, userID)
		return nil
	})
	g.Go(func() error {
		d.MostWatched = s.MostWatchedMovies(gctx, userID, 0)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &d, nil
}
