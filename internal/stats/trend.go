package stats

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pinkpig777/cinestats/internal/core/aggregation"
	"github.com/pinkpig777/cinestats/internal/metrics"
	"github.com/shopspring/decimal"
)

type ratingKey struct {
	movieID int64
	day     int64
}

// CalculateTrends returns dense monthly series over the trailing year,
// starting on the first of the month that contains today-365d.
func (s *Service) CalculateTrends(ctx context.Context, userID int64) Trends {
	start, end := aggregation.TrailingYear(s.today())
	return s.trendsBetween(ctx, userID, start, end)
}

// CalculateTrendsForYear returns Jan..Dec of year, cut at the current month
// for the current year. A future year is rejected with ErrInvalidQuery.
func (s *Service) CalculateTrendsForYear(ctx context.Context, userID int64, year int) (Trends, error) {
	start, end, ok := aggregation.YearWindow(year, s.today())
	if !ok {
		return Trends{}, fmt.Errorf("%w: year %d is in the future", ErrInvalidQuery, year)
	}
	return s.trendsBetween(ctx, userID, start, aggregation.MonthEnd(end)), nil
}

// TrendYears lists the last five calendar years, newest first. The current
// year is always included.
func (s *Service) TrendYears() []int {
	return aggregation.RecentYears(s.today(), trendYearCount)
}

// trendsBetween only needs event dates, so history events whose movie is
// missing from the catalog still count toward activity.
func (s *Service) trendsBetween(ctx context.Context, userID int64, start, end time.Time) Trends {
	defer observe(reportTrends, time.Now())

	ev, err := s.loadEvents(ctx, userID)
	if err != nil {
		metrics.RecordReportFailure(reportTrends)
		slog.Error("[Stats] Trends failed, returning zero series", "user_id", userID, "error", err)
		ev = &userEvents{}
	}
	return foldTrends(ev, start, end)
}

// foldTrends counts history events per month and averages the ratings of
// legacy entries that match a history event on (movie, date).
func foldTrends(ev *userEvents, start, end time.Time) Trends {
	months := aggregation.MonthRange(start, end)
	out := Trends{
		Start:         aggregation.DayKey(start),
		End:           aggregation.DayKey(end),
		ActivityTrend: make([]ActivityPoint, 0, len(months)),
		RatingTrend:   make([]RatingPoint, 0, len(months)),
	}

	ratings := make(map[ratingKey]decimal.Decimal)
	for _, e := range ev.Legacy {
		if !e.Rating.Valid {
			continue
		}
		key := ratingKey{movieID: e.MovieID, day: e.WatchedOn.Unix()}
		if _, exists := ratings[key]; !exists {
			ratings[key] = e.Rating.Decimal
		}
	}

	counts := make(map[string]int, len(months))
	means := make(map[string]*aggregation.Mean, len(months))
	first, last := aggregation.Day(start), aggregation.Day(end)

	for _, e := range ev.History {
		if e.WatchedOn.Before(first) || e.WatchedOn.After(last) {
			continue
		}
		month := aggregation.MonthKey(e.WatchedOn)
		counts[month]++

		rating, ok := ratings[ratingKey{movieID: e.MovieID, day: e.WatchedOn.Unix()}]
		if !ok {
			continue
		}
		m := means[month]
		if m == nil {
			m = &aggregation.Mean{}
			means[month] = m
		}
		m.Add(rating)
	}

	for _, month := range months {
		key := aggregation.MonthKey(month)
		out.ActivityTrend = append(out.ActivityTrend, ActivityPoint{Month: key, Count: counts[key]})

		avg := decimal.Zero
		if m := means[key]; m != nil {
			avg = m.Value(aggregation.RatingPlaces)
		}
		out.RatingTrend = append(out.RatingTrend, RatingPoint{Month: key, AverageRating: avg})
	}
	return out
}
