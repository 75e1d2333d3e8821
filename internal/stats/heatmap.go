package stats

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/pinkpig777/cinestats/internal/core/aggregation"
	"github.com/pinkpig777/cinestats/internal/metrics"
)

type heatmapLevels struct {
	l2, l3, l4 int
}

// CalculateHeatmap returns one cell per day from Jan 1 of year through the
// earlier of Dec 31 and today. A year that has not started yields no days.
func (s *Service) CalculateHeatmap(ctx context.Context, userID int64, year int) Heatmap {
	defer observe(reportHeatmap, time.Now())

	start, end, ok := aggregation.YearWindow(year, s.today())
	if !ok {
		return Heatmap{Year: year, Days: []HeatmapDay{}}
	}

	ev, err := s.loadEvents(ctx, userID)
	if err != nil {
		metrics.RecordReportFailure(reportHeatmap)
		slog.Error("[Stats] Heatmap failed, returning empty grid", "user_id", userID, "year", year, "error", err)
		ev = &userEvents{}
	}
	return foldHeatmap(ev, year, start, end)
}

// HeatmapYears lists the years with history activity, newest first. It falls
// back to the current year when there is nothing to show or the lookup fails.
func (s *Service) HeatmapYears(ctx context.Context, userID int64) []int {
	defer observe(reportYears, time.Now())

	fallback := []int{s.today().Year()}

	years, err := s.events.DistinctWatchYears(ctx, userID)
	if err != nil {
		metrics.RecordReportFailure(reportYears)
		slog.Warn("[Stats] Heatmap years lookup failed", "user_id", userID, "error", err)
		return fallback
	}

	valid := make([]int, 0, len(years))
	for _, y := range years {
		if y > 0 {
			valid = append(valid, y)
		}
	}
	if len(valid) == 0 {
		return fallback
	}
	sort.Sort(sort.Reverse(sort.IntSlice(valid)))
	return valid
}

func foldHeatmap(ev *userEvents, year int, start, end time.Time) Heatmap {
	days := aggregation.DayRange(start, end)
	counts := make(map[string]int, len(days))

	for _, e := range ev.History {
		if e.WatchedOn.Before(start) || e.WatchedOn.After(end) {
			continue
		}
		counts[aggregation.DayKey(e.WatchedOn)]++
	}

	nonZero := make([]int, 0, len(counts))
	total := 0
	for _, c := range counts {
		nonZero = append(nonZero, c)
		total += c
	}
	sort.Ints(nonZero)
	levels := quartileLevels(nonZero)

	out := Heatmap{Year: year, Total: total, Days: make([]HeatmapDay, 0, len(days))}
	for _, d := range days {
		key := aggregation.DayKey(d)
		c := counts[key]
		out.Days = append(out.Days, HeatmapDay{Date: key, Count: c, Level: levels.assign(c)})
	}
	return out
}

func quartileLevels(sorted []int) heatmapLevels {
	n := len(sorted)
	if n == 0 {
		return heatmapLevels{l2: 2, l3: 3, l4: 4}
	}
	return heatmapLevels{
		l2: sorted[n/4],
		l3: sorted[n/2],
		l4: sorted[n*3/4],
	}
}

func (l heatmapLevels) assign(count int) int {
	switch {
	case count <= 0:
		return 0
	case count <= l.l2:
		return 1
	case count <= l.l3:
		return 2
	case count <= l.l4:
		return 3
	default:
		return 4
	}
}
