package aggregation

import (
	"fmt"
	"time"
)

const (
	DayLayout   = "2006-01-02"
	MonthLayout = "2006-01"
)

// Day truncates t to its calendar date at 00:00 UTC. The date components are
// taken from t's own location so a stored DATE never shifts a day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MonthStart returns the first day of t's month.
func MonthStart(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd returns the last day of t's month.
func MonthEnd(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, -1)
}

// DayKey formats t as YYYY-MM-DD.
func DayKey(t time.Time) string {
	return Day(t).Format(DayLayout)
}

// MonthKey formats t as YYYY-MM.
func MonthKey(t time.Time) string {
	return Day(t).Format(MonthLayout)
}

// MonthRange returns the first day of every month from start's month through
// end's month, inclusive. Returns nil when end precedes start.
func MonthRange(start, end time.Time) []time.Time {
	cur := MonthStart(start)
	last := MonthStart(end)
	if last.Before(cur) {
		return nil
	}

	var months []time.Time
	for !cur.After(last) {
		months = append(months, cur)
		cur = cur.AddDate(0, 1, 0)
	}
	return months
}

// DayRange returns every calendar day in [start, end]. Returns nil when end
// precedes start.
func DayRange(start, end time.Time) []time.Time {
	cur := Day(start)
	last := Day(end)
	if last.Before(cur) {
		return nil
	}

	days := make([]time.Time, 0, int(last.Sub(cur).Hours()/24)+1)
	for !cur.After(last) {
		days = append(days, cur)
		cur = cur.AddDate(0, 0, 1)
	}
	return days
}

// DaysIn returns 366 for leap years and 365 otherwise.
func DaysIn(year int) int {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()
}

// DecadeLabel maps a year to its decade bucket, e.g. 1994 -> "1990s".
func DecadeLabel(year int) string {
	return fmt.Sprintf("%ds", year-year%10)
}

// YearWindow returns Jan 1 through min(Dec 31, today) for year. ok is false
// when the year has not started yet relative to today.
func YearWindow(year int, today time.Time) (start, end time.Time, ok bool) {
	start = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	today = Day(today)
	if start.After(today) {
		return start, start, false
	}
	if end.After(today) {
		end = today
	}
	return start, end, true
}

// TrailingYear is the default trend window: the first day of the month that
// contains today-365d, through the last day of the current month.
func TrailingYear(today time.Time) (start, end time.Time) {
	today = Day(today)
	return MonthStart(today.AddDate(0, 0, -365)), MonthEnd(today)
}

// RecentYears returns n calendar years ending at today's year, newest first.
func RecentYears(today time.Time, n int) []int {
	if n <= 0 {
		n = 1
	}
	current := today.Year()
	years := make([]int, 0, n)
	for i := 0; i < n; i++ {
		years = append(years, current-i)
	}
	return years
}
