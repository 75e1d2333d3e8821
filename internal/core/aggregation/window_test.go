package aggregation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDay_UsesOwnLocation(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	late := time.Date(2026, 2, 11, 23, 30, 0, 0, loc)
	require.Equal(t, date(2026, 2, 11), Day(late))
	require.Equal(t, "2026-02-11", DayKey(late))
	require.Equal(t, "2026-02", MonthKey(late))
}

func TestMonthBounds(t *testing.T) {
	require.Equal(t, date(2024, 2, 1), MonthStart(date(2024, 2, 17)))
	require.Equal(t, date(2024, 2, 29), MonthEnd(date(2024, 2, 17)))
	require.Equal(t, date(2023, 2, 28), MonthEnd(date(2023, 2, 1)))
	require.Equal(t, date(2025, 12, 31), MonthEnd(date(2025, 12, 5)))
}

func TestMonthRange(t *testing.T) {
	months := MonthRange(date(2025, 11, 20), date(2026, 2, 3))
	require.Len(t, months, 4)
	require.Equal(t, "2025-11", MonthKey(months[0]))
	require.Equal(t, "2025-12", MonthKey(months[1]))
	require.Equal(t, "2026-01", MonthKey(months[2]))
	require.Equal(t, "2026-02", MonthKey(months[3]))

	require.Len(t, MonthRange(date(2026, 3, 31), date(2026, 3, 1)), 1)
	require.Nil(t, MonthRange(date(2026, 3, 1), date(2026, 2, 28)))
}

func TestDayRange(t *testing.T) {
	require.Len(t, DayRange(date(2024, 1, 1), date(2024, 12, 31)), 366)
	require.Len(t, DayRange(date(2023, 1, 1), date(2023, 12, 31)), 365)
	require.Len(t, DayRange(date(2024, 2, 28), date(2024, 3, 1)), 3)
	require.Nil(t, DayRange(date(2024, 3, 1), date(2024, 2, 28)))
}

func TestDaysIn(t *testing.T) {
	require.Equal(t, 366, DaysIn(2024))
	require.Equal(t, 365, DaysIn(2025))
	require.Equal(t, 365, DaysIn(1900))
	require.Equal(t, 366, DaysIn(2000))
}

func TestDecadeLabel(t *testing.T) {
	require.Equal(t, "2020s", DecadeLabel(2020))
	require.Equal(t, "2020s", DecadeLabel(2029))
	require.Equal(t, "1990s", DecadeLabel(1994))
	require.Equal(t, "2000s", DecadeLabel(2000))
}

func TestYearWindow(t *testing.T) {
	today := time.Date(2026, 10, 16, 18, 0, 0, 0, time.UTC)

	start, end, ok := YearWindow(2026, today)
	require.True(t, ok)
	require.Equal(t, date(2026, 1, 1), start)
	require.Equal(t, date(2026, 10, 16), end)

	start, end, ok = YearWindow(2024, today)
	require.True(t, ok)
	require.Equal(t, date(2024, 1, 1), start)
	require.Equal(t, date(2024, 12, 31), end)

	_, _, ok = YearWindow(2027, today)
	require.False(t, ok)

	_, end, ok = YearWindow(2026, date(2026, 1, 1))
	require.True(t, ok)
	require.Equal(t, date(2026, 1, 1), end)
}

func TestTrailingYear(t *testing.T) {
	start, end := TrailingYear(date(2026, 10, 16))
	require.Equal(t, date(2025, 10, 1), start)
	require.Equal(t, date(2026, 10, 31), end)

	// 365 days before 2024-03-01 is 2023-03-02 (leap day in between).
	start, end = TrailingYear(date(2024, 3, 1))
	require.Equal(t, date(2023, 3, 1), start)
	require.Equal(t, date(2024, 3, 31), end)
	require.Len(t, MonthRange(start, end), 13)
}

func TestRecentYears(t *testing.T) {
	require.Equal(t, []int{2026, 2025, 2024, 2023, 2022}, RecentYears(date(2026, 1, 1), 5))
	require.Equal(t, []int{2026}, RecentYears(date(2026, 1, 1), 0))
}
