package stats

import (
	"time"

	"github.com/pinkpig777/cinestats/internal/core/aggregation"
	"github.com/shopspring/decimal"
)

// Channel identifies which record type a WatchEvent came from.
type Channel int

const (
	ChannelHistory Channel = iota
	ChannelLegacy
)

func (c Channel) String() string {
	if c == ChannelLegacy {
		return "legacy"
	}
	return "history"
}

// WatchEvent is the normalized view over both record types. Rewatch is
// derived for history events and copied from the flag for legacy ones;
// Rating is only ever set on legacy events.
type WatchEvent struct {
	Source    Channel
	UserID    int64
	MovieID   int64
	WatchedOn time.Time
	Rewatch   bool
	Rating    decimal.NullDecimal
}

type Overview struct {
	TotalMovies     int                       `json:"total_movies"`
	TotalMinutes    int                       `json:"total_minutes"`
	TotalReviews    int                       `json:"total_reviews"`
	TotalRewatches  int                       `json:"total_rewatches"`
	GenreBreakdown  []aggregation.RankedEntry `json:"genre_breakdown"`
	DecadeBreakdown []aggregation.RankedEntry `json:"decade_breakdown"`
}

type TopContributors struct {
	TopGenres    []aggregation.RankedEntry `json:"top_genres"`
	TopDirectors []aggregation.RankedEntry `json:"top_directors"`
	TopActors    []aggregation.RankedEntry `json:"top_actors"`
}

type ActivityPoint struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type RatingPoint struct {
	Month         string          `json:"month"`
	AverageRating decimal.Decimal `json:"average_rating"`
}

type Trends struct {
	Start         string          `json:"start"`
	End           string          `json:"end"`
	ActivityTrend []ActivityPoint `json:"activity_trend"`
	RatingTrend   []RatingPoint   `json:"rating_trend"`
}

// HeatmapDay is one cell of the calendar grid. Level is 0-4, bucketed by
// quartiles of the non-zero days in the same grid.
type HeatmapDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level int    `json:"level"`
}

type Heatmap struct {
	Year  int          `json:"year"`
	Total int          `json:"total"`
	Days  []HeatmapDay `json:"days"`
}

// Counts returns the grid as a date -> count map.
func (h Heatmap) Counts() map[string]int {
	m := make(map[string]int, len(h.Days))
	for _, d := range h.Days {
		m[d.Date] = d.Count
	}
	return m
}

type MovieWatchCount struct {
	MovieID      int64  `json:"movie_id"`
	Title        string `json:"title"`
	PosterPath   string `json:"poster_path,omitempty"`
	WatchCount   int    `json:"watch_count"`
	RewatchCount int    `json:"rewatch_count"`
}

// Dashboard bundles every report for one user.
type Dashboard struct {
	Overview     Overview          `json:"overview"`
	Contributors TopContributors   `json:"top_contributors"`
	Trends       Trends            `json:"trends"`
	TrendYears   []int             `json:"trend_years"`
	Heatmap      Heatmap           `json:"heatmap"`
	HeatmapYears []int             `json:"heatmap_years"`
	MostWatched  []MovieWatchCount `json:"most_watched"`
}
