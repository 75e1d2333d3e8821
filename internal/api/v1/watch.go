package v1

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	minRating = decimal.NewFromInt(1)
	maxRating = decimal.NewFromInt(10)
)

// WatchHistory is the per-user container for watch logs. A user owns at most one.
type WatchHistory struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// WatchLog is a history-channel record: one viewing of a movie on a date.
// It never carries a rewatch flag; rewatch status is derived from earlier logs.
type WatchLog struct {
	ID             int64 `json:"id"`
	WatchHistoryID int64 `json:"watch_history_id"`

	// UserID is copied from the owning WatchHistory on insert.
	UserID int64 `json:"user_id"`

	MovieID   int64     `json:"movie_id"`
	WatchedOn time.Time `json:"watched_on"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks the record against the store's write-time rules.
// now is the reference clock for the "not in the future" rule.
func (l *WatchLog) Validate(now time.Time) error {
	if l.MovieID == 0 {
		return fmt.Errorf("movie_id is required")
	}
	if l.WatchedOn.IsZero() {
		return fmt.Errorf("watched_on is required")
	}
	if afterDay(l.WatchedOn, now) {
		return fmt.Errorf("watched_on can't be in the future")
	}
	return nil
}

// LegacyLog is the older rating-centric record. It is tied directly to a user,
// carries an explicit rewatch flag and an optional rating (a "review").
type LegacyLog struct {
	ID        int64               `json:"id"`
	UserID    int64               `json:"user_id"`
	MovieID   int64               `json:"movie_id"`
	WatchedOn time.Time           `json:"watched_on"`
	Rating    decimal.NullDecimal `json:"rating"`
	Rewatch   bool                `json:"rewatch"`
	CreatedAt time.Time           `json:"created_at"`
}

// Validate checks required fields and the 1..10 rating range.
func (l *LegacyLog) Validate() error {
	if l.UserID == 0 {
		return fmt.Errorf("user_id is required")
	}
	if l.MovieID == 0 {
		return fmt.Errorf("movie_id is required")
	}
	if l.WatchedOn.IsZero() {
		return fmt.Errorf("watched_on is required")
	}
	if l.Rating.Valid && (l.Rating.Decimal.LessThan(minRating) || l.Rating.Decimal.GreaterThan(maxRating)) {
		return fmt.Errorf("rating must be between 1 and 10, got %s", l.Rating.Decimal.String())
	}
	return nil
}

// IsReview reports whether the legacy entry carries a rating.
func (l *LegacyLog) IsReview() bool {
	return l.Rating.Valid
}

func afterDay(t, ref time.Time) bool {
	ty, tm, td := t.Date()
	ry, rm, rd := ref.Date()
	return time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC).
		After(time.Date(ry, rm, rd, 0, 0, 0, 0, time.UTC))
}
