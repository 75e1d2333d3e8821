package v1

import (
	"strconv"
	"strings"
	"time"
)

// Credit roles as tagged by the catalog. A person credited in both roles on
// different movies is tracked separately per role.
const (
	RoleDirector = "director"
	RoleCast     = "cast"
)

// Credit is one person attached to a movie.
type Credit struct {
	PersonName  string `json:"person_name"`
	Role        string `json:"role"`
	ProfilePath string `json:"profile_path,omitempty"`
}

// Movie is the catalog's view of a film. The analytics engine only reads it,
// except for RuntimeMinutes which the runtime resolver writes through.
type Movie struct {
	ID int64 `json:"id"`

	// ExternalID is the metadata provider's identifier (TMDB id).
	// Zero means the movie was never linked to the provider.
	ExternalID int64 `json:"external_id,omitempty"`

	Title string `json:"title"`

	// ReleaseDate is kept as the raw catalog string. It may be empty or
	// malformed; use ReleaseYear to read it.
	ReleaseDate string `json:"release_date,omitempty"`

	// RuntimeMinutes is nil when the catalog has no duration for the movie.
	RuntimeMinutes *int `json:"runtime_minutes,omitempty"`

	PosterPath string   `json:"poster_path,omitempty"`
	Genres     []string `json:"genres"`
	Credits    []Credit `json:"credits"`
}

// ReleaseYear parses the year out of ReleaseDate.
// Accepts "YYYY-MM-DD", RFC3339 timestamps and a bare "YYYY".
func (m *Movie) ReleaseYear() (int, bool) {
	if m == nil {
		return 0, false
	}
	raw := strings.TrimSpace(m.ReleaseDate)
	if raw == "" {
		return 0, false
	}

	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t.Year(), true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.Year(), true
	}
	if len(raw) == 4 {
		if y, err := strconv.Atoi(raw); err == nil && y > 0 {
			return y, true
		}
	}
	return 0, false
}

// HasRuntime reports whether the catalog already knows the runtime.
func (m *Movie) HasRuntime() bool {
	return m != nil && m.RuntimeMinutes != nil
}

// Runtime returns the runtime in minutes, or 0 when it is missing.
func (m *Movie) Runtime() int {
	if !m.HasRuntime() {
		return 0
	}
	return *m.RuntimeMinutes
}

// IntPtr is a small helper for building movies with a known runtime.
func IntPtr(v int) *int {
	return &v
}
