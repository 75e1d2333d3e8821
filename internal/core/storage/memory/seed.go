package memory

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	v1 "github.com/pinkpig777/cinestats/internal/api/v1"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// SeedFile is the YAML fixture format accepted by LoadSeed.
type SeedFile struct {
	Movies     []SeedMovie     `yaml:"movies"`
	Histories  []int64         `yaml:"watch_histories"`
	WatchLogs  []SeedWatchLog  `yaml:"watch_logs"`
	LegacyLogs []SeedLegacyLog `yaml:"logs"`
}

type SeedMovie struct {
	ID          int64        `yaml:"id"`
	TMDBID      int64        `yaml:"tmdb_id"`
	Title       string       `yaml:"title"`
	ReleaseDate string       `yaml:"release_date"`
	Runtime     *int         `yaml:"runtime"`
	PosterPath  string       `yaml:"poster_path"`
	Genres      []string     `yaml:"genres"`
	Credits     []SeedCredit `yaml:"credits"`
}

type SeedCredit struct {
	Name        string `yaml:"name"`
	Role        string `yaml:"role"`
	ProfilePath string `yaml:"profile_path"`
}

// SeedWatchLog is attached to the user's watch history, created on demand.
type SeedWatchLog struct {
	UserID    int64  `yaml:"user_id"`
	MovieID   int64  `yaml:"movie_id"`
	WatchedOn string `yaml:"watched_on"`
}

type SeedLegacyLog struct {
	UserID    int64  `yaml:"user_id"`
	MovieID   int64  `yaml:"movie_id"`
	WatchedOn string `yaml:"watched_on"`
	Rating    string `yaml:"rating"`
	Rewatch   bool   `yaml:"rewatch"`
}

// LoadSeedFile reads a YAML fixture from disk into the store.
func LoadSeedFile(s *Store, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	if err := LoadSeed(s, f); err != nil {
		return fmt.Errorf("seed file %s: %w", path, err)
	}
	return nil
}

// LoadSeed decodes a YAML fixture and inserts every record through the
// store's validated write path. Movies are inserted first.
func LoadSeed(s *Store, r io.Reader) error {
	var seed SeedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil && err != io.EOF {
		return fmt.Errorf("failed to decode seed: %w", err)
	}

	for i, sm := range seed.Movies {
		movie := v1.Movie{
			ID:             sm.ID,
			ExternalID:     sm.TMDBID,
			Title:          sm.Title,
			ReleaseDate:    sm.ReleaseDate,
			RuntimeMinutes: sm.Runtime,
			PosterPath:     sm.PosterPath,
			Genres:         sm.Genres,
		}
		for _, c := range sm.Credits {
			movie.Credits = append(movie.Credits, v1.Credit{
				PersonName:  c.Name,
				Role:        strings.ToLower(c.Role),
				ProfilePath: c.ProfilePath,
			})
		}
		if _, err := s.PutMovie(movie); err != nil {
			return fmt.Errorf("movies[%d]: %w", i, err)
		}
	}

	for _, userID := range seed.Histories {
		s.EnsureWatchHistory(userID)
	}

	for i, sl := range seed.WatchLogs {
		watchedOn, err := parseSeedDate(sl.WatchedOn)
		if err != nil {
			return fmt.Errorf("watch_logs[%d]: %w", i, err)
		}
		h := s.EnsureWatchHistory(sl.UserID)
		if _, err := s.AddWatchLog(h.ID, sl.MovieID, watchedOn); err != nil {
			return fmt.Errorf("watch_logs[%d]: %w", i, err)
		}
	}

	for i, sl := range seed.LegacyLogs {
		watchedOn, err := parseSeedDate(sl.WatchedOn)
		if err != nil {
			return fmt.Errorf("logs[%d]: %w", i, err)
		}
		l := v1.LegacyLog{
			UserID:    sl.UserID,
			MovieID:   sl.MovieID,
			WatchedOn: watchedOn,
			Rewatch:   sl.Rewatch,
		}
		if sl.Rating != "" {
			rating, err := decimal.NewFromString(sl.Rating)
			if err != nil {
				return fmt.Errorf("logs[%d]: invalid rating %q: %w", i, sl.Rating, err)
			}
			l.Rating = decimal.NewNullDecimal(rating)
		}
		if _, err := s.AddLegacyLog(l); err != nil {
			return fmt.Errorf("logs[%d]: %w", i, err)
		}
	}

	slog.Info("[Memory] Seed loaded",
		"movies", len(seed.Movies),
		"watch_logs", len(seed.WatchLogs),
		"logs", len(seed.LegacyLogs))
	return nil
}

func parseSeedDate(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, fmt.Errorf("watched_on is required")
	}
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid watched_on %q: %w", raw, err)
	}
	return t, nil
}
