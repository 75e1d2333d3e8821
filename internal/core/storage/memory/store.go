package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	v1 "github.com/pinkpig777/cinestats/internal/api/v1"
	"github.com/pinkpig777/cinestats/internal/core/storage"
)

// Store is an in-memory EventStore and Catalog.
// Useful for tests and for running the API without Postgres.
type Store struct {
	mu sync.RWMutex

	histories   map[int64]v1.WatchHistory // keyed by user id
	historyLogs []v1.WatchLog
	legacyLogs  []v1.LegacyLog
	movies      map[int64]*v1.Movie
	byExternal  map[int64]int64

	lastID int64
	nowFn  func() time.Time
}

var (
	_ storage.EventStore = (*Store)(nil)
	_ storage.Catalog    = (*Store)(nil)
)

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		histories:  make(map[int64]v1.WatchHistory),
		movies:     make(map[int64]*v1.Movie),
		byExternal: make(map[int64]int64),
		nowFn:      func() time.Time { return time.Now().UTC() },
	}
}

// SetClock replaces the clock used for created_at stamps and the
// "not in the future" check.
func (s *Store) SetClock(nowFn func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nowFn = nowFn
}

// EnsureWatchHistory returns the user's container, creating it if needed.
func (s *Store) EnsureWatchHistory(userID int64) v1.WatchHistory {
	s.mu.Lock()
	defer s.mu.Unlock()

	if h, ok := s.histories[userID]; ok {
		return h
	}
	h := v1.WatchHistory{ID: s.nextID(), UserID: userID, CreatedAt: s.nowFn()}
	s.histories[userID] = h
	return h
}

// DeleteWatchHistory drops the container but keeps its logs.
func (s *Store) DeleteWatchHistory(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.histories, userID)
}

// AddWatchLog validates and appends a history-channel log. The user id is
// taken from the owning container.
func (s *Store) AddWatchLog(historyID, movieID int64, watchedOn time.Time) (v1.WatchLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var owner *v1.WatchHistory
	for _, h := range s.histories {
		if h.ID == historyID {
			h := h
			owner = &h
			break
		}
	}
	if owner == nil {
		return v1.WatchLog{}, fmt.Errorf("watch history %d: %w", historyID, storage.ErrNotFound)
	}

	now := s.nowFn()
	l := v1.WatchLog{
		WatchHistoryID: historyID,
		UserID:         owner.UserID,
		MovieID:        movieID,
		WatchedOn:      watchedOn,
		CreatedAt:      now,
	}
	if err := l.Validate(now); err != nil {
		return v1.WatchLog{}, err
	}
	if _, ok := s.movies[movieID]; !ok {
		return v1.WatchLog{}, fmt.Errorf("movie %d: %w", movieID, storage.ErrNotFound)
	}

	l.ID = s.nextID()
	s.historyLogs = append(s.historyLogs, l)
	return l, nil
}

// AddLegacyLog validates and appends a legacy entry.
func (s *Store) AddLegacyLog(l v1.LegacyLog) (v1.LegacyLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := l.Validate(); err != nil {
		return v1.LegacyLog{}, err
	}
	if _, ok := s.movies[l.MovieID]; !ok {
		return v1.LegacyLog{}, fmt.Errorf("movie %d: %w", l.MovieID, storage.ErrNotFound)
	}

	l.ID = s.nextID()
	if l.CreatedAt.IsZero() {
		l.CreatedAt = s.nowFn()
	}
	s.legacyLogs = append(s.legacyLogs, l)
	return l, nil
}

// PutMovie inserts or replaces a catalog movie. A zero ID is assigned.
func (s *Store) PutMovie(m v1.Movie) (*v1.Movie, error) {
	if strings.TrimSpace(m.Title) == "" {
		return nil, errors.New("title is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if m.ID == 0 {
		m.ID = s.nextID()
	} else if m.ID > s.lastID {
		s.lastID = m.ID
	}
	stored := cloneMovie(&m)
	s.movies[m.ID] = stored
	if m.ExternalID != 0 {
		s.byExternal[m.ExternalID] = m.ID
	}
	return cloneMovie(stored), nil
}

func (s *Store) FindWatchHistory(ctx context.Context, userID int64) (*v1.WatchHistory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.histories[userID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &h, nil
}

func (s *Store) ListHistoryLogs(ctx context.Context, historyID int64) ([]v1.WatchLog, error) {
	return s.filterHistoryLogs(func(l v1.WatchLog) bool { return l.WatchHistoryID == historyID }), nil
}

func (s *Store) ListHistoryLogsByUser(ctx context.Context, userID int64) ([]v1.WatchLog, error) {
	return s.filterHistoryLogs(func(l v1.WatchLog) bool { return l.UserID == userID }), nil
}

func (s *Store) ListLegacyLogs(ctx context.Context, userID int64) ([]v1.LegacyLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]v1.LegacyLog, 0)
	for _, l := range s.legacyLogs {
		if l.UserID == userID {
			result = append(result, l)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].WatchedOn.Before(result[j].WatchedOn)
	})
	return result, nil
}

func (s *Store) DistinctWatchYears(ctx context.Context, userID int64) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[int]struct{})
	years := make([]int, 0)
	for _, l := range s.historyLogs {
		if l.UserID != userID || l.WatchedOn.IsZero() {
			continue
		}
		y := l.WatchedOn.Year()
		if _, ok := seen[y]; ok {
			continue
		}
		seen[y] = struct{}{}
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years, nil
}

func (s *Store) GetMovie(ctx context.Context, id int64) (*v1.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.movies[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return cloneMovie(m), nil
}

func (s *Store) GetOrCreateFromExternal(ctx context.Context, movie *v1.Movie) (*v1.Movie, error) {
	if movie == nil || movie.ExternalID == 0 {
		return nil, errors.New("external id is required")
	}
	if strings.TrimSpace(movie.Title) == "" {
		return nil, errors.New("title is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.byExternal[movie.ExternalID]; ok {
		return cloneMovie(s.movies[id]), nil
	}

	stored := cloneMovie(movie)
	stored.ID = s.nextID()
	s.movies[stored.ID] = stored
	s.byExternal[stored.ExternalID] = stored.ID
	return cloneMovie(stored), nil
}

func (s *Store) UpdateRuntime(ctx context.Context, movieID int64, minutes int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.movies[movieID]
	if !ok {
		return storage.ErrNotFound
	}
	m.RuntimeMinutes = v1.IntPtr(minutes)
	return nil
}

// ListMoviesMissingRuntime returns linked movies without a runtime, ordered by id.
func (s *Store) ListMoviesMissingRuntime(ctx context.Context, afterID int64, limit int) ([]*v1.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0)
	for id, m := range s.movies {
		if id > afterID && m.ExternalID != 0 && !m.HasRuntime() {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}

	result := make([]*v1.Movie, 0, len(ids))
	for _, id := range ids {
		result = append(result, cloneMovie(s.movies[id]))
	}
	return result, nil
}

func (s *Store) filterHistoryLogs(keep func(v1.WatchLog) bool) []v1.WatchLog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]v1.WatchLog, 0)
	for _, l := range s.historyLogs {
		if keep(l) {
			result = append(result, l)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].WatchedOn.Before(result[j].WatchedOn)
	})
	return result
}

// nextID must be called with mu held.
func (s *Store) nextID() int64 {
	s.lastID++
	return s.lastID
}

func cloneMovie(m *v1.Movie) *v1.Movie {
	c := *m
	if m.RuntimeMinutes != nil {
		c.RuntimeMinutes = v1.IntPtr(*m.RuntimeMinutes)
	}
	c.Genres = append([]string{}, m.Genres...)
	c.Credits = append([]v1.Credit{}, m.Credits...)
	return &c
}
