package stats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	v1 "github.com/pinkpig777/cinestats/internal/api/v1"
	"github.com/pinkpig777/cinestats/internal/core/aggregation"
	"github.com/pinkpig777/cinestats/internal/core/storage"
)

// userEvents is one user's event set. History and Legacy are never merged;
// reports read whichever channel they account for.
type userEvents struct {
	History []WatchEvent
	Legacy  []WatchEvent
	Movies  map[int64]*v1.Movie
}

// loadEvents reads both channels for the user. The history channel is read
// through the user's Watch History container, falling back to a user-id scan
// when the container is missing.
func (s *Service) loadEvents(ctx context.Context, userID int64) (*userEvents, error) {
	historyLogs, err := s.loadHistoryLogs(ctx, userID)
	if err != nil {
		return nil, err
	}
	legacyLogs, err := s.events.ListLegacyLogs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list legacy logs: %w", err)
	}

	return &userEvents{
		History: normalizeHistory(userID, historyLogs),
		Legacy:  normalizeLegacy(legacyLogs),
	}, nil
}

func (s *Service) loadHistoryLogs(ctx context.Context, userID int64) ([]v1.WatchLog, error) {
	history, err := s.events.FindWatchHistory(ctx, userID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		slog.Debug("[Stats] No watch history container, scanning by user", "user_id", userID)
		logs, err := s.events.ListHistoryLogsByUser(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("list history logs by user: %w", err)
		}
		return logs, nil
	case err != nil:
		return nil, fmt.Errorf("find watch history: %w", err)
	}

	logs, err := s.events.ListHistoryLogs(ctx, history.ID)
	if err != nil {
		return nil, fmt.Errorf("list history logs: %w", err)
	}
	return logs, nil
}

// loadEventsWithMovies additionally resolves catalog metadata for every
// history movie. Events whose movie is unknown to the catalog are dropped,
// and rewatches are re-derived over what remains.
func (s *Service) loadEventsWithMovies(ctx context.Context, userID int64) (*userEvents, error) {
	ev, err := s.loadEvents(ctx, userID)
	if err != nil {
		return nil, err
	}

	ev.Movies = make(map[int64]*v1.Movie)
	for _, e := range ev.History {
		if _, seen := ev.Movies[e.MovieID]; seen {
			continue
		}
		movie, err := s.catalog.GetMovie(ctx, e.MovieID)
		if errors.Is(err, storage.ErrNotFound) {
			slog.Warn("[Stats] Skipping events for unknown movie", "user_id", userID, "movie_id", e.MovieID)
			ev.Movies[e.MovieID] = nil
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("get movie %d: %w", e.MovieID, err)
		}
		ev.Movies[e.MovieID] = movie
	}

	kept := ev.History[:0]
	for _, e := range ev.History {
		if ev.Movies[e.MovieID] != nil {
			kept = append(kept, e)
		}
	}
	for id, m := range ev.Movies {
		if m == nil {
			delete(ev.Movies, id)
		}
	}
	ev.History = deriveRewatches(kept)
	return ev, nil
}

// normalizeHistory converts history logs into events, skipping records with
// no movie or date. Order is preserved.
func normalizeHistory(userID int64, logs []v1.WatchLog) []WatchEvent {
	events := make([]WatchEvent, 0, len(logs))
	for _, l := range logs {
		if l.MovieID == 0 || l.WatchedOn.IsZero() {
			continue
		}
		uid := l.UserID
		if uid == 0 {
			uid = userID
		}
		events = append(events, WatchEvent{
			Source:    ChannelHistory,
			UserID:    uid,
			MovieID:   l.MovieID,
			WatchedOn: aggregation.Day(l.WatchedOn),
		})
	}
	return deriveRewatches(events)
}

// deriveRewatches marks an event as a rewatch when another event for the same
// movie has a strictly earlier date. Same-day repeats of the first viewing
// are not rewatches.
func deriveRewatches(events []WatchEvent) []WatchEvent {
	earliest := make(map[int64]int64, len(events))
	for _, e := range events {
		day := e.WatchedOn.Unix()
		if first, ok := earliest[e.MovieID]; !ok || day < first {
			earliest[e.MovieID] = day
		}
	}
	for i := range events {
		events[i].Rewatch = events[i].WatchedOn.Unix() > earliest[events[i].MovieID]
	}
	return events
}

func normalizeLegacy(logs []v1.LegacyLog) []WatchEvent {
	events := make([]WatchEvent, 0, len(logs))
	for _, l := range logs {
		if l.MovieID == 0 || l.WatchedOn.IsZero() {
			continue
		}
		events = append(events, WatchEvent{
			Source:    ChannelLegacy,
			UserID:    l.UserID,
			MovieID:   l.MovieID,
			WatchedOn: aggregation.Day(l.WatchedOn),
			Rewatch:   l.Rewatch,
			Rating:    l.Rating,
		})
	}
	return events
}
