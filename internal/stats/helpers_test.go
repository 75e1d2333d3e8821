package stats

import (
	"context"
	"testing"
	"time"

	v1 "github.com/pinkpig777/cinestats/internal/api/v1"
	"github.com/pinkpig777/cinestats/internal/core/storage/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testUser int64 = 42

// 2025-06-15 is a Sunday in a non-leap year.
var testNow = time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	t       *testing.T
	store   *memory.Store
	history v1.WatchHistory
	svc     *Service
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()

	store := memory.NewStore()
	store.SetClock(func() time.Time { return testNow })

	f := &fixture{
		t:       t,
		store:   store,
		history: store.EnsureWatchHistory(testUser),
	}
	opts = append([]Option{WithClock(func() time.Time { return testNow })}, opts...)
	f.svc = NewService(store, store, nil, opts...)
	return f
}

func (f *fixture) withResolver(r RuntimeResolver) *fixture {
	f.svc.resolver = r
	return f
}

func (f *fixture) movie(m v1.Movie) int64 {
	f.t.Helper()
	stored, err := f.store.PutMovie(m)
	require.NoError(f.t, err)
	return stored.ID
}

func (f *fixture) watch(movieID int64, on time.Time) {
	f.t.Helper()
	_, err := f.store.AddWatchLog(f.history.ID, movieID, on)
	require.NoError(f.t, err)
}

func (f *fixture) legacy(movieID int64, on time.Time, rating string, rewatch bool) {
	f.t.Helper()
	l := v1.LegacyLog{UserID: testUser, MovieID: movieID, WatchedOn: on, Rewatch: rewatch}
	if rating != "" {
		l.Rating = decimal.NewNullDecimal(decimal.RequireFromString(rating))
	}
	_, err := f.store.AddLegacyLog(l)
	require.NoError(f.t, err)
}

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) FetchRuntime(ctx context.Context, externalID int64) (int, bool, error) {
	args := m.Called(ctx, externalID)
	return args.Int(0), args.Bool(1), args.Error(2)
}
