package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	v1 "github.com/pinkpig777/cinestats/internal/api/v1"
	"github.com/pinkpig777/cinestats/internal/core/aggregation"
	"github.com/pinkpig777/cinestats/internal/core/storage"
	"github.com/pinkpig777/cinestats/internal/metrics"
	storagemocks "github.com/pinkpig777/cinestats/internal/mocks/storage"
	"github.com/pinkpig777/cinestats/internal/resolver"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCalculateOverview_Totals(t *testing.T) {
	f := newFixture(t)
	parasite := f.movie(v1.Movie{
		Title:          "Parasite",
		ReleaseDate:    "2019-05-30",
		RuntimeMinutes: v1.IntPtr(132),
		Genres:         []string{"Thriller", "Drama"},
	})
	untitled := f.movie(v1.Movie{Title: "Home Movie", Genres: []string{"Drama"}})

	f.watch(parasite, day(2025, 1, 1))
	f.watch(untitled, day(2025, 1, 5))
	f.watch(parasite, day(2025, 2, 1))
	f.legacy(parasite, day(2025, 1, 1), "8", false)
	f.legacy(untitled, day(2025, 1, 5), "", true)

	o := f.svc.CalculateOverview(context.Background(), testUser)

	require.Equal(t, 2, o.TotalMovies)
	require.Equal(t, 132, o.TotalMinutes)
	require.Equal(t, 1, o.TotalReviews)
	// One derived history rewatch plus one legacy flag.
	require.Equal(t, 2, o.TotalRewatches)
	require.Equal(t, []aggregation.RankedEntry{
		{Name: "Drama", Count: 3},
		{Name: "Thriller", Count: 2},
	}, o.GenreBreakdown)
	require.Equal(t, []aggregation.RankedEntry{{Name: "2010s", Count: 1}}, o.DecadeBreakdown)
}

func TestCalculateOverview_GenresAndDecades(t *testing.T) {
	f := newFixture(t)
	tenet := f.movie(v1.Movie{
		Title:       "Tenet",
		ReleaseDate: "2020-08-26",
		Genres:      []string{"Action", "Thriller", "Science Fiction"},
	})
	undated := f.movie(v1.Movie{Title: "Lost Reel"})
	garbled := f.movie(v1.Movie{Title: "Bad Date", ReleaseDate: "someday"})

	f.watch(tenet, day(2025, 3, 1))
	f.watch(undated, day(2025, 3, 2))
	f.watch(garbled, day(2025, 3, 3))

	o := f.svc.CalculateOverview(context.Background(), testUser)

	sum := 0
	for _, g := range o.GenreBreakdown {
		sum += g.Count
	}
	require.Equal(t, 3, sum)
	require.Equal(t, "Action", o.GenreBreakdown[0].Name, "ties keep first-seen order")
	require.Equal(t, []aggregation.RankedEntry{{Name: "2020s", Count: 1}}, o.DecadeBreakdown)
	require.Equal(t, 3, o.TotalMovies)
}

func TestCalculateOverview_DecadesAscending(t *testing.T) {
	f := newFixture(t)
	for i, release := range []string{"1994-09-23", "2020-01-01", "1972-03-24", "1999-03-31"} {
		id := f.movie(v1.Movie{Title: release, ReleaseDate: release})
		f.watch(id, day(2025, 1, i+1))
	}

	o := f.svc.CalculateOverview(context.Background(), testUser)

	require.Equal(t, []aggregation.RankedEntry{
		{Name: "1970s", Count: 1},
		{Name: "1990s", Count: 2},
		{Name: "2020s", Count: 1},
	}, o.DecadeBreakdown)
}

func TestCalculateOverview_ResolvesRuntimeOnce(t *testing.T) {
	fetcher := &mockFetcher{}
	fetcher.On("FetchRuntime", mock.Anything, int64(603)).Return(139, true, nil).Once()

	f := newFixture(t)
	f.withResolver(resolver.New(resolver.NewLRUCache(10, time.Hour), fetcher, f.store))
	matrix := f.movie(v1.Movie{Title: "The Matrix", ExternalID: 603})
	f.watch(matrix, day(2025, 4, 1))
	f.watch(matrix, day(2025, 4, 2))

	first := f.svc.CalculateOverview(context.Background(), testUser)
	second := f.svc.CalculateOverview(context.Background(), testUser)

	require.Equal(t, 139, first.TotalMinutes)
	require.Equal(t, 139, second.TotalMinutes)
	fetcher.AssertNumberOfCalls(t, "FetchRuntime", 1)

	stored, err := f.store.GetMovie(context.Background(), matrix)
	require.NoError(t, err)
	require.Equal(t, 139, stored.Runtime())
}

func TestCalculateOverview_UnavailableRuntimeCountsZero(t *testing.T) {
	fetcher := &mockFetcher{}
	fetcher.On("FetchRuntime", mock.Anything, int64(11)).Return(0, false, errors.New("provider down")).Once()

	f := newFixture(t)
	f.withResolver(resolver.New(resolver.NewLRUCache(10, time.Hour), fetcher, f.store))
	id := f.movie(v1.Movie{Title: "Star Wars", ExternalID: 11})
	f.watch(id, day(2025, 4, 1))

	require.Equal(t, 0, f.svc.CalculateOverview(context.Background(), testUser).TotalMinutes)
	require.Equal(t, 0, f.svc.CalculateOverview(context.Background(), testUser).TotalMinutes)
	fetcher.AssertNumberOfCalls(t, "FetchRuntime", 1)
}

func TestCalculateOverview_SkipsUnknownMovies(t *testing.T) {
	events := storagemocks.NewEventStore(t)
	catalog := storagemocks.NewCatalog(t)

	events.EXPECT().FindWatchHistory(mock.Anything, testUser).
		Return(&v1.WatchHistory{ID: 5, UserID: testUser}, nil)
	events.EXPECT().ListHistoryLogs(mock.Anything, int64(5)).Return([]v1.WatchLog{
		{MovieID: 99, WatchedOn: day(2024, 12, 31)},
		{MovieID: 1, WatchedOn: day(2025, 1, 1)},
		{MovieID: 1, WatchedOn: day(2025, 1, 2)},
	}, nil)
	events.EXPECT().ListLegacyLogs(mock.Anything, testUser).Return([]v1.LegacyLog{}, nil)
	catalog.EXPECT().GetMovie(mock.Anything, int64(99)).Return(nil, storage.ErrNotFound).Once()
	catalog.EXPECT().GetMovie(mock.Anything, int64(1)).Return(&v1.Movie{
		ID:             1,
		Title:          "Heat",
		RuntimeMinutes: v1.IntPtr(170),
		Genres:         []string{"Crime"},
	}, nil).Once()

	svc := NewService(events, catalog, nil, WithClock(func() time.Time { return testNow }))
	o := svc.CalculateOverview(context.Background(), testUser)

	require.Equal(t, 1, o.TotalMovies)
	require.Equal(t, 170, o.TotalMinutes)
	require.Equal(t, 1, o.TotalRewatches)
	require.Equal(t, []aggregation.RankedEntry{{Name: "Crime", Count: 2}}, o.GenreBreakdown)
}

func TestCalculateOverview_StoreFailureReturnsDefaults(t *testing.T) {
	events := storagemocks.NewEventStore(t)
	catalog := storagemocks.NewCatalog(t)
	events.EXPECT().FindWatchHistory(mock.Anything, testUser).Return(nil, errors.New("connection refused"))

	before := testutil.ToFloat64(metrics.ReportFailures.WithLabelValues(reportOverview))

	svc := NewService(events, catalog, nil, WithClock(func() time.Time { return testNow }))
	o := svc.CalculateOverview(context.Background(), testUser)

	require.Equal(t, emptyOverview(), o)
	require.NotNil(t, o.GenreBreakdown)
	require.NotNil(t, o.DecadeBreakdown)
	require.Equal(t, before+1, testutil.ToFloat64(metrics.ReportFailures.WithLabelValues(reportOverview)))
}

func TestCalculateOverview_CatalogFailureReturnsDefaults(t *testing.T) {
	events := storagemocks.NewEventStore(t)
	catalog := storagemocks.NewCatalog(t)
	events.EXPECT().FindWatchHistory(mock.Anything, testUser).Return(nil, storage.ErrNotFound)
	events.EXPECT().ListHistoryLogsByUser(mock.Anything, testUser).
		Return([]v1.WatchLog{{MovieID: 3, WatchedOn: day(2025, 1, 1)}}, nil)
	events.EXPECT().ListLegacyLogs(mock.Anything, testUser).Return([]v1.LegacyLog{}, nil)
	catalog.EXPECT().GetMovie(mock.Anything, int64(3)).Return(nil, errors.New("timeout"))

	svc := NewService(events, catalog, nil, WithClock(func() time.Time { return testNow }))

	require.Equal(t, emptyOverview(), svc.CalculateOverview(context.Background(), testUser))
}

type panickingResolver struct{}

func (panickingResolver) Resolve(ctx context.Context, movie *v1.Movie) int {
	panic("runtime lookup exploded")
}

func TestCalculateOverview_PanicReturnsDefaults(t *testing.T) {
	f := newFixture(t).withResolver(panickingResolver{})
	id := f.movie(v1.Movie{ExternalID: 550, Title: "Fight Club", Genres: []string{"Drama"}})
	f.watch(id, day(2025, 1, 1))

	before := testutil.ToFloat64(metrics.ReportFailures.WithLabelValues(reportOverview))

	var o Overview
	require.NotPanics(t, func() {
		o = f.svc.CalculateOverview(context.Background(), testUser)
	})
	require.Equal(t, emptyOverview(), o)
	require.Equal(t, before+1, testutil.ToFloat64(metrics.ReportFailures.WithLabelValues(reportOverview)))
}
