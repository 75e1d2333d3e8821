package stats

import (
	"context"
	"testing"

	v1 "github.com/pinkpig777/cinestats/internal/api/v1"
	"github.com/pinkpig777/cinestats/internal/core/aggregation"
	"github.com/stretchr/testify/require"
)

func TestCalculateTopContributors(t *testing.T) {
	f := newFixture(t)
	prestige := f.movie(v1.Movie{
		Title:  "The Prestige",
		Genres: []string{"Drama"},
		Credits: []v1.Credit{
			{PersonName: "Christopher Nolan", Role: v1.RoleDirector, ProfilePath: "/nolan-1.jpg"},
			{PersonName: "Christian Bale", Role: v1.RoleCast, ProfilePath: "/bale.jpg"},
			{PersonName: "Michael Caine", Role: v1.RoleCast},
		},
	})
	interstellar := f.movie(v1.Movie{
		Title:  "Interstellar",
		Genres: []string{"Drama", "Science Fiction", "Adventure"},
		Credits: []v1.Credit{
			{PersonName: "Christopher Nolan", Role: v1.RoleDirector, ProfilePath: "/nolan-2.jpg"},
			{PersonName: "Michael Caine", Role: v1.RoleCast, ProfilePath: "/caine.jpg"},
			{PersonName: "Michael Caine", Role: v1.RoleDirector},
			{PersonName: "Hoyte van Hoytema", Role: "cinematographer"},
		},
	})

	f.watch(prestige, day(2025, 1, 1))
	f.watch(prestige, day(2025, 1, 8))
	f.watch(interstellar, day(2025, 2, 1))

	top := f.svc.CalculateTopContributors(context.Background(), testUser, 0)

	require.Equal(t, []aggregation.RankedEntry{
		{Name: "Drama", Count: 3},
		{Name: "Science Fiction", Count: 1},
		{Name: "Adventure", Count: 1},
	}, top.TopGenres)
	require.Equal(t, []aggregation.RankedEntry{
		{Name: "Christopher Nolan", Count: 3, Image: "/nolan-1.jpg"},
		{Name: "Michael Caine", Count: 1},
	}, top.TopDirectors)
	require.Equal(t, []aggregation.RankedEntry{
		{Name: "Michael Caine", Count: 3},
		{Name: "Christian Bale", Count: 2, Image: "/bale.jpg"},
	}, top.TopActors)
}

func TestCalculateTopContributors_Limit(t *testing.T) {
	f := newFixture(t, WithTopLimit(2))
	for i, genre := range []string{"Horror", "Comedy", "Western", "Noir"} {
		id := f.movie(v1.Movie{Title: genre, Genres: []string{genre}})
		f.watch(id, day(2025, 1, i+1))
	}

	require.Len(t, f.svc.CalculateTopContributors(context.Background(), testUser, 0).TopGenres, 2)

	top := f.svc.CalculateTopContributors(context.Background(), testUser, 3)
	require.Equal(t, []aggregation.RankedEntry{
		{Name: "Horror", Count: 1},
		{Name: "Comedy", Count: 1},
		{Name: "Western", Count: 1},
	}, top.TopGenres)
	require.Empty(t, top.TopDirectors)
	require.NotNil(t, top.TopDirectors)
}
