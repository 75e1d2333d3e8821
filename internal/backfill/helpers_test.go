package backfill

import (
	"context"
	"errors"
	"sort"
	"sync"

	v1 "github.com/pinkpig777/cinestats/internal/api/v1"
)

var errListFailed = errors.New("catalog unavailable")

type fakeLister struct {
	mu     sync.Mutex
	movies []*v1.Movie
	calls  []int64
	err    error
}

func newFakeLister(ids ...int64) *fakeLister {
	l := &fakeLister{}
	for _, id := range ids {
		l.movies = append(l.movies, &v1.Movie{ID: id, ExternalID: id * 10, Title: "movie"})
	}
	sort.Slice(l.movies, func(i, j int) bool { return l.movies[i].ID < l.movies[j].ID })
	return l
}

func (l *fakeLister) ListMoviesMissingRuntime(ctx context.Context, afterID int64, limit int) ([]*v1.Movie, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, afterID)
	if l.err != nil {
		return nil, l.err
	}
	page := make([]*v1.Movie, 0, limit)
	for _, m := range l.movies {
		if m.ID > afterID && len(page) < limit {
			page = append(page, m)
		}
	}
	return page, nil
}

func (l *fakeLister) cursors() []int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]int64{}, l.calls...)
}

// endlessLister always returns a full page so a pass never finishes on its own.
type endlessLister struct{}

func (endlessLister) ListMoviesMissingRuntime(ctx context.Context, afterID int64, limit int) ([]*v1.Movie, error) {
	page := make([]*v1.Movie, 0, limit)
	for i := 1; i <= limit; i++ {
		page = append(page, &v1.Movie{ID: afterID + int64(i), ExternalID: 1})
	}
	return page, nil
}

type fakeResolver struct {
	mu       sync.Mutex
	runtimes map[int64]int
	seen     map[int64]int
}

func newFakeResolver(runtimes map[int64]int) *fakeResolver {
	return &fakeResolver{runtimes: runtimes, seen: make(map[int64]int)}
}

func (r *fakeResolver) Resolve(ctx context.Context, movie *v1.Movie) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen[movie.ID]++
	return r.runtimes[movie.ID]
}

func (r *fakeResolver) calls(id int64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seen[id]
}

func (r *fakeResolver) total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.seen {
		n += c
	}
	return n
}
