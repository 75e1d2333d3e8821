package backfill

import (
	"context"
	"testing"

	"github.com/pinkpig777/cinestats/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRunBatch_ResolvesPage(t *testing.T) {
	lister := newFakeLister(3, 5, 8, 13)
	resolver := newFakeResolver(map[int64]int{3: 120, 8: 95})

	resolvedBefore := testutil.ToFloat64(metrics.RuntimeBackfillMovies.WithLabelValues(metrics.BackfillResolved))
	missingBefore := testutil.ToFloat64(metrics.RuntimeBackfillMovies.WithLabelValues(metrics.BackfillMissing))

	result, err := RunBatch(context.Background(), lister, resolver, 0, JobOptions{BatchSize: 3, WorkerCount: 2})
	require.NoError(t, err)
	require.Equal(t, BatchResult{Scanned: 3, Resolved: 2, LastID: 8}, result)

	require.Equal(t, 1, resolver.calls(3))
	require.Equal(t, 1, resolver.calls(5))
	require.Equal(t, 1, resolver.calls(8))
	require.Equal(t, 0, resolver.calls(13))

	require.Equal(t, resolvedBefore+2, testutil.ToFloat64(metrics.RuntimeBackfillMovies.WithLabelValues(metrics.BackfillResolved)))
	require.Equal(t, missingBefore+1, testutil.ToFloat64(metrics.RuntimeBackfillMovies.WithLabelValues(metrics.BackfillMissing)))
}

func TestRunBatch_EmptyPageKeepsCursor(t *testing.T) {
	lister := newFakeLister(3)
	resolver := newFakeResolver(nil)

	result, err := RunBatch(context.Background(), lister, resolver, 3, JobOptions{})
	require.NoError(t, err)
	require.Equal(t, BatchResult{LastID: 3}, result)
	require.Zero(t, resolver.total())
}

func TestRunBatch_ListerError(t *testing.T) {
	lister := newFakeLister()
	lister.err = errListFailed

	result, err := RunBatch(context.Background(), lister, newFakeResolver(nil), 42, JobOptions{})
	require.ErrorIs(t, err, errListFailed)
	require.Equal(t, int64(42), result.LastID)
}

func TestRunBatch_CancelledContextSkipsResolution(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	lister := newFakeLister(1, 2, 3)
	resolver := newFakeResolver(map[int64]int{1: 90, 2: 100, 3: 110})

	result, err := RunBatch(ctx, lister, resolver, 0, JobOptions{BatchSize: 10, WorkerCount: 2})
	require.NoError(t, err)
	require.Equal(t, 3, result.Scanned)
	require.Zero(t, result.Resolved)
	require.Zero(t, resolver.total())
}

func TestJobOptions_Normalized(t *testing.T) {
	tests := []struct {
		name string
		in   JobOptions
		want JobOptions
	}{
		{name: "defaults", in: JobOptions{}, want: JobOptions{BatchSize: 500, WorkerCount: 4}},
		{name: "negative", in: JobOptions{BatchSize: -1, WorkerCount: -2}, want: JobOptions{BatchSize: 500, WorkerCount: 4}},
		{name: "explicit", in: JobOptions{BatchSize: 50, WorkerCount: 8}, want: JobOptions{BatchSize: 50, WorkerCount: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.in.normalized())
		})
	}
}
