package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordCacheLookup(t *testing.T) {
	for _, result := range []string{LookupHit, LookupMissing, LookupMiss} {
		t.Run(result, func(t *testing.T) {
			before := testutil.ToFloat64(RuntimeCacheLookups.WithLabelValues(result))
			RecordCacheLookup(result)
			after := testutil.ToFloat64(RuntimeCacheLookups.WithLabelValues(result))
			require.Equal(t, before+1, after)
		})
	}
}

func TestRecordRuntimeFetch(t *testing.T) {
	before := testutil.ToFloat64(RuntimeFetches.WithLabelValues(FetchUnavailable))
	RecordRuntimeFetch(FetchUnavailable)
	RecordRuntimeFetch(FetchUnavailable)
	require.Equal(t, before+2, testutil.ToFloat64(RuntimeFetches.WithLabelValues(FetchUnavailable)))
}

func TestRecordBackfill(t *testing.T) {
	before := testutil.ToFloat64(RuntimeBackfillMovies.WithLabelValues(BackfillResolved))
	RecordBackfill(BackfillResolved)
	require.Equal(t, before+1, testutil.ToFloat64(RuntimeBackfillMovies.WithLabelValues(BackfillResolved)))
}

func TestSetRuntimeCacheEntries(t *testing.T) {
	SetRuntimeCacheEntries(17)
	require.Equal(t, float64(17), testutil.ToFloat64(RuntimeCacheEntries))
	SetRuntimeCacheEntries(0)
	require.Equal(t, float64(0), testutil.ToFloat64(RuntimeCacheEntries))
}

func TestRecordBreakerTransition(t *testing.T) {
	before := testutil.ToFloat64(CircuitBreakerTransitions.WithLabelValues("test-breaker", "closed", "open"))

	RecordBreakerTransition("test-breaker", "closed", "open", 2)

	require.Equal(t, float64(2), testutil.ToFloat64(CircuitBreakerState.WithLabelValues("test-breaker")))
	require.Equal(t, before+1, testutil.ToFloat64(CircuitBreakerTransitions.WithLabelValues("test-breaker", "closed", "open")))
}

func TestRecordReportFailure(t *testing.T) {
	before := testutil.ToFloat64(ReportFailures.WithLabelValues("overview"))
	RecordReportFailure("overview")
	require.Equal(t, before+1, testutil.ToFloat64(ReportFailures.WithLabelValues("overview")))
}

func TestHistogramsAcceptObservations(t *testing.T) {
	RecordProviderRequest("movie", "200", 30*time.Millisecond)
	RecordReport("heatmap", 2*time.Millisecond)
	RecordAPIRequest("GET", "/v1/stats/:user_id", "200", 5*time.Millisecond)

	require.Positive(t, testutil.CollectAndCount(ProviderRequestDuration))
	require.Positive(t, testutil.CollectAndCount(ReportDuration))
	require.Positive(t, testutil.CollectAndCount(APIRequestDuration))
	require.Equal(t, float64(1), testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/v1/stats/:user_id", "200")))
}
