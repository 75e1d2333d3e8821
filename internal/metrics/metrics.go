// Package metrics holds the process-wide Prometheus collectors for the
// runtime resolver and its backfill, the metadata provider client and the
// stats API.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Runtime cache lookup results.
const (
	LookupHit     = "hit"
	LookupMissing = "missing"
	LookupMiss    = "miss"
)

// Runtime fetch outcomes.
const (
	FetchOK          = "ok"
	FetchUnavailable = "unavailable"
	FetchError       = "error"
)

// Runtime backfill outcomes.
const (
	BackfillResolved = "resolved"
	BackfillMissing  = "missing"
)

var (
	// Runtime Resolver
	RuntimeCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinestats_runtime_cache_lookups_total",
			Help: "Runtime cache lookups by result (hit, missing, miss)",
		},
		[]string{"result"},
	)

	RuntimeFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinestats_runtime_fetches_total",
			Help: "External runtime fetches by outcome",
		},
		[]string{"outcome"},
	)

	RuntimeWriteThroughErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cinestats_runtime_write_through_errors_total",
			Help: "Failed catalog updates after a successful runtime fetch",
		},
	)

	RuntimeCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinestats_runtime_cache_entries",
			Help: "Current number of runtime cache entries",
		},
	)

	RuntimeBackfillMovies = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinestats_runtime_backfill_movies_total",
			Help: "Movies visited by the runtime backfill, by outcome",
		},
		[]string{"outcome"},
	)

	// Metadata provider
	ProviderRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinestats_provider_request_duration_seconds",
			Help:    "Duration of metadata provider requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "status"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cinestats_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinestats_circuit_breaker_state_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Stats engine
	ReportDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinestats_report_duration_seconds",
			Help:    "Time spent computing a stats report",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"report"},
	)

	ReportFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinestats_report_failures_total",
			Help: "Reports that degraded to their default value",
		},
		[]string{"report"},
	)

	// HTTP
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinestats_api_requests_total",
			Help: "HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinestats_api_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

func RecordCacheLookup(result string) {
	RuntimeCacheLookups.WithLabelValues(result).Inc()
}

func RecordRuntimeFetch(outcome string) {
	RuntimeFetches.WithLabelValues(outcome).Inc()
}

func RecordWriteThroughError() {
	RuntimeWriteThroughErrors.Inc()
}

func SetRuntimeCacheEntries(n int) {
	RuntimeCacheEntries.Set(float64(n))
}

func RecordBackfill(outcome string) {
	RuntimeBackfillMovies.WithLabelValues(outcome).Inc()
}

func RecordProviderRequest(endpoint, status string, duration time.Duration) {
	ProviderRequestDuration.WithLabelValues(endpoint, status).Observe(duration.Seconds())
}

// RecordBreakerTransition updates the state gauge and counts the transition.
func RecordBreakerTransition(name, from, to string, state float64) {
	CircuitBreakerState.WithLabelValues(name).Set(state)
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
}

func RecordReport(report string, duration time.Duration) {
	ReportDuration.WithLabelValues(report).Observe(duration.Seconds())
}

func RecordReportFailure(report string) {
	ReportFailures.WithLabelValues(report).Inc()
}

func RecordAPIRequest(method, route, status string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, status).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
