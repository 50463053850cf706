package completion

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	cacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "suggestd",
			Subsystem: "completion",
			Name:      "cache_hits_total",
			Help:      "Completion cache hits",
		},
	)

	cacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "suggestd",
			Subsystem: "completion",
			Name:      "cache_misses_total",
			Help:      "Completion cache misses",
		},
	)

	backendFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "suggestd",
			Subsystem: "completion",
			Name:      "backend_failures_total",
			Help:      "Outbound completion requests that failed and degraded to empty results",
		},
	)

	backendRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "suggestd",
			Subsystem: "completion",
			Name:      "backend_request_duration_seconds",
			Help:      "Duration of successful outbound completion requests",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(cacheHits, cacheMisses, backendFailures, backendRequestDuration)
}
