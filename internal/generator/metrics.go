package generator

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	generationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "suggestd",
			Subsystem: "generator",
			Name:      "generation_duration_seconds",
			Help:      "Pure pipeline generation time per request",
			Buckets:   prometheus.DefBuckets,
		},
	)

	suggestionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "suggestd",
			Subsystem: "generator",
			Name:      "suggestions_total",
			Help:      "Total suggestions generated",
		},
	)

	generationFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "suggestd",
			Subsystem: "generator",
			Name:      "failures_total",
			Help:      "Generation calls that returned an error",
		},
	)
)

func init() {
	prometheus.MustRegister(generationDuration, suggestionsTotal, generationFailures)
}
