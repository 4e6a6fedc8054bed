package openrouter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	providerRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storyweaver_provider_requests_total",
			Help: "Total number of completion requests sent to the provider.",
		},
		[]string{"model", "status"},
	)
	providerRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storyweaver_provider_request_duration_seconds",
			Help:    "Histogram of provider request durations.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"model"},
	)
	providerCompletionTokens = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storyweaver_provider_completion_tokens",
			Help:    "Histogram of completion token counts reported by the provider.",
			Buckets: prometheus.LinearBuckets(100, 100, 20),
		},
		[]string{"model"},
	)
)
