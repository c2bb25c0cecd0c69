package recommend

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	pipelineRecommendations = "recommendations"
	pipelineSummary         = "market_summary"
)

var (
	providerRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stockwise",
		Name:      "provider_requests_total",
		Help:      "Provider calls by pipeline and outcome (ok, unavailable, request_failed, schema_invalid).",
	}, []string{"pipeline", "outcome"})

	providerDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "stockwise",
		Name:      "provider_request_duration_seconds",
		Help:      "Provider call latency by pipeline.",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
	}, []string{"pipeline"})

	recommendationsReturned = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "stockwise",
		Name:      "recommendations_returned",
		Help:      "Number of stocks returned per recommendation request.",
		Buckets:   []float64{0, 1, 2, 3, 4, 5, 10},
	})
)
