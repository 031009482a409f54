package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpstreamCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dayinfo_upstream_calls_total",
			Help: "Total upstream provider calls by result",
		},
		[]string{"provider", "result"},
	)

	UpstreamLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dayinfo_upstream_latency_seconds",
			Help:    "Upstream provider call latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	DayInfoRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dayinfo_requests_total",
			Help: "Total day-info requests by outcome",
		},
		[]string{"outcome"},
	)

	ProvidersWithData = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dayinfo_providers_with_data",
			Help:    "Number of providers that contributed data to a day-info response",
			Buckets: []float64{0, 1, 2, 3},
		},
	)
)

// Result labels for UpstreamCallsTotal.
const (
	ResultOK        = "ok"
	ResultHTTPError = "http_error"
	ResultTransport = "transport_error"
)
