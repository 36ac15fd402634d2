package backend

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcomes recorded on bazaar_backend_requests_total.
const (
	outcomeSuccess   = "success"
	outcomeTransport = "transport"
	outcomeStatus    = "status"
	outcomeMalformed = "malformed"
)

//nolint:gochecknoglobals
var (
	backendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bazaar_backend_requests_total",
			Help: "Total number of backend API calls by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	backendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bazaar_backend_request_duration_seconds",
			Help:    "Duration of backend API calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

func observe(operation, outcome string, seconds float64) {
	backendRequestsTotal.WithLabelValues(operation, outcome).Inc()
	backendRequestDuration.WithLabelValues(operation).Observe(seconds)
}
