package internal

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lolz_client",
			Name:      "requests_total",
			Help:      "API requests by operation, method and HTTP status (\"error\" when no response arrived).",
		},
		[]string{"operation", "method", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lolz_client",
			Name:      "request_duration_seconds",
			Help:      "Round-trip latency of API requests.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation", "method"},
	)
)

// observeRequest records one finished round trip. status 0 means the
// transport failed before a response arrived.
func observeRequest(operation, method string, status int, elapsed time.Duration) {
	code := "error"
	if status > 0 {
		code = strconv.Itoa(status)
	}
	requestsTotal.WithLabelValues(operation, method, code).Inc()
	requestDuration.WithLabelValues(operation, method).Observe(elapsed.Seconds())
}
