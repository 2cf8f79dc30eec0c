// Package telemetry exposes Prometheus metrics for the API.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the collectors the HTTP layer and handlers feed.
type Metrics struct {
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
	Queries      *prometheus.CounterVec
}

// New registers the collectors on the default registry.
func New() *Metrics {
	return &Metrics{
		HTTPRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "swimapi",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, path and status.",
		}, []string{"method", "path", "status"}),
		HTTPDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "swimapi",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by path.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path"}),
		Queries: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "swimapi",
			Name:      "db_queries_total",
			Help:      "Database queries by handler and outcome.",
		}, []string{"handler", "outcome"}),
	}
}

// QueryOK records a successful query for a handler.
func (m *Metrics) QueryOK(handler string) {
	m.Queries.WithLabelValues(handler, "ok").Inc()
}

// QueryErr records a failed query for a handler.
func (m *Metrics) QueryErr(handler string) {
	m.Queries.WithLabelValues(handler, "error").Inc()
}
