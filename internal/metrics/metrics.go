package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors exported on /metrics.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	RecordsCreated      *prometheus.CounterVec
	RecordsRejected     *prometheus.CounterVec
}

// New registers the collectors on reg with the given name prefix.
func New(reg prometheus.Registerer, prefix string) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		RecordsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_records_created_total",
				Help: "Total number of records created per entity",
			},
			[]string{"entity"},
		),
		RecordsRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_records_rejected_total",
				Help: "Total number of rejected submissions per entity and reason",
			},
			[]string{"entity", "reason"},
		),
	}
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(method, path, status string, started time.Time) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(time.Since(started).Seconds())
}

func (m *Metrics) RecordCreated(entity string) {
	m.RecordsCreated.WithLabelValues(entity).Inc()
}

// RecordRejected counts a submission refused for reason (validation, conflict, not_found).
func (m *Metrics) RecordRejected(entity, reason string) {
	m.RecordsRejected.WithLabelValues(entity, reason).Inc()
}
