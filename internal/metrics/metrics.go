package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal tracks dispatched backend requests by classified outcome
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medrec_requests_total",
			Help: "Total number of backend requests dispatched by the client",
		},
		[]string{"endpoint", "outcome"}, // "success", "invalid_session", "forbidden", "not_found", "rejected", "transport_failure"
	)

	// RequestDuration tracks backend request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "medrec_request_duration_seconds",
			Help:    "Duration of backend requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// ValidationRejectionsTotal tracks actions blocked client-side before dispatch
	ValidationRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medrec_validation_rejections_total",
			Help: "Total number of user actions rejected by client-side validation",
		},
		[]string{"action"},
	)

	// SessionEventsTotal tracks session lifecycle events
	SessionEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medrec_session_events_total",
			Help: "Total number of session lifecycle events",
		},
		[]string{"event"}, // "login", "logout", "invalidated"
	)
)

// RecordRequest records metrics for one dispatched backend request
func RecordRequest(endpoint, outcome string, duration time.Duration) {
	RequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	RequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordValidationRejection records an action blocked before any request was sent
func RecordValidationRejection(action string) {
	ValidationRejectionsTotal.WithLabelValues(action).Inc()
}

// RecordSessionEvent records a session lifecycle event
func RecordSessionEvent(event string) {
	SessionEventsTotal.WithLabelValues(event).Inc()
}
