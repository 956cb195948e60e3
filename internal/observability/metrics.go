package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce         sync.Once
	requestsTotal        *prometheus.CounterVec
	latencySeconds       *prometheus.HistogramVec
	errorsTotal          *prometheus.CounterVec
	notificationsTotal   *prometheus.CounterVec
	assistantMatches     *prometheus.CounterVec
	assistantEscalations prometheus.Counter
	uploadsRejected      *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors used by the portal API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "onboard_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		latencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "onboard_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		errorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "onboard_errors_total",
			Help: "Total number of error responses returned.",
		}, []string{"method", "route", "status"})

		notificationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "onboard_notifications_published_total",
			Help: "Notifications published, labelled by type.",
		}, []string{"type"})

		assistantMatches = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "onboard_assistant_matches_total",
			Help: "Assistant replies resolved, labelled by matched intent group.",
		}, []string{"group"})

		assistantEscalations = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "onboard_assistant_escalations_total",
			Help: "Conversations handed off to a human advisor.",
		})

		uploadsRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "onboard_document_uploads_rejected_total",
			Help: "Document uploads rejected before storage, labelled by cause.",
		}, []string{"cause"})

		prometheus.MustRegister(
			requestsTotal,
			latencySeconds,
			errorsTotal,
			notificationsTotal,
			assistantMatches,
			assistantEscalations,
			uploadsRejected,
		)
	})
}

// Requests exposes the counter for API requests.
func Requests() *prometheus.CounterVec {
	RegisterMetrics()
	return requestsTotal
}

// Latency exposes the latency histogram for API requests.
func Latency() *prometheus.HistogramVec {
	RegisterMetrics()
	return latencySeconds
}

// Errors exposes the counter for error responses.
func Errors() *prometheus.CounterVec {
	RegisterMetrics()
	return errorsTotal
}

// NotificationsPublishedTotal exposes the notification publish counter.
func NotificationsPublishedTotal() *prometheus.CounterVec {
	RegisterMetrics()
	return notificationsTotal
}

// AssistantMatchesTotal exposes the intent-match counter.
func AssistantMatchesTotal() *prometheus.CounterVec {
	RegisterMetrics()
	return assistantMatches
}

// AssistantEscalationsTotal exposes the escalation counter.
func AssistantEscalationsTotal() prometheus.Counter {
	RegisterMetrics()
	return assistantEscalations
}

// DocumentUploadsRejected exposes the rejected-upload counter.
func DocumentUploadsRejected() *prometheus.CounterVec {
	RegisterMetrics()
	return uploadsRejected
}
