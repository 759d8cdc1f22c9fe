package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's Prometheus instruments.
type Metrics struct {
	ApplicationsProcessed *prometheus.CounterVec
	FraudDetectedTotal    prometheus.Counter
	NotificationFailures  prometheus.Counter
	CollectionFailures    prometheus.Counter
}

// New registers the underwriting metrics on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ApplicationsProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "underwriting_applications_processed_total",
			Help: "Total number of applications processed, labeled by decision",
		}, []string{"decision"}),
		FraudDetectedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "underwriting_fraud_detected_total",
			Help: "Total number of applications rejected with fraud indicators",
		}),
		NotificationFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "underwriting_notification_failures_total",
			Help: "Total number of notifications that failed after retries",
		}),
		CollectionFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "underwriting_collection_failures_total",
			Help: "Total number of customer record collection failures",
		}),
	}
}

// ObserveDecision records a processed application by decision value.
func (m *Metrics) ObserveDecision(decision string) {
	m.ApplicationsProcessed.WithLabelValues(decision).Inc()
}

// IncrementFraudDetected records a fraud-flagged application.
func (m *Metrics) IncrementFraudDetected() {
	m.FraudDetectedTotal.Inc()
}

// IncrementNotificationFailures records a degraded notification.
func (m *Metrics) IncrementNotificationFailures() {
	m.NotificationFailures.Inc()
}

// IncrementCollectionFailures records a failed record collection.
func (m *Metrics) IncrementCollectionFailures() {
	m.CollectionFailures.Inc()
}
