package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/suretrust/underwriting-service/pkg/events"
)

const (
	// EventTypeApplicationDecided is emitted when an application reaches a
	// terminal decision.
	EventTypeApplicationDecided = "underwriting.application.decided"

	// EventTypeFraudDetected is emitted when the fraud detector flagged the
	// application, triggering blacklist and alerting flows downstream.
	EventTypeFraudDetected = "underwriting.fraud.detected"
)

// ApplicationDecided is published for every application once the decision
// engine has ruled on it.
type ApplicationDecided struct {
	events.BaseEvent
	ApplicationID uuid.UUID `json:"application_id"`
	CustomerID    string    `json:"customer_id"`
	Decision      string    `json:"decision"`
	Reason        string    `json:"reason"`
	RiskScore     int       `json:"risk_score"`
	DecidedAt     time.Time `json:"decided_at"`
}

// NewApplicationDecided creates an ApplicationDecided event.
func NewApplicationDecided(applicationID uuid.UUID, customerID, decision, reason string, riskScore int, decidedAt time.Time) ApplicationDecided {
	return ApplicationDecided{
		BaseEvent:     events.NewBaseEvent(EventTypeApplicationDecided, applicationID, "Application"),
		ApplicationID: applicationID,
		CustomerID:    customerID,
		Decision:      decision,
		Reason:        reason,
		RiskScore:     riskScore,
		DecidedAt:     decidedAt,
	}
}

// FraudDetected is published when fraud indicators forced a rejection.
type FraudDetected struct {
	events.BaseEvent
	ApplicationID uuid.UUID `json:"application_id"`
	CustomerID    string    `json:"customer_id"`
	Indicators    []string  `json:"indicators"`
	Confidence    float64   `json:"confidence"`
	DetectedAt    time.Time `json:"detected_at"`
}

// NewFraudDetected creates a FraudDetected event.
func NewFraudDetected(applicationID uuid.UUID, customerID string, indicators []string, confidence float64, detectedAt time.Time) FraudDetected {
	return FraudDetected{
		BaseEvent:     events.NewBaseEvent(EventTypeFraudDetected, applicationID, "Application"),
		ApplicationID: applicationID,
		CustomerID:    customerID,
		Indicators:    indicators,
		Confidence:    confidence,
		DetectedAt:    detectedAt,
	}
}
