package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/suretrust/underwriting-service/internal/domain/event"
	"github.com/suretrust/underwriting-service/internal/domain/valueobject"
	"github.com/suretrust/underwriting-service/pkg/events"
)

// Application is the aggregate root for one underwriting evaluation. It
// starts undecided and transitions exactly once to a terminal decision; a
// corrected decision is a new Application, never a mutation of this one.
type Application struct {
	events.EventCollector

	id              uuid.UUID
	customerID      string
	record          CustomerRecord
	decision        valueobject.Decision
	reason          string
	riskScore       int
	fraudDetected   bool
	fraudIndicators []string
	confidence      float64
	version         int
	decidedAt       time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

// NewApplication creates an undecided application for a collected record.
func NewApplication(record CustomerRecord) (*Application, error) {
	if err := record.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	return &Application{
		id:         uuid.New(),
		customerID: record.CustomerID,
		record:     record,
		version:    1,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ApplyDecision transitions the application to its terminal state. This is
// the aggregate's single state transition; applying a second decision or a
// zero decision is an error.
func (a *Application) ApplyDecision(
	decision valueobject.Decision,
	reason string,
	riskScore int,
	fraudDetected bool,
	fraudIndicators []string,
	confidence float64,
) error {
	if decision.IsZero() {
		return fmt.Errorf("cannot apply zero decision")
	}
	if !a.decision.IsZero() {
		return fmt.Errorf("application %s already decided: %s", a.id, a.decision)
	}
	if riskScore < 0 || riskScore > 100 {
		return fmt.Errorf("risk score must be between 0 and 100, got %d", riskScore)
	}

	a.decision = decision
	a.reason = reason
	a.riskScore = riskScore
	a.fraudDetected = fraudDetected
	a.fraudIndicators = fraudIndicators
	a.confidence = confidence
	a.decidedAt = time.Now().UTC()
	a.updatedAt = a.decidedAt
	a.version++

	a.EventCollector.Record(event.NewApplicationDecided(
		a.id, a.customerID, decision.String(), reason, riskScore, a.decidedAt,
	))

	if fraudDetected {
		a.EventCollector.Record(event.NewFraudDetected(
			a.id, a.customerID, fraudIndicators, confidence, a.decidedAt,
		))
	}

	return nil
}

// Decided reports whether the application has reached its terminal state.
func (a *Application) Decided() bool {
	return !a.decision.IsZero()
}

// --- Accessors ---

func (a *Application) ID() uuid.UUID                 { return a.id }
func (a *Application) CustomerID() string            { return a.customerID }
func (a *Application) Record() CustomerRecord        { return a.record }
func (a *Application) Decision() valueobject.Decision { return a.decision }
func (a *Application) Reason() string                { return a.reason }
func (a *Application) RiskScore() int                { return a.riskScore }
func (a *Application) FraudDetected() bool           { return a.fraudDetected }
func (a *Application) FraudIndicators() []string     { return a.fraudIndicators }
func (a *Application) Confidence() float64           { return a.confidence }
func (a *Application) Version() int                  { return a.version }
func (a *Application) DecidedAt() time.Time          { return a.decidedAt }
func (a *Application) CreatedAt() time.Time          { return a.createdAt }
func (a *Application) UpdatedAt() time.Time          { return a.updatedAt }
