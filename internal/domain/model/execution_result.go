package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/suretrust/underwriting-service/internal/domain/valueobject"
)

// Acknowledgment confirms delivery of a single notification.
type Acknowledgment struct {
	Sent        bool
	Kind        valueobject.NotificationKind
	DeliveredAt time.Time
}

// ExecutionResult captures everything the process executor did for one
// decision: the terminal status, the ordered actions taken, the fraud
// enforcement actions (REJECT-with-fraud only), and the notification outcome.
// A failed notification is recorded here as a degraded field; it never undoes
// the actions already taken.
type ExecutionResult struct {
	Status            valueobject.ExecutionStatus
	Actions           []string
	FraudActions      []string
	Notification      Acknowledgment
	NotificationError string
	ExecutedAt        time.Time
}

// NotificationFailed reports whether the notification leg of the execution
// degraded.
func (r ExecutionResult) NotificationFailed() bool {
	return r.NotificationError != ""
}

// FeedbackEntry is one append-only record of an execution outcome, retained
// for audit and model retraining. Entries are written once and never updated.
type FeedbackEntry struct {
	ID         uuid.UUID
	CustomerID string
	Decision   valueobject.Decision
	Result     ExecutionResult
	RecordedAt time.Time
}

// NewFeedbackEntry stamps a new feedback entry for the given execution.
func NewFeedbackEntry(customerID string, decision valueobject.Decision, result ExecutionResult) FeedbackEntry {
	return FeedbackEntry{
		ID:         uuid.New(),
		CustomerID: customerID,
		Decision:   decision,
		Result:     result,
		RecordedAt: time.Now().UTC(),
	}
}
