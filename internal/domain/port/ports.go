package port

import (
	"context"

	"github.com/suretrust/underwriting-service/internal/domain/model"
	"github.com/suretrust/underwriting-service/internal/domain/valueobject"
)

// Collector defines the port for acquiring an applicant's collected materials
// from the upstream document/OCR pipeline. Implementations may block on I/O;
// the decision logic itself never does.
type Collector interface {
	// Collect fetches the record for a customer. It returns a *CollectionError
	// when the upstream system is unreachable or returns malformed data.
	Collect(ctx context.Context, customerID string) (model.CustomerRecord, error)
}

// Notifier defines the port for outbound notifications. Implementations own
// transport and retry; a returned *NotificationError means delivery failed
// after bounded retries.
type Notifier interface {
	Send(ctx context.Context, customerID, message string, kind valueobject.NotificationKind) (model.Acknowledgment, error)
}

// FeedbackRepository defines the append-only persistence port for execution
// outcomes. Entries are never rewritten or deleted.
type FeedbackRepository interface {
	// Append durably records one feedback entry.
	Append(ctx context.Context, entry model.FeedbackEntry) error

	// CountByDecision returns the number of recorded entries per decision value.
	CountByDecision(ctx context.Context) (map[string]int, error)
}

// EventPublisher defines the port for publishing domain events.
type EventPublisher interface {
	// Publish sends one or more domain events to the messaging infrastructure.
	Publish(ctx context.Context, events ...interface{}) error
}
