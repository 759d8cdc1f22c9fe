package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/suretrust/underwriting-service/internal/domain/model"
	"github.com/suretrust/underwriting-service/internal/domain/port"
	"github.com/suretrust/underwriting-service/internal/domain/service"
	"github.com/suretrust/underwriting-service/internal/domain/valueobject"
	"github.com/suretrust/underwriting-service/internal/metrics"
)

// ProcessExecutor maps a decision to its action sequence and notifications.
// It is the only pipeline component with externally observable side effects
// besides the feedback sink. Once dispatch begins the actions for a decision
// run to completion; a failed notification is recorded on the result and
// never rolls anything back.
type ProcessExecutor struct {
	notifier port.Notifier
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewProcessExecutor creates a new ProcessExecutor.
func NewProcessExecutor(notifier port.Notifier, m *metrics.Metrics, logger *slog.Logger) *ProcessExecutor {
	return &ProcessExecutor{notifier: notifier, metrics: m, logger: logger}
}

// Execute runs the action sequence for the decision. The decision value is a
// closed enumeration; anything else is a logic bug and panics rather than
// degrading into an "unknown" outcome.
func (e *ProcessExecutor) Execute(ctx context.Context, decision service.DecisionResult, record model.CustomerRecord) model.ExecutionResult {
	customerID := record.CustomerID

	e.logger.Info("executing process",
		slog.String("customer_id", customerID),
		slog.String("decision", decision.Outcome.String()),
	)

	var result model.ExecutionResult
	switch decision.Outcome {
	case valueobject.DecisionApprove:
		result = e.approve(ctx, customerID)
	case valueobject.DecisionReview:
		result = e.review(ctx, customerID)
	case valueobject.DecisionReject:
		result = e.reject(ctx, customerID, decision)
	default:
		panic(fmt.Sprintf("unknown decision %q for customer %s", decision.Outcome.String(), customerID))
	}

	result.ExecutedAt = time.Now().UTC()
	return result
}

func (e *ProcessExecutor) approve(ctx context.Context, customerID string) model.ExecutionResult {
	result := model.ExecutionResult{
		Status: valueobject.StatusApproved,
		Actions: []string{
			fmt.Sprintf("create policy record for customer %s", customerID),
			"send policy confirmation",
			"mark customer approved",
		},
	}

	e.notify(ctx, &result, customerID, "application approved, policy issued", valueobject.NotificationConfirmation)
	return result
}

func (e *ProcessExecutor) review(ctx context.Context, customerID string) model.ExecutionResult {
	result := model.ExecutionResult{
		Status: valueobject.StatusPendingReview,
		Actions: []string{
			fmt.Sprintf("mark customer %s pending review", customerID),
			"create review ticket",
		},
	}

	e.notify(ctx, &result, customerID, "application requires manual review", valueobject.NotificationRiskReview)
	return result
}

func (e *ProcessExecutor) reject(ctx context.Context, customerID string, decision service.DecisionResult) model.ExecutionResult {
	result := model.ExecutionResult{
		Status: valueobject.StatusRejected,
		Actions: []string{
			fmt.Sprintf("reject application for customer %s", customerID),
			fmt.Sprintf("record rejection reason: %s", decision.Reason),
		},
	}

	kind := valueobject.NotificationRejection
	if decision.FraudDetected {
		result.FraudActions = []string{
			fmt.Sprintf("add customer %s to blacklist", customerID),
			"persist evidence chain",
			"raise security alert",
		}
		kind = valueobject.NotificationFraudAlert
	}

	e.notify(ctx, &result, customerID, decision.Reason, kind)
	return result
}

// notify delivers one notification and records the outcome on the result.
// Delivery failure is contained here: it degrades the result, nothing more.
func (e *ProcessExecutor) notify(ctx context.Context, result *model.ExecutionResult, customerID, message string, kind valueobject.NotificationKind) {
	ack, err := e.notifier.Send(ctx, customerID, message, kind)
	if err != nil {
		e.logger.Warn("notification failed",
			slog.String("customer_id", customerID),
			slog.String("kind", kind.String()),
			slog.String("error", err.Error()),
		)
		e.metrics.IncrementNotificationFailures()
		result.Notification = model.Acknowledgment{Kind: kind}
		result.NotificationError = err.Error()
		return
	}
	result.Notification = ack
}
