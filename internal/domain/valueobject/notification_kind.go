package valueobject

import "fmt"

// NotificationKind is the closed set of notification categories the pipeline
// can emit.
type NotificationKind struct {
	value string
}

var (
	NotificationRiskReview   = NotificationKind{value: "risk_review"}
	NotificationRejection    = NotificationKind{value: "rejection"}
	NotificationFraudAlert   = NotificationKind{value: "fraud_alert"}
	NotificationConfirmation = NotificationKind{value: "confirmation"}
)

// NotificationKindFromString reconstructs a kind from its string representation.
func NotificationKindFromString(s string) (NotificationKind, error) {
	switch s {
	case "risk_review":
		return NotificationRiskReview, nil
	case "rejection":
		return NotificationRejection, nil
	case "fraud_alert":
		return NotificationFraudAlert, nil
	case "confirmation":
		return NotificationConfirmation, nil
	default:
		return NotificationKind{}, fmt.Errorf("invalid notification kind: %s", s)
	}
}

// String returns the string representation.
func (k NotificationKind) String() string {
	return k.value
}

// IsZero returns true if no notification kind has been set.
func (k NotificationKind) IsZero() bool {
	return k.value == ""
}
