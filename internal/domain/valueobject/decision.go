package valueobject

import "fmt"

// Decision is an immutable value object representing the outcome of an
// underwriting evaluation. The zero value means "not yet evaluated".
type Decision struct {
	value string
}

var (
	DecisionApprove = Decision{value: "APPROVE"}
	DecisionReview  = Decision{value: "REVIEW"}
	DecisionReject  = Decision{value: "REJECT"}
)

// DecisionFromString reconstructs a decision from its string representation.
func DecisionFromString(s string) (Decision, error) {
	switch s {
	case "APPROVE":
		return DecisionApprove, nil
	case "REVIEW":
		return DecisionReview, nil
	case "REJECT":
		return DecisionReject, nil
	default:
		return Decision{}, fmt.Errorf("invalid decision: %s", s)
	}
}

// String returns the string representation.
func (d Decision) String() string {
	return d.value
}

// IsZero returns true if the decision has not been set.
func (d Decision) IsZero() bool {
	return d.value == ""
}

// Equal checks equality with another Decision.
func (d Decision) Equal(other Decision) bool {
	return d.value == other.value
}

// IsApprove returns true if the decision is APPROVE.
func (d Decision) IsApprove() bool {
	return d.value == "APPROVE"
}

// IsReview returns true if the decision is REVIEW.
func (d Decision) IsReview() bool {
	return d.value == "REVIEW"
}

// IsReject returns true if the decision is REJECT.
func (d Decision) IsReject() bool {
	return d.value == "REJECT"
}
