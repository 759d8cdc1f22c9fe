package valueobject

import "fmt"

// ExecutionStatus is an immutable value object describing the state an
// application ends up in after the decision has been acted upon.
type ExecutionStatus struct {
	value string
}

var (
	StatusApproved      = ExecutionStatus{value: "SUCCESS"}
	StatusPendingReview = ExecutionStatus{value: "PENDING_REVIEW"}
	StatusRejected      = ExecutionStatus{value: "REJECTED"}
)

// ExecutionStatusFromString reconstructs a status from its string representation.
func ExecutionStatusFromString(s string) (ExecutionStatus, error) {
	switch s {
	case "SUCCESS":
		return StatusApproved, nil
	case "PENDING_REVIEW":
		return StatusPendingReview, nil
	case "REJECTED":
		return StatusRejected, nil
	default:
		return ExecutionStatus{}, fmt.Errorf("invalid execution status: %s", s)
	}
}

// StatusForDecision maps a decision to the execution status it produces.
func StatusForDecision(d Decision) (ExecutionStatus, error) {
	switch d {
	case DecisionApprove:
		return StatusApproved, nil
	case DecisionReview:
		return StatusPendingReview, nil
	case DecisionReject:
		return StatusRejected, nil
	default:
		return ExecutionStatus{}, fmt.Errorf("no execution status for decision %q", d.String())
	}
}

// String returns the string representation.
func (s ExecutionStatus) String() string {
	return s.value
}

// IsZero returns true if the status has not been set.
func (s ExecutionStatus) IsZero() bool {
	return s.value == ""
}

// Equal checks equality with another ExecutionStatus.
func (s ExecutionStatus) Equal(other ExecutionStatus) bool {
	return s.value == other.value
}
