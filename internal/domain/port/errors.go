package port

import "fmt"

// CollectionError reports that the collector could not produce a customer
// record. It aborts the affected customer's pipeline only; a concurrent batch
// of other customers keeps running.
type CollectionError struct {
	CustomerID string
	Err        error
}

func (e *CollectionError) Error() string {
	return fmt.Sprintf("collection failed for customer %s: %v", e.CustomerID, e.Err)
}

func (e *CollectionError) Unwrap() error {
	return e.Err
}

// NotificationError reports a transport-level delivery failure after bounded
// retries. It is contained: the actions already executed for the decision
// stand, and the error surfaces as a degraded field on the execution result.
type NotificationError struct {
	CustomerID string
	Kind       string
	Err        error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("notification %s for customer %s failed: %v", e.Kind, e.CustomerID, e.Err)
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}
