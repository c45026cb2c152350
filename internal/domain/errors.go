package domain

import "fmt"

// ValidationError indicates a request was rejected locally before any
// external call. It is surfaced to the user as a notification and aborts
// the operation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

// ExternalFailure indicates a simulated external collaborator (credential
// check, geolocation) rejected or failed an operation. Local state rolls
// back to its pre-attempt value and the reason is surfaced as a
// notification.
type ExternalFailure struct {
	Op     string
	Reason string
}

func (e *ExternalFailure) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Op, e.Reason)
}
