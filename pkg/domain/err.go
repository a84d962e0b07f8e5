package domain

import "fmt"

// NotFoundError represents a failed lookup for a resource.
type NotFoundError struct {
	// ID is the key used when looking for the resource.
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("resource (%s) not found", e.ID)
}

// ValidationError is returned when request input is missing a required
// value or cannot be parsed.
type ValidationError struct {
	// Field is the name of the offending input, if any.
	Field string
	// Message is the client facing explanation.
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// BackendError wraps any failure returned by the storage or messaging
// backends.
type BackendError struct {
	// Op names the backend call, such as "dynamodb.PutItem".
	Op string
	// Reason is the error returned by the backend client.
	Reason error
}

func (e BackendError) Error() string {
	return fmt.Sprintf("backend call (%s) failed: %v", e.Op, e.Reason)
}

func (e BackendError) Unwrap() error {
	return e.Reason
}
