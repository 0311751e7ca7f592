package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized means the request carries no valid session.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden means the viewer is authenticated but does not own the
	// resource.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound covers both an unknown id and a record whose blob has
	// gone missing; callers must not distinguish the two over the wire.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate means an insert collided with an existing id.
	ErrDuplicate = errors.New("already exists")
	// ErrStoreDivergence marks metadata/blob mismatch or a durable write
	// that could not complete. It is internal: surfaced to clients as a
	// generic status, but logged distinctly.
	ErrStoreDivergence = errors.New("store divergence")
)

// Validation failure reasons for uploads.
const (
	ReasonEmptyFilename       = "empty-filename"
	ReasonNoExtension         = "no-extension"
	ReasonDisallowedExtension = "disallowed-extension"
	ReasonTooLarge            = "too-large"
)

// ValidationError rejects an upload before any bytes are persisted.
type ValidationError struct {
	Reason  string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

// NewValidationError builds a ValidationError with a reason code and a
// human-readable message.
func NewValidationError(reason, message string) *ValidationError {
	return &ValidationError{Reason: reason, Message: message}
}
