package entity

import (
	"errors"
	"fmt"
)

// Domain errors shared by services, managers and adapters
var (
	// ErrNotFound indicates the referenced worker, client or document is absent
	ErrNotFound = errors.New("not found")

	// ErrStoreUnavailable indicates the tree store or blob store could not be reached
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrUnauthorized indicates a missing or invalid admin token
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError reports caller-supplied data that fails a precondition.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
