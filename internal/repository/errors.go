package repository

import (
	"errors"
	"fmt"
)

// Common repository errors that can be checked with errors.Is()
var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when attempting to insert an entity whose key already exists
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidValue is returned when a field fails a domain constraint
	ErrInvalidValue = errors.New("invalid value")

	// ErrMissingField is returned when a persisted line has fewer fields than required
	ErrMissingField = errors.New("missing field")

	// ErrInvalidArgument is returned for caller mistakes such as an unset file path
	ErrInvalidArgument = errors.New("invalid argument")
)

// FieldError describes a single field that failed validation or parsing.
// Err is one of the sentinel errors above.
type FieldError struct {
	Field  string
	Value  string
	Reason string
	Err    error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s %q: %s: %v", e.Field, e.Value, e.Reason, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// InvalidField is shorthand for a FieldError wrapping ErrInvalidValue.
func InvalidField(field, value, reason string) error {
	return &FieldError{Field: field, Value: value, Reason: reason, Err: ErrInvalidValue}
}

// MissingField is shorthand for a FieldError wrapping ErrMissingField.
func MissingField(field, reason string) error {
	return &FieldError{Field: field, Reason: reason, Err: ErrMissingField}
}

// LineError ties a decode failure to the 1-based line it came from.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
