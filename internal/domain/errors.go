package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound        = errors.New("not found")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrValidation      = errors.New("validation error")
	ErrConflict        = errors.New("conflict")
	ErrForbidden       = errors.New("forbidden")
	ErrUnavailable     = errors.New("unavailable")
)

// Validation messages shared by entity validators and request DTOs.
const (
	MsgRequired     = "is required"
	MsgMustNotEmpty = "must not be empty"
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		if field == "" {
			parts = append(parts, msg)
			continue
		}
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// FieldError returns a ValidationError for a single field. An empty field
// names the input as a whole.
func FieldError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// NotFoundError wraps ErrNotFound with the kind and id of the missing entity.
func NotFoundError(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
}

// IndexOutOfRangeError wraps ErrIndexOutOfRange with the offending index and
// the length of the list it was checked against.
func IndexOutOfRangeError(list string, index, length int) error {
	return fmt.Errorf("%s index %d (length %d): %w", list, index, length, ErrIndexOutOfRange)
}
