package layout

import (
	"errors"
	"fmt"
)

// ErrInvalidSpec is wrapped by every validation failure.
var ErrInvalidSpec = errors.New("invalid geometry spec")

// SpecError describes a rejected size or position spec.
type SpecError struct {
	// Field is the offending spec field (e.g. "HeightHint").
	Field string
	// Message describes the failure.
	Message string
	// Value is the rejected value.
	Value any
}

// Error implements the error interface.
func (e *SpecError) Error() string {
	return fmt.Sprintf("%s: %s (value: %v)", e.Field, e.Message, e.Value)
}

// Unwrap returns ErrInvalidSpec.
func (e *SpecError) Unwrap() error {
	return ErrInvalidSpec
}
