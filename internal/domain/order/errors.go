package order

import (
	"errors"
	"fmt"
)

var ErrValidation = errors.New("invalid order")

// ValidationError names the first field that prevented an Order from being built.
type ValidationError struct {
	Field  string
	Reason string
}

func missingField(field string) *ValidationError {
	return &ValidationError{Field: field}
}

func invalidField(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("Missing required field: %s", e.Field)
	}
	return fmt.Sprintf("Invalid field %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
