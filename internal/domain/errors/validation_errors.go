package errors

import (
	"errors"
	"fmt"
)

var (
	// General validation errors
	ErrInvalidInput  = errors.New("invalid input")
	ErrRequiredField = errors.New("required field is missing")

	// Specific field validation errors
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrInvalidGateway   = errors.New("invalid gateway")
	ErrInvalidCurrency  = errors.New("invalid currency code")
	ErrInvalidPeriod    = errors.New("invalid reporting period")
	ErrNegativeAmount   = errors.New("amount must be non-negative")
	ErrInvalidDateRange = errors.New("start date must be strictly before end date")
)

// ValidationError wraps a field validation error
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("validation failed for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed for field '%s': %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
