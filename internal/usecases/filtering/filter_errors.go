package filtering

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDateRange = errors.New("start date is after end date")
	ErrUnknownPreset    = errors.New("unknown date preset")
)

// ValidationError indica que o chamador enviou um filtro inválido
type ValidationError struct {
	Err     error
	Field   string
	Details string
}

func (e *ValidationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(err error, field, details string) *ValidationError {
	return &ValidationError{Err: err, Field: field, Details: details}
}
