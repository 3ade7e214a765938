package util

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
)

// FromValidation converts ozzo field errors into a ValidationError with
// per-field details. Any other error becomes a ValidationError without details.
func FromValidation(err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		details := make(map[string]any, len(fieldErrs))
		for field, fieldErr := range fieldErrs {
			details[field] = fieldErr.Error()
		}
		return NewValidationError(fieldErrs.Error(), details)
	}
	return NewValidationError(err.Error(), nil)
}
