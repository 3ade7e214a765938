package dto

import (
	apperrors "github.com/spec-kit/pet-adoption/pkg/util"
)

// Validatable is implemented by every request body.
type Validatable interface {
	Validate() error
}

// Check runs the body's rules and returns a DomainError on failure.
func Check(body Validatable) error {
	return apperrors.FromValidation(body.Validate())
}
