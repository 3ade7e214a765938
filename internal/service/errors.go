package service

import (
	"errors"

	"github.com/spec-kit/pet-adoption/internal/repository"
	apperrors "github.com/spec-kit/pet-adoption/pkg/util"
)

// mapRepoError turns repository sentinels into DomainErrors for the given resource.
func mapRepoError(resource string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return apperrors.NewNotFound(resource, nil)
	case errors.Is(err, repository.ErrDuplicateEmail):
		return apperrors.NewConflict("email already registered", map[string]any{"email": "already registered"})
	default:
		return err
	}
}
