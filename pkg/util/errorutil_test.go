package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, ToDomainError(nil))
	})

	t.Run("wrapped domain error is unwrapped", func(t *testing.T) {
		err := fmt.Errorf("load pet: %w", NewNotFound("pet", nil))
		de := ToDomainError(err)
		require.NotNil(t, de)
		assert.Equal(t, CodeNotFound, de.Code)
		assert.Equal(t, http.StatusNotFound, de.HTTPStatus)
		assert.Equal(t, "pet not found", de.Message)
	})

	t.Run("unknown error becomes internal", func(t *testing.T) {
		cause := errors.New("boom")
		de := ToDomainError(cause)
		require.NotNil(t, de)
		assert.Equal(t, CodeInternal, de.Code)
		assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
		assert.ErrorIs(t, de, cause)
	})
}

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", NewValidationError("bad", nil), http.StatusBadRequest},
		{"unauthorized", NewUnauthorized("no"), http.StatusUnauthorized},
		{"forbidden", NewForbidden("no"), http.StatusForbidden},
		{"conflict", NewConflict("dup", nil), http.StatusConflict},
		{"configuration", NewConfigurationError(errors.New("missing secret")), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, ToDomainError(tc.err).HTTPStatus)
		})
	}
}

func TestLegacyStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, LegacyStatus(http.StatusNotFound))
	assert.Equal(t, http.StatusBadRequest, LegacyStatus(http.StatusConflict))
	assert.Equal(t, http.StatusBadRequest, LegacyStatus(http.StatusForbidden))
	assert.Equal(t, http.StatusUnauthorized, LegacyStatus(http.StatusUnauthorized))
	assert.Equal(t, http.StatusInternalServerError, LegacyStatus(http.StatusInternalServerError))
	assert.Equal(t, http.StatusOK, LegacyStatus(http.StatusOK))
}

func TestIsCode(t *testing.T) {
	err := fmt.Errorf("wrap: %w", NewConflict("dup", nil))
	assert.True(t, IsCode(err, CodeConflict))
	assert.False(t, IsCode(err, CodeNotFound))
	assert.False(t, IsCode(errors.New("plain"), CodeConflict))
}

func TestFromValidation(t *testing.T) {
	assert.NoError(t, FromValidation(nil))

	err := FromValidation(validation.Errors{
		"email": errors.New("must be a valid email address"),
		"cpf":   nil,
	}.Filter())
	de := ToDomainError(err)
	require.NotNil(t, de)
	assert.Equal(t, CodeValidation, de.Code)
	assert.Equal(t, map[string]any{"email": "must be a valid email address"}, de.Details)

	plain := ToDomainError(FromValidation(errors.New("bad input")))
	assert.Equal(t, CodeValidation, plain.Code)
	assert.Nil(t, plain.Details)
}
