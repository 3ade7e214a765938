package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(pgx.ErrNoRows), ErrNotFound)
	assert.ErrorIs(t, translate(fmt.Errorf("scan: %w", pgx.ErrNoRows)), ErrNotFound)

	dupEmail := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: responsibleEmailKey}
	assert.ErrorIs(t, translate(dupEmail), ErrDuplicateEmail)

	otherUnique := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "something_else"}
	assert.Equal(t, otherUnique, translate(otherUnique))

	badUUID := &pgconn.PgError{Code: pgInvalidTextRepr}
	assert.ErrorIs(t, translate(badUUID), ErrNotFound)

	goneOwner := &pgconn.PgError{Code: pgForeignKey, ConstraintName: "pets_responsible_id_fkey"}
	assert.ErrorIs(t, translate(goneOwner), ErrNotFound)

	plain := errors.New("connection reset")
	assert.Equal(t, plain, translate(plain))
	assert.ErrorIs(t, translate(fmt.Errorf("check: %w", ErrDuplicateEmail)), ErrDuplicateEmail)
}
