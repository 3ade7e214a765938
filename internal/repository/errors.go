package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when no row matches.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when an account email is already taken.
	ErrDuplicateEmail = errors.New("email already registered")
)

const (
	pgUniqueViolation   = "23505"
	pgForeignKey        = "23503"
	pgInvalidTextRepr   = "22P02"
	responsibleEmailKey = "responsibles_email_key"
)

// translate maps driver errors onto the repository sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if pgErr.ConstraintName == responsibleEmailKey {
				return ErrDuplicateEmail
			}
		case pgForeignKey:
			// the referenced responsible no longer exists
			return ErrNotFound
		case pgInvalidTextRepr:
			// malformed uuid in a lookup
			return ErrNotFound
		}
	}
	return err
}
