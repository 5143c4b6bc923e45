package repository

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// Sentinel errors the service layer matches on. Driver-specific error codes
// never leave this package.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrMissingTable   = errors.New("required table does not exist")
)

// Postgres error codes of interest.
const (
	pgUniqueViolation = "23505"
	pgUndefinedTable  = "42P01"
)

// translateError maps driver errors onto the repository's sentinel errors.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pgUniqueViolation:
			return ErrDuplicateEmail
		case pgUndefinedTable:
			return ErrMissingTable
		}
	}
	return err
}

// IsNotFound reports whether err means the record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
