package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Store sentinels shared by every service that reads or writes entities.
// They live here rather than in a single service package because both the
// workflow and the approval services consume the same repository.
var (
	ErrEntityNotFound    = errors.New("entity not found")
	ErrDuplicatePhone    = errors.New("phone number already registered")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateDocument = errors.New("document already registered")
	ErrVersionConflict   = errors.New("entity was modified concurrently")
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html#23505:~:text=foreign_key_violation-,23505,-unique_violation
const PgErrUniqueViolation = "23505"

func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// ConstraintName extracts the violated constraint from a pg error, empty if
// the error is not a pg error.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
