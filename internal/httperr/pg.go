package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation       = "23505"
	pgInsufficientPrivilege = "42501"
	pgUndefinedColumn       = "42703"
	pgUndefinedTable        = "42P01"
)

// PgCode returns the SQLSTATE of a Postgres error, or "".
func PgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func IsConflict(err error) bool {
	return PgCode(err) == pgUniqueViolation
}

// IsPolicyDenied covers row-level-security and grant failures.
func IsPolicyDenied(err error) bool {
	return PgCode(err) == pgInsufficientPrivilege
}

// IsSchemaMismatch reports a missing table or column.
func IsSchemaMismatch(err error) bool {
	switch PgCode(err) {
	case pgUndefinedColumn, pgUndefinedTable:
		return true
	}
	return false
}
