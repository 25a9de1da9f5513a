package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsUniqueViolation reports whether err comes from a unique constraint.
// The composite indexes on the join tables are the real enforcement under
// concurrent writes; services translate this into their duplicate sentinel.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	// sqlite (dev/test) has no typed error exposed through GORM
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
