package postgres

import (
	"errors"
	"fmt"
	"landregistry/pkg/storage"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// wrapErr wraps err with msg, translating constraint violations reported by
// Postgres into the storage sentinels so callers can map them without
// depending on the driver.
func wrapErr(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return fmt.Errorf("%s: %w", msg, &storage.ConstraintError{
				Err:        storage.ErrUniqueViolation,
				Constraint: pgErr.ConstraintName,
			})
		case foreignKeyViolationCode:
			return fmt.Errorf("%s: %w", msg, &storage.ConstraintError{
				Err:        storage.ErrForeignKeyViolation,
				Constraint: pgErr.ConstraintName,
			})
		}
	}

	return fmt.Errorf("%s: %w", msg, err)
}
