package storage

import (
	"errors"
	"landregistry/pkg/serrors"
)

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when an operation requiring a non-transactional
	// context is attempted while already inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when a transaction-specific operation is attempted
	// while not currently inside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrUniqueViolation is returned when a write collides with a unique constraint.
	ErrUniqueViolation = errors.New("unique violation")
	// ErrForeignKeyViolation is returned when a write references a missing row.
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

// ConstraintError carries the name of the violated constraint next to one of
// ErrUniqueViolation or ErrForeignKeyViolation.
type ConstraintError struct {
	Err        error
	Constraint string
}

func (e *ConstraintError) Error() string { return e.Err.Error() + ": " + e.Constraint }

func (e *ConstraintError) Unwrap() error { return e.Err }

// ViolatedConstraint returns the constraint name carried by err, if any.
func ViolatedConstraint(err error) string {
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return ce.Constraint
	}

	return ""
}

// Translate maps constraint violations in err to semantic errors. Unique
// violations become CONFLICT and foreign key violations become BAD_REQUEST,
// with the message registered for the constraint when there is one. Any
// other error is returned unchanged.
func Translate(err error, messages map[string]string) error {
	var ce *ConstraintError
	if !errors.As(err, &ce) {
		return err
	}

	msg, ok := messages[ce.Constraint]
	switch {
	case errors.Is(ce.Err, ErrUniqueViolation):
		if !ok {
			msg = "resource already exists"
		}

		return serrors.Wrap(serrors.ErrConflict, err, "%s", msg)
	case errors.Is(ce.Err, ErrForeignKeyViolation):
		if !ok {
			msg = "referenced resource does not exist"
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "%s", msg)
	}

	return err
}
