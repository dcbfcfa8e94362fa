package storage_test

import (
	"errors"
	"fmt"
	"landregistry/pkg/serrors"
	"landregistry/pkg/storage"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	t.Parallel()

	dup := fmt.Errorf("could not create user: %w", &storage.ConstraintError{
		Err:        storage.ErrUniqueViolation,
		Constraint: "users_email_key",
	})
	err := storage.Translate(dup, storage.UserConstraints)
	require.ErrorIs(t, err, serrors.ErrConflict)
	require.ErrorIs(t, err, storage.ErrUniqueViolation)
	require.Equal(t, "email is already registered", serrors.MessageOf(err))

	fk := &storage.ConstraintError{Err: storage.ErrForeignKeyViolation, Constraint: "documents_request_id_fkey"}
	err = storage.Translate(fk, nil)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Equal(t, "referenced resource does not exist", serrors.MessageOf(err))

	plain := errors.New("connection reset")
	require.Same(t, plain, storage.Translate(plain, storage.UserConstraints))
	require.Equal(t, "users_email_key", storage.ViolatedConstraint(dup))
}
