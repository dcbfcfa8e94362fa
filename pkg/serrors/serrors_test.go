package serrors_test

import (
	"errors"
	"fmt"
	"landregistry/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type pgError struct{ code string }

func (e *pgError) Error() string { return "pg error " + e.code }

func TestKindsAreDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound, serrors.ErrUnauthorized, serrors.ErrForbidden,
		serrors.ErrBadRequest, serrors.ErrConflict, serrors.ErrInternal,
		serrors.ErrTimeout, serrors.ErrUnavailable, serrors.ErrRateLimited,
	}
	seen := map[string]bool{}
	for _, k := range kinds {
		require.False(t, seen[k.Error()], "duplicate kind %s", k)
		seen[k.Error()] = true
	}
}

func TestError_String(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name string
		err  *serrors.Error
		want string
	}{
		{"message", serrors.With(serrors.ErrNotFound, "parcel %s not found", "KG-001"), "parcel KG-001 not found"},
		{"message and cause", serrors.Wrap(serrors.ErrUnavailable, cause, "loading parcel"), "loading parcel: connection reset"},
		{"cause only", serrors.Wrap(serrors.ErrInternal, cause, ""), "connection reset"},
		{"kind only", serrors.KindOnly(serrors.ErrForbidden), "FORBIDDEN"},
		{"invalid field", serrors.Invalid("areaSqm", "must be positive"), "areaSqm must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_IsAndAs(t *testing.T) {
	cause := &pgError{code: "23505"}
	err := fmt.Errorf("creating ownership: %w",
		serrors.Wrap(serrors.ErrConflict, cause, "title deed number already registered"))

	require.ErrorIs(t, err, serrors.ErrConflict)
	require.ErrorIs(t, err, cause)
	require.NotErrorIs(t, err, serrors.ErrNotFound)

	var k serrors.Kind
	require.ErrorAs(t, err, &k)
	require.Equal(t, serrors.ErrConflict, k)

	var pg *pgError
	require.ErrorAs(t, err, &pg)
	require.Equal(t, "23505", pg.code)

	var e *serrors.Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, serrors.ErrConflict, e.Kind())
	require.Equal(t, "title deed number already registered", e.Message())
	require.Equal(t, cause, e.Cause())
}

func TestKindOf(t *testing.T) {
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(errors.New("plain")))
	require.Equal(t, serrors.ErrConflict, serrors.KindOf(serrors.With(serrors.ErrConflict, "taken")))
	require.Equal(t, serrors.ErrNotFound, serrors.KindOf(serrors.ErrNotFound))

	wrapped := fmt.Errorf("approving request: %w", serrors.KindOnly(serrors.ErrForbidden))
	require.Equal(t, serrors.ErrForbidden, serrors.KindOf(wrapped))
}

func TestMessageOf_HidesCause(t *testing.T) {
	e := serrors.Wrap(serrors.ErrNotFound, errors.New("sql: no rows"), "land parcel not found")
	require.Equal(t, "land parcel not found", serrors.MessageOf(e))

	require.Empty(t, serrors.MessageOf(errors.New("plain")))
	require.Empty(t, serrors.MessageOf(serrors.KindOnly(serrors.ErrNotFound)))

	nested := serrors.Wrap(serrors.ErrBadRequest, serrors.With(serrors.ErrBadRequest, "inner"), "")
	require.Equal(t, "inner", serrors.MessageOf(nested))
}
