package password_test

import (
	"landregistry/pkg/password"
	"landregistry/pkg/serrors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	hash, err := password.Hash("correct horse")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse", hash)

	require.NoError(t, password.Verify("correct horse", hash))
	require.ErrorIs(t, password.Verify("wrong horse", hash), password.ErrMismatch)
}

func TestHash_Policy(t *testing.T) {
	t.Parallel()

	_, err := password.Hash("short")
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = password.Hash(strings.Repeat("x", 100))
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestVerify_MalformedHash(t *testing.T) {
	t.Parallel()

	err := password.Verify("whatever1", "not-a-bcrypt-hash")
	require.Error(t, err)
	require.NotErrorIs(t, err, password.ErrMismatch)
}

func TestMismatch_CostsAFullCompare(t *testing.T) {
	t.Parallel()

	hash, err := password.Hash("correct horse")
	require.NoError(t, err)
	// warm the dummy hash so its one-off generation is not measured
	require.ErrorIs(t, password.Mismatch("warm up"), password.ErrMismatch)

	start := time.Now()
	require.ErrorIs(t, password.Verify("wrong horse", hash), password.ErrMismatch)
	verify := time.Since(start)

	start = time.Now()
	require.ErrorIs(t, password.Mismatch("wrong horse"), password.ErrMismatch)
	mismatch := time.Since(start)

	require.Greater(t, mismatch, verify/4)
}
