package auth_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"landregistry/internal/auth"
	"landregistry/pkg/domain"
	"landregistry/pkg/serrors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// genRSAKeys returns PEM encoded private and public keys.
func genRSAKeys(tb testing.TB) (string, string) {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err, "failed to generate RSA key")
	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err, "failed to marshal public key")
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	return string(privPEM), string(pubPEM)
}

func newTokens(tb testing.TB) *auth.Tokens {
	tb.Helper()
	privPEM, _ := genRSAKeys(tb)
	tokens, err := auth.NewTokens(auth.TokenOptions{
		PrivateKey:   privPEM,
		Issuer:       "landregistry",
		TTL:          time.Hour,
		TwoFactorTTL: 5 * time.Minute,
	})
	require.NoError(tb, err)

	return tokens
}

func TestTokens_IssueAndParse(t *testing.T) {
	t.Parallel()
	tokens := newTokens(t)

	uid := domain.UserID(uuid.New())
	now := time.Now()
	raw, issued, err := tokens.Issue(uid, domain.RoleLandOfficer, false, now)
	require.NoError(t, err)
	require.NotEmpty(t, issued.ID)
	require.WithinDuration(t, now.Add(time.Hour), issued.ExpiresAt.Time, time.Second)

	claims, err := tokens.Parse(raw)
	require.NoError(t, err)
	require.Equal(t, domain.RoleLandOfficer, claims.Role)
	require.False(t, claims.TwoFactorPending)
	require.Equal(t, issued.ID, claims.ID)
	got, err := claims.UserID()
	require.NoError(t, err)
	require.Equal(t, uid, got)
}

func TestTokens_PendingUsesShortTTL(t *testing.T) {
	t.Parallel()
	tokens := newTokens(t)

	now := time.Now()
	raw, issued, err := tokens.Issue(domain.UserID(uuid.New()), domain.RoleCitizen, true, now)
	require.NoError(t, err)
	require.WithinDuration(t, now.Add(5*time.Minute), issued.ExpiresAt.Time, time.Second)

	claims, err := tokens.Parse(raw)
	require.NoError(t, err)
	require.True(t, claims.TwoFactorPending)
}

func TestTokens_Rejections(t *testing.T) {
	t.Parallel()
	privPEM, pubPEM := genRSAKeys(t)
	otherPriv, _ := genRSAKeys(t)

	verifier, err := auth.NewTokens(auth.TokenOptions{PublicKey: pubPEM, Issuer: "landregistry"})
	require.NoError(t, err)
	signer, err := auth.NewTokens(auth.TokenOptions{PrivateKey: privPEM, Issuer: "landregistry", TTL: time.Hour})
	require.NoError(t, err)
	stranger, err := auth.NewTokens(auth.TokenOptions{PrivateKey: otherPriv, Issuer: "landregistry", TTL: time.Hour})
	require.NoError(t, err)
	otherIssuer, err := auth.NewTokens(auth.TokenOptions{PrivateKey: privPEM, Issuer: "elsewhere", TTL: time.Hour})
	require.NoError(t, err)

	uid := domain.UserID(uuid.New())
	now := time.Now()

	t.Run("verify only", func(t *testing.T) {
		_, _, err := verifier.Issue(uid, domain.RoleCitizen, false, now)
		require.Error(t, err)
	})

	t.Run("invalid signature", func(t *testing.T) {
		raw, _, err := stranger.Issue(uid, domain.RoleCitizen, false, now)
		require.NoError(t, err)
		_, err = verifier.Parse(raw)
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})

	t.Run("expired", func(t *testing.T) {
		raw, _, err := signer.Issue(uid, domain.RoleCitizen, false, now.Add(-2*time.Hour))
		require.NoError(t, err)
		_, err = verifier.Parse(raw)
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		raw, _, err := otherIssuer.Issue(uid, domain.RoleCitizen, false, now)
		require.NoError(t, err)
		_, err = verifier.Parse(raw)
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})

	t.Run("wrong algorithm", func(t *testing.T) {
		claims := auth.Claims{RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    "landregistry",
			Subject:   uid.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		}}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = verifier.Parse(signed)
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})

	t.Run("invalid subject", func(t *testing.T) {
		key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privPEM))
		require.NoError(t, err)
		claims := auth.Claims{RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    "landregistry",
			Subject:   "not-a-uuid",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		}}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
		require.NoError(t, err)
		_, err = verifier.Parse(signed)
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})
}

func TestNewTokens_RequiresKey(t *testing.T) {
	t.Parallel()

	_, err := auth.NewTokens(auth.TokenOptions{})
	require.Error(t, err)

	_, err = auth.NewTokens(auth.TokenOptions{PublicKey: "garbage"})
	require.Error(t, err)
}
