package auth

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"landregistry/internal/config"
	"landregistry/pkg/domain"
	"landregistry/pkg/serrors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var errNoSigningKey = errors.New("no private key configured for signing")

// Claims are the JWT claims carried by access tokens.
type Claims struct {
	jwt.RegisteredClaims

	// Role is the role of the subject at the time the token was issued.
	Role domain.Role `json:"role"`
	// TwoFactorPending marks a token that may only be used to complete a
	// two-factor login.
	TwoFactorPending bool `json:"twoFactorPending,omitempty"`
}

// UserID returns the subject as a user id.
func (c *Claims) UserID() (domain.UserID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return domain.UserID{}, fmt.Errorf("invalid subject: %w", err)
	}

	return domain.UserID(id), nil
}

// TokenOptions configure signing and verification of access tokens.
type TokenOptions struct {
	// PrivateKey is the PEM encoded RSA private key. Without it tokens can only be verified.
	PrivateKey string
	// PublicKey is the PEM encoded RSA public key. Derived from PrivateKey when empty.
	PublicKey string
	// Issuer is written to and required in the iss claim when not empty.
	Issuer string
	// TTL is the lifetime of access tokens.
	TTL time.Duration
	// TwoFactorTTL is the lifetime of tokens issued while the second factor is pending.
	TwoFactorTTL time.Duration
}

// NewTokenOptions constructs TokenOptions from the application config.
func NewTokenOptions(cfg *config.Config) TokenOptions {
	return TokenOptions{
		PrivateKey:   cfg.JWT.PrivateKey,
		PublicKey:    cfg.JWT.PublicKey,
		Issuer:       cfg.JWT.Issuer,
		TTL:          cfg.JWT.TTL,
		TwoFactorTTL: cfg.JWT.TwoFactorTTL,
	}
}

// Tokens issues and verifies RS256 access tokens.
type Tokens struct {
	options TokenOptions
	private *rsa.PrivateKey
	public  *rsa.PublicKey
}

// NewTokens parses the configured keys.
func NewTokens(opts TokenOptions) (*Tokens, error) {
	t := &Tokens{options: opts}

	if opts.PrivateKey != "" {
		key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(opts.PrivateKey))
		if err != nil {
			return nil, fmt.Errorf("could not parse RSA private key: %w", err)
		}
		t.private = key
		t.public = &key.PublicKey
	}

	if opts.PublicKey != "" {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
		if err != nil {
			return nil, fmt.Errorf("could not parse RSA public key: %w", err)
		}
		t.public = key
	}

	if t.public == nil {
		return nil, errors.New("either a public or a private key is required")
	}

	return t, nil
}

// Issue signs a token for subject. Pending tokens get the shorter two-factor
// lifetime. Every token gets a fresh jti so that it can be revoked on its own.
func (t *Tokens) Issue(subject domain.UserID, role domain.Role, pending bool, now time.Time) (string, *Claims, error) {
	if t.private == nil {
		return "", nil, errNoSigningKey
	}

	ttl := t.options.TTL
	if pending {
		ttl = t.options.TwoFactorTTL
	}

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    t.options.Issuer,
			Subject:   subject.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role:             role,
		TwoFactorPending: pending,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(t.private)
	if err != nil {
		return "", nil, fmt.Errorf("could not sign JWT: %w", err)
	}

	return signed, claims, nil
}

// Parse verifies the signature, algorithm, expiry and issuer of raw.
func (t *Tokens) Parse(raw string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if t.options.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(t.options.Issuer))
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return t.public, nil
	}, opts...)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid or expired token")
	}
	if _, err := claims.UserID(); err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}
	if claims.ID == "" {
		return nil, serrors.With(serrors.ErrUnauthorized, "token has no id")
	}

	return claims, nil
}
