// Package auth authenticates users: password and two-factor login, bearer
// token verification, sign-up, email verification and password recovery.
package auth

import (
	"context"
	"errors"
	"fmt"
	"landregistry/internal/config"
	"landregistry/pkg/domain"
	"landregistry/pkg/logger"
	"landregistry/pkg/metrics"
	"landregistry/pkg/password"
	"landregistry/pkg/serrors"
	"landregistry/pkg/storage"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Options configure the authentication policy.
type Options struct {
	// ResetTokenTTL is how long a password reset token stays valid.
	ResetTokenTTL time.Duration
	// ResetURL is the page linked from the reset mail.
	ResetURL string
	// OTPTTL is how long an email verification code stays valid.
	OTPTTL time.Duration
	// OTPMaxAttempts is the number of wrong codes tolerated before the code is discarded.
	OTPMaxAttempts int
	// MaxLoginFailures locks an email out once reached within LockoutDuration.
	MaxLoginFailures int
	// LockoutDuration is the failure counting window and the lock length.
	LockoutDuration time.Duration
	// TOTPIssuer is the issuer shown by authenticator apps.
	TOTPIssuer string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		ResetTokenTTL:    cfg.Auth.ResetTokenTTL,
		ResetURL:         cfg.Auth.ResetURL,
		OTPTTL:           cfg.Auth.OTPTTL,
		OTPMaxAttempts:   cfg.Auth.OTPMaxAttempts,
		MaxLoginFailures: cfg.Auth.MaxLoginFailures,
		LockoutDuration:  cfg.Auth.LockoutDuration,
		TOTPIssuer:       cfg.Auth.TOTPIssuer,
	}
}

type service struct {
	options Options
	storage storage.Storage
	state   StateStore
	tokens  *Tokens
	now     func() time.Time
}

// Ensure service implements Service.
var _ Service = (*service)(nil)

// New returns the authentication service.
func New(st storage.Storage, state StateStore, tokens *Tokens, opts Options) Service {
	return &service{
		options: opts,
		storage: st,
		state:   state,
		tokens:  tokens,
		now:     time.Now,
	}
}

func (s *service) Login(ctx context.Context, email, plain string) (*LoginResult, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || plain == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "email and password are required")
	}

	if err := s.lockedOut(ctx, email); err != nil {
		return nil, err
	}

	user, err := s.storage.UserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		_ = password.Mismatch(plain)
	}
	if user == nil || !s.passwordMatches(ctx, user, plain) {
		s.recordFailure(ctx, email)
		metrics.Logins.WithLabelValues("failed").Inc()

		return nil, serrors.With(serrors.ErrUnauthorized, "invalid email or password")
	}

	if !user.CanSignIn() {
		metrics.Logins.WithLabelValues("inactive").Inc()

		return nil, serrors.With(serrors.ErrForbidden, "account is %s", strings.ToLower(string(user.Status)))
	}

	// with two-factor enabled the counter is only cleared by a valid code
	if user.TwoFactorEnabled {
		token, claims, err := s.tokens.Issue(user.ID, user.Role, true, s.now())
		if err != nil {
			return nil, err
		}
		metrics.Logins.WithLabelValues("two_factor_required").Inc()

		return &LoginResult{
			Token:             token,
			ExpiresAt:         claims.ExpiresAt.Time,
			TwoFactorRequired: true,
			Message:           "two-factor authentication code required",
		}, nil
	}

	s.resetFailures(ctx, email)
	metrics.Logins.WithLabelValues("success").Inc()

	return s.loginResult(user)
}

func (s *service) recordFailure(ctx context.Context, email string) {
	if _, err := s.state.RecordLoginFailure(ctx, email, s.options.MaxLoginFailures, s.options.LockoutDuration); err != nil {
		logger.Warn(ctx, "could not record login failure", zap.Error(err))
	}
}

func (s *service) resetFailures(ctx context.Context, email string) {
	if err := s.state.ResetLoginFailures(ctx, email); err != nil {
		logger.Warn(ctx, "could not reset login failures", zap.Error(err))
	}
}

// lockedOut returns RATE_LIMITED while email is locked.
func (s *service) lockedOut(ctx context.Context, email string) error {
	locked, retryIn, err := s.state.LockedOut(ctx, email, s.options.MaxLoginFailures)
	if err != nil {
		return fmt.Errorf("could not check login lockout: %w", err)
	}
	if locked {
		metrics.Logins.WithLabelValues("locked").Inc()

		return serrors.With(serrors.ErrRateLimited,
			"too many failed login attempts, try again in %s", retryIn.Round(time.Second))
	}

	return nil
}

func (s *service) passwordMatches(ctx context.Context, user *domain.User, plain string) bool {
	err := password.Verify(plain, user.PasswordHash)
	if err != nil && !errors.Is(err, password.ErrMismatch) {
		logger.Error(ctx, "could not verify password hash", zap.Stringer("userID", user.ID), zap.Error(err))
	}

	return err == nil
}

func (s *service) loginResult(user *domain.User) (*LoginResult, error) {
	token, claims, err := s.tokens.Issue(user.ID, user.Role, false, s.now())
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		User:      user,
	}, nil
}

func (s *service) Me(ctx context.Context, actor domain.Actor) (*domain.User, error) {
	user, err := s.storage.UserByID(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "user no longer exists")
	}

	return user, nil
}

func (s *service) Logout(ctx context.Context, session Session) error {
	if err := s.state.Revoke(ctx, session.TokenID, session.ExpiresAt.Sub(s.now())); err != nil {
		return fmt.Errorf("could not revoke token: %w", err)
	}

	return nil
}

// Authenticate resolves a bearer token to a session. The user is re-read so
// that deactivation and role changes apply to tokens already handed out.
func (s *service) Authenticate(ctx context.Context, token string, allowPending bool) (*Session, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	if claims.TwoFactorPending && !allowPending {
		return nil, serrors.With(serrors.ErrUnauthorized, "two-factor verification required")
	}

	revoked, err := s.state.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not check token revocation")
	}
	if revoked {
		return nil, serrors.With(serrors.ErrUnauthorized, "token has been revoked")
	}

	userID, _ := claims.UserID()
	user, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil || !user.CanSignIn() {
		return nil, serrors.With(serrors.ErrUnauthorized, "account is no longer active")
	}
	// iat has second precision
	if claims.IssuedAt != nil && claims.IssuedAt.Before(user.PasswordChangedAt.Truncate(time.Second)) {
		return nil, serrors.With(serrors.ErrUnauthorized, "password has changed, please sign in again")
	}

	return &Session{
		Actor:            domain.Actor{UserID: user.ID, Role: user.Role},
		TokenID:          claims.ID,
		ExpiresAt:        claims.ExpiresAt.Time,
		TwoFactorPending: claims.TwoFactorPending,
	}, nil
}
