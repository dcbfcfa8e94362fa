package auth

import (
	"context"
	"fmt"
	"landregistry/pkg/domain"
	"landregistry/pkg/logger"
	"landregistry/pkg/metrics"
	"landregistry/pkg/serrors"

	"github.com/pquerna/otp/totp"
	"go.uber.org/zap"
)

func (s *service) VerifyTwoFactor(ctx context.Context, session Session, email, code string) (*LoginResult, error) {
	if !session.TwoFactorPending {
		return nil, serrors.With(serrors.ErrBadRequest, "no two-factor verification is pending")
	}

	user, err := s.storage.UserByID(ctx, session.Actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil || !user.CanSignIn() {
		return nil, serrors.With(serrors.ErrUnauthorized, "account is no longer active")
	}
	if email != "" && domain.NormalizeEmail(email) != user.Email {
		return nil, serrors.With(serrors.ErrUnauthorized, "token was not issued for this email")
	}
	if !user.TwoFactorEnabled || user.TwoFactorSecret == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "two-factor authentication is not enabled")
	}

	if err := s.lockedOut(ctx, user.Email); err != nil {
		return nil, err
	}
	if !totp.Validate(code, user.TwoFactorSecret) {
		s.recordFailure(ctx, user.Email)
		metrics.Logins.WithLabelValues("two_factor_failed").Inc()

		return nil, serrors.With(serrors.ErrUnauthorized, "invalid two-factor code")
	}
	s.resetFailures(ctx, user.Email)

	// the pending token must not be replayed for a second full token.
	if err := s.state.Revoke(ctx, session.TokenID, session.ExpiresAt.Sub(s.now())); err != nil {
		logger.Warn(ctx, "could not revoke pending token", zap.Error(err))
	}
	metrics.Logins.WithLabelValues("success").Inc()

	return s.loginResult(user)
}

// SetupTwoFactor generates a new TOTP secret for the actor. The secret is
// stored but only takes effect once EnableTwoFactor confirms a code.
func (s *service) SetupTwoFactor(ctx context.Context, actor domain.Actor) (*TwoFactorSetup, error) {
	user, err := s.Me(ctx, actor)
	if err != nil {
		return nil, err
	}
	if user.TwoFactorEnabled {
		return nil, serrors.With(serrors.ErrConflict, "two-factor authentication is already enabled")
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.options.TOTPIssuer,
		AccountName: user.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("could not generate TOTP key: %w", err)
	}

	user.TwoFactorSecret = key.Secret()
	if _, err := s.storage.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("could not store TOTP secret: %w", err)
	}

	return &TwoFactorSetup{
		Secret:     key.Secret(),
		OTPAuthURL: key.URL(),
	}, nil
}

func (s *service) EnableTwoFactor(ctx context.Context, actor domain.Actor, code string) error {
	user, err := s.Me(ctx, actor)
	if err != nil {
		return err
	}
	if user.TwoFactorEnabled {
		return serrors.With(serrors.ErrConflict, "two-factor authentication is already enabled")
	}
	if user.TwoFactorSecret == "" {
		return serrors.With(serrors.ErrBadRequest, "two-factor setup has not been started")
	}
	if !totp.Validate(code, user.TwoFactorSecret) {
		return serrors.With(serrors.ErrBadRequest, "invalid two-factor code")
	}

	user.TwoFactorEnabled = true
	if _, err := s.storage.UpdateUser(ctx, *user); err != nil {
		return fmt.Errorf("could not enable two-factor authentication: %w", err)
	}

	return nil
}

func (s *service) DisableTwoFactor(ctx context.Context, actor domain.Actor, code string) error {
	user, err := s.Me(ctx, actor)
	if err != nil {
		return err
	}
	if !user.TwoFactorEnabled {
		return serrors.With(serrors.ErrBadRequest, "two-factor authentication is not enabled")
	}
	if !totp.Validate(code, user.TwoFactorSecret) {
		return serrors.With(serrors.ErrBadRequest, "invalid two-factor code")
	}

	user.TwoFactorEnabled = false
	user.TwoFactorSecret = ""
	if _, err := s.storage.UpdateUser(ctx, *user); err != nil {
		return fmt.Errorf("could not disable two-factor authentication: %w", err)
	}

	return nil
}
