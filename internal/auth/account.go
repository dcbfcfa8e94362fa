package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"landregistry/pkg/domain"
	"landregistry/pkg/logger"
	"landregistry/pkg/mail"
	"landregistry/pkg/password"
	"landregistry/pkg/redisstore"
	"landregistry/pkg/serrors"
	"landregistry/pkg/storage"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const otpDigits = 6

// newOTP returns a uniformly random numeric code.
func newOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("could not generate code: %w", err)
	}

	return fmt.Sprintf("%0*d", otpDigits, n.Int64()), nil
}

// Register creates an active citizen account and mails an email verification
// code. Public sign-up can never choose a role.
func (s *service) Register(ctx context.Context, in Registration) (*domain.User, error) {
	user := domain.User{
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		Email:       domain.NormalizeEmail(in.Email),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		NationalID:  strings.TrimSpace(in.NationalID),
		Address:     strings.TrimSpace(in.Address),
		Role:        domain.RoleCitizen,
		Status:      domain.UserStatusActive,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	user.PasswordHash = hash

	code, err := newOTP()
	if err != nil {
		return nil, err
	}
	if err := s.state.SaveOTP(ctx, user.Email, code, s.options.OTPTTL); err != nil {
		return nil, fmt.Errorf("could not store verification code: %w", err)
	}

	var created *domain.User
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		created, err = tx.CreateUser(ctx, user)
		if err != nil {
			return storage.Translate(err, storage.UserConstraints)
		}

		return mail.Enqueue(ctx, tx, mail.VerificationCode(created.Email, created.FullName(), code, s.options.OTPTTL))
	}); err != nil {
		return nil, fmt.Errorf("could not register user: %w", err)
	}

	logger.Info(ctx, "user registered", zap.Stringer("userID", created.ID))

	return created, nil
}

// ForgotPassword stores a reset token and mails it. Unknown or inactive
// addresses are accepted silently.
func (s *service) ForgotPassword(ctx context.Context, email string) error {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return serrors.Invalid("email", "is required")
	}

	user, err := s.storage.UserByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("could not get user: %w", err)
	}
	if user == nil || !user.CanSignIn() {
		logger.Debug(ctx, "password reset requested for unknown or inactive email")

		return nil
	}

	token := uuid.NewString()
	user.PasswordResetToken = token
	user.PasswordResetExpires = s.now().Add(s.options.ResetTokenTTL)

	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if _, err := tx.UpdateUser(ctx, *user); err != nil {
			return fmt.Errorf("could not store reset token: %w", err)
		}

		return mail.Enqueue(ctx, tx, mail.PasswordReset(user.Email, user.FullName(),
			s.options.ResetURL, token, s.options.ResetTokenTTL))
	}); err != nil {
		return fmt.Errorf("could not start password reset: %w", err)
	}

	return nil
}

func (s *service) ResetPassword(ctx context.Context, token, newPassword string) error {
	if _, err := uuid.Parse(token); err != nil {
		return serrors.With(serrors.ErrBadRequest, "invalid or expired reset token")
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		return err //nolint: wrapcheck
	}

	user, err := s.storage.UserByResetToken(ctx, token)
	if err != nil {
		return fmt.Errorf("could not get user: %w", err)
	}
	if user == nil || !s.now().Before(user.PasswordResetExpires) {
		return serrors.With(serrors.ErrBadRequest, "invalid or expired reset token")
	}

	user.PasswordHash = hash
	user.PasswordChangedAt = s.now()
	user.PasswordResetToken = ""
	user.PasswordResetExpires = time.Time{}
	if _, err := s.storage.UpdateUser(ctx, *user); err != nil {
		return fmt.Errorf("could not update password: %w", err)
	}

	if err := s.state.ResetLoginFailures(ctx, user.Email); err != nil {
		logger.Warn(ctx, "could not reset login failures", zap.Error(err))
	}

	return nil
}

func (s *service) VerifyOTP(ctx context.Context, email, code string) error {
	email = domain.NormalizeEmail(email)
	if email == "" || len(code) != otpDigits {
		return serrors.With(serrors.ErrBadRequest, "email and a %d digit code are required", otpDigits)
	}

	res, err := s.state.CheckOTP(ctx, email, code, s.options.OTPMaxAttempts)
	if err != nil {
		return fmt.Errorf("could not check verification code: %w", err)
	}

	switch res {
	case redisstore.OTPValid:
	case redisstore.OTPInvalid:
		return serrors.With(serrors.ErrBadRequest, "invalid verification code")
	case redisstore.OTPExpired:
		return serrors.With(serrors.ErrBadRequest, "verification code expired, request a new one")
	case redisstore.OTPExhausted:
		return serrors.With(serrors.ErrRateLimited, "too many wrong codes, request a new one")
	}

	user, err := s.storage.UserByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return serrors.With(serrors.ErrNotFound, "user not found")
	}
	if user.EmailVerified {
		return nil
	}

	user.EmailVerified = true
	if _, err := s.storage.UpdateUser(ctx, *user); err != nil {
		return fmt.Errorf("could not mark email verified: %w", err)
	}

	return nil
}

// ResendOTP issues a fresh code, replacing any outstanding one. Unknown and
// already verified addresses are accepted silently.
func (s *service) ResendOTP(ctx context.Context, email string) error {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return serrors.Invalid("email", "is required")
	}

	user, err := s.storage.UserByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("could not get user: %w", err)
	}
	if user == nil || user.EmailVerified {
		return nil
	}

	code, err := newOTP()
	if err != nil {
		return err
	}
	if err := s.state.SaveOTP(ctx, email, code, s.options.OTPTTL); err != nil {
		return fmt.Errorf("could not store verification code: %w", err)
	}

	return mail.Enqueue(ctx, s.storage, mail.VerificationCode(user.Email, user.FullName(), code, s.options.OTPTTL))
}
