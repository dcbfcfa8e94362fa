package redisstore

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// OTPResult is the outcome of checking an email verification code.
type OTPResult int

const (
	// OTPValid means the code matched and has been consumed.
	OTPValid OTPResult = iota
	// OTPInvalid means the code did not match.
	OTPInvalid
	// OTPExpired means no code is outstanding for the address.
	OTPExpired
	// OTPExhausted means too many wrong codes were tried; the code was discarded.
	OTPExhausted
)

func otpKey(email string) string { return otpKeyPrefix + strings.ToLower(email) }

func otpAttemptsKey(email string) string { return otpAttemptsKeyPrefix + strings.ToLower(email) }

// SaveOTP stores code for email, replacing any outstanding code and resetting
// its attempt counter.
func (s *Store) SaveOTP(ctx context.Context, email, code string, ttl time.Duration) error {
	if err := s.client.Set(ctx, otpKey(email), code, ttl).Err(); err != nil {
		return fmt.Errorf("could not store otp: %w", err)
	}
	if err := s.client.Del(ctx, otpAttemptsKey(email)).Err(); err != nil {
		return fmt.Errorf("could not reset otp attempts: %w", err)
	}

	return nil
}

// CheckOTP compares code against the stored one. A match consumes the code.
// After maxAttempts wrong codes the stored code is discarded.
func (s *Store) CheckOTP(ctx context.Context, email, code string, maxAttempts int) (OTPResult, error) {
	stored, err := s.client.Get(ctx, otpKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return OTPExpired, nil
	}
	if err != nil {
		return OTPInvalid, fmt.Errorf("could not read otp: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) == 1 {
		if err := s.client.Del(ctx, otpKey(email), otpAttemptsKey(email)).Err(); err != nil {
			return OTPInvalid, fmt.Errorf("could not consume otp: %w", err)
		}

		return OTPValid, nil
	}

	attempts, err := s.client.Incr(ctx, otpAttemptsKey(email)).Result()
	if err != nil {
		return OTPInvalid, fmt.Errorf("could not count otp attempts: %w", err)
	}
	if attempts == 1 {
		ttl, err := s.client.TTL(ctx, otpKey(email)).Result()
		if err == nil && ttl > 0 {
			_ = s.client.Expire(ctx, otpAttemptsKey(email), ttl).Err()
		}
	}
	if maxAttempts > 0 && attempts >= int64(maxAttempts) {
		if err := s.client.Del(ctx, otpKey(email), otpAttemptsKey(email)).Err(); err != nil {
			return OTPExhausted, fmt.Errorf("could not discard otp: %w", err)
		}

		return OTPExhausted, nil
	}

	return OTPInvalid, nil
}
