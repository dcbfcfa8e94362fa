// Package password hashes and verifies user passwords with bcrypt.
package password

import (
	"errors"
	"fmt"
	"landregistry/pkg/serrors"
	"sync"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// MinLength is the shortest password accepted at registration and reset.
const MinLength = 8

// ErrMismatch is returned by Verify when the password does not match the hash.
var ErrMismatch = errors.New("password mismatch")

// dummyHash is compared against when there is no stored hash, so that an
// unknown account costs as much as a wrong password.
var dummyHash = sync.OnceValue(func() []byte { //nolint: gochecknoglobals
	hashed, err := bcrypt.GenerateFromPassword([]byte("no such account"), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("could not hash dummy password: %v", err))
	}

	return hashed
})

// Validate checks the password policy.
func Validate(plain string) error {
	if utf8.RuneCountInString(plain) < MinLength {
		return serrors.With(serrors.ErrBadRequest, "password must be at least %d characters", MinLength)
	}

	return nil
}

// Hash validates plain and returns its bcrypt hash.
func Hash(plain string) (string, error) {
	if err := Validate(plain); err != nil {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", serrors.With(serrors.ErrBadRequest, "password is too long")
		}

		return "", fmt.Errorf("could not hash password: %w", err)
	}

	return string(hashed), nil
}

// Verify compares plain against hash and returns ErrMismatch when they differ.
func Verify(plain, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}

		return fmt.Errorf("could not verify password: %w", err)
	}

	return nil
}

// Mismatch runs a full bcrypt comparison that can never succeed and returns
// ErrMismatch. Use it where Verify would run but no hash exists.
func Mismatch(plain string) error {
	_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(plain))

	return ErrMismatch
}
