package storage

import (
	"context"
	"landregistry/pkg/domain"
)

// UserFilter narrows user listings. Zero-valued fields are ignored.
type UserFilter struct {
	// Search matches first name, last name, email, phone number or national id.
	Search string
	// Name matches first name, last name or the full name.
	Name   string
	Role   domain.Role
	Status domain.UserStatus
}

// UserConstraints names the user uniqueness constraints for Translate.
var UserConstraints = map[string]string{ //nolint: gochecknoglobals
	"users_email_key":        "email is already registered",
	"users_phone_number_key": "phone number is already registered",
	"users_national_id_key":  "national id is already registered",
}

// UserStorage persists user accounts. Soft-deleted users are invisible to
// every read.
type UserStorage interface {
	// CreateUser inserts u and returns the stored row. Collisions on email,
	// phone number or national id return ErrUniqueViolation.
	CreateUser(ctx context.Context, u domain.User) (*domain.User, error)
	// UpdateUser overwrites the mutable columns of the user identified by u.ID
	// and returns the stored row, or nil when the user does not exist.
	UpdateUser(ctx context.Context, u domain.User) (*domain.User, error)
	// DeleteUser soft-deletes a user. It reports false when nothing was deleted.
	DeleteUser(ctx context.Context, id domain.UserID) (bool, error)
	// UserByID returns nil when not found.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	// UserByEmail matches case-insensitively and returns nil when not found.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// UserByResetToken returns the user holding the given password reset token.
	UserByResetToken(ctx context.Context, token string) (*domain.User, error)
	// ListUsers returns one page of users matching filter and the total match count.
	ListUsers(ctx context.Context, filter UserFilter, page domain.PageRequest) ([]domain.User, int64, error)
	// UserStats aggregates counters over all non-deleted users.
	UserStats(ctx context.Context) (domain.UserStats, error)
}
