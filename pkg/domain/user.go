package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// String returns the canonical textual form of the id.
func (id UserID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether the id is unset.
func (id UserID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// Role is the access role carried by a user and by every issued token.
type Role string

const (
	RoleCitizen     Role = "CITIZEN"
	RoleLandOfficer Role = "LAND_OFFICER"
	RoleAdmin       Role = "ADMIN"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleCitizen, RoleLandOfficer, RoleAdmin:
		return true
	}

	return false
}

// IsStaff reports whether the role may act on records owned by other users.
func (r Role) IsStaff() bool { return r == RoleLandOfficer || r == RoleAdmin }

// UserStatus represents whether an account may sign in.
type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusInactive  UserStatus = "INACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

// Valid reports whether s is a known user status.
func (s UserStatus) Valid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusSuspended:
		return true
	}

	return false
}

// User is a registered account: a citizen, a land officer or an administrator.
type User struct {
	ID          UserID     `json:"id"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phoneNumber"`
	NationalID  string     `json:"nationalId"`
	Address     string     `json:"address,omitempty"`
	Role        Role       `json:"role"`
	Status      UserStatus `json:"status"`

	EmailVerified    bool `json:"emailVerified"`
	TwoFactorEnabled bool `json:"twoFactorEnabled"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`
	// TwoFactorSecret is the base32 TOTP secret, empty until enrolment starts.
	TwoFactorSecret string `json:"-"`
	// PasswordResetToken is the outstanding reset token, if any.
	PasswordResetToken string `json:"-"`
	// PasswordResetExpires is the instant after which PasswordResetToken is rejected.
	PasswordResetExpires time.Time `json:"-"`
	// PasswordChangedAt is when the password was last changed. Tokens issued
	// before it are no longer accepted.
	PasswordChangedAt time.Time `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the user was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}

// FullName joins first and last name.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}

// CanSignIn reports whether the account status allows authentication.
func (u *User) CanSignIn() bool { return u.Status == UserStatusActive }
