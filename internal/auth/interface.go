package auth

import (
	"context"
	"landregistry/pkg/domain"
	"landregistry/pkg/redisstore"
	"time"
)

//go:generate mockgen -package mockauth -source=interface.go -destination=mock/mockauth.go *
type Service interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	VerifyTwoFactor(ctx context.Context, session Session, email, code string) (*LoginResult, error)
	Register(ctx context.Context, in Registration) (*domain.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	VerifyOTP(ctx context.Context, email, code string) error
	ResendOTP(ctx context.Context, email string) error
	SetupTwoFactor(ctx context.Context, actor domain.Actor) (*TwoFactorSetup, error)
	EnableTwoFactor(ctx context.Context, actor domain.Actor, code string) error
	DisableTwoFactor(ctx context.Context, actor domain.Actor, code string) error
	Me(ctx context.Context, actor domain.Actor) (*domain.User, error)
	Logout(ctx context.Context, session Session) error
	Authenticate(ctx context.Context, token string, allowPending bool) (*Session, error)
}

// StateStore keeps the short-lived authentication state: email codes, revoked
// token ids and failed login counters.
type StateStore interface {
	SaveOTP(ctx context.Context, email, code string, ttl time.Duration) error
	CheckOTP(ctx context.Context, email, code string, maxAttempts int) (redisstore.OTPResult, error)
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
	RecordLoginFailure(ctx context.Context, email string, maxFailures int, window time.Duration) (int64, error)
	LockedOut(ctx context.Context, email string, maxFailures int) (bool, time.Duration, error)
	ResetLoginFailures(ctx context.Context, email string) error
}

// Session is an authenticated bearer token.
type Session struct {
	Actor            domain.Actor
	TokenID          string
	ExpiresAt        time.Time
	TwoFactorPending bool
}

// LoginResult is returned by a successful first or second login step.
type LoginResult struct {
	Token             string       `json:"token"`
	ExpiresAt         time.Time    `json:"expiresAt"`
	User              *domain.User `json:"user,omitempty"`
	TwoFactorRequired bool         `json:"twoFactorRequired"`
	Message           string       `json:"message,omitempty"`
}

// Registration is the public sign-up form.
type Registration struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	NationalID  string `json:"nationalId"`
	Address     string `json:"address"`
	Password    string `json:"password"`
}

// TwoFactorSetup carries what an authenticator app needs to enrol.
type TwoFactorSetup struct {
	Secret     string `json:"secret"`
	OTPAuthURL string `json:"otpAuthUrl"`
}
