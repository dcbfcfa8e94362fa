package v1handler

import (
	"context"
	"landregistry/internal/auth"
	"landregistry/pkg/domain"
	"landregistry/pkg/logger"
	"landregistry/pkg/serrors"
	"net/http"
	"slices"
	"strings"

	"go.uber.org/zap"
)

type contextKey string

// SessionKey holds the *auth.Session of an authenticated request.
const SessionKey contextKey = "session"

// SessionFromContext returns the session stored by the bearer middleware.
func SessionFromContext(ctx context.Context) (*auth.Session, bool) {
	s, ok := ctx.Value(SessionKey).(*auth.Session)

	return s, ok
}

// ActorFromContext returns the authenticated principal, or the zero Actor.
func ActorFromContext(ctx context.Context) domain.Actor {
	if s, ok := SessionFromContext(ctx); ok {
		return s.Actor
	}

	return domain.Actor{}
}

// SecHandler authenticates bearer tokens and guards routes by role.
type SecHandler struct {
	auth auth.Service
}

func NewSecHandler(svc auth.Service) *SecHandler {
	return &SecHandler{auth: svc}
}

// HandleBearerAuth resolves token and stores the resulting session in ctx.
// Tokens issued while a second factor is pending are only accepted when
// allowPending is set.
func (s SecHandler) HandleBearerAuth(ctx context.Context, token string, allowPending bool) (context.Context, error) {
	if token == "" {
		return ctx, serrors.With(serrors.ErrUnauthorized, "missing bearer token")
	}

	session, err := s.auth.Authenticate(ctx, token, allowPending)
	if err != nil {
		return ctx, err //nolint: wrapcheck
	}

	ctx = context.WithValue(ctx, SessionKey, session)
	ctx = logger.WithFields(ctx, zap.Stringer("user_id", session.Actor.UserID))

	return ctx, nil
}

func bearerToken(r *http.Request) string {
	const prefix = "bearer "
	h := r.Header.Get("Authorization")
	if len(h) < len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return ""
	}

	return strings.TrimSpace(h[len(prefix):])
}

func (s SecHandler) middleware(allowPending bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, err := s.HandleBearerAuth(r.Context(), bearerToken(r), allowPending)
			if err != nil {
				logger.Debug(r.Context(), "bearer authentication failed", zap.Error(err))
				writeError(w, r, err)

				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Authenticated rejects requests without a valid, fully authenticated token.
func (s SecHandler) Authenticated(next http.Handler) http.Handler {
	return s.middleware(false)(next)
}

// TwoFactorPending also accepts tokens that still await the second factor.
func (s SecHandler) TwoFactorPending(next http.Handler) http.Handler {
	return s.middleware(true)(next)
}

// RequireRoles lets the request through only if the actor holds one of roles.
func RequireRoles(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor := ActorFromContext(r.Context())
			if !slices.Contains(roles, actor.Role) {
				writeError(w, r, serrors.With(serrors.ErrForbidden, "your role cannot access this resource"))

				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

//nolint:gochecknoglobals
var (
	staffOnly = RequireRoles(domain.RoleLandOfficer, domain.RoleAdmin)
	adminOnly = RequireRoles(domain.RoleAdmin)
)
