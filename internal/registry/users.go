package registry

import (
	"context"
	"errors"
	"fmt"
	"landregistry/pkg/domain"
	"landregistry/pkg/logger"
	"landregistry/pkg/password"
	"landregistry/pkg/serrors"
	"landregistry/pkg/storage"
	"strings"

	"go.uber.org/zap"
)

func (r *registry) CreateUser(ctx context.Context, actor domain.Actor, in NewUser) (*domain.User, error) {
	if err := requireAdmin(actor, "create users"); err != nil {
		return nil, err
	}

	u := domain.User{
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		Email:       domain.NormalizeEmail(in.Email),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		NationalID:  strings.TrimSpace(in.NationalID),
		Address:     strings.TrimSpace(in.Address),
		Role:        in.Role,
		Status:      in.Status,
	}
	if u.Role == "" {
		u.Role = domain.RoleCitizen
	}
	if u.Status == "" {
		u.Status = domain.UserStatusActive
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	u.PasswordHash = hash

	created, err := r.storage.CreateUser(ctx, u)
	if err != nil {
		return nil, storage.Translate(fmt.Errorf("could not create user: %w", err), storage.UserConstraints)
	}

	logger.Info(ctx, "user created",
		zap.Stringer("userID", created.ID),
		zap.String("role", string(created.Role)),
		zap.Stringer("by", actor.UserID))

	return created, nil
}

// User returns the account id. Citizens may only read their own.
func (r *registry) User(ctx context.Context, actor domain.Actor, id domain.UserID) (*domain.User, error) {
	if !actor.IsStaff() && !actor.Is(id) {
		return nil, serrors.With(serrors.ErrForbidden, "you can only view your own account")
	}

	return r.user(ctx, r.storage, id)
}

func (r *registry) user(ctx context.Context, st storage.AllStorage, id domain.UserID) (*domain.User, error) {
	u, err := st.UserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if u == nil {
		return nil, notFound("user")
	}

	return u, nil
}

func (r *registry) UserByEmail(ctx context.Context, actor domain.Actor, email string) (*domain.User, error) {
	if err := requireStaff(actor, "look up users"); err != nil {
		return nil, err
	}

	u, err := r.storage.UserByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if u == nil {
		return nil, notFound("user")
	}

	return u, nil
}

// UpdateUser applies patch. Administrators may change anything, land officers
// may edit non-administrator accounts except for role and status, and every
// user may edit the profile fields of their own account.
func (r *registry) UpdateUser(ctx context.Context,
	actor domain.Actor,
	id domain.UserID,
	patch UserPatch) (*domain.User, error) {
	u, err := r.user(ctx, r.storage, id)
	if err != nil {
		return nil, err
	}

	self := actor.Is(id)
	switch {
	case actor.IsAdmin():
	case actor.Role == domain.RoleLandOfficer && u.Role != domain.RoleAdmin:
		if patch.Role != nil || patch.Status != nil {
			return nil, serrors.With(serrors.ErrForbidden, "only administrators can change role or status")
		}
		if patch.Password != nil && !self {
			return nil, serrors.With(serrors.ErrForbidden, "you can only change your own password")
		}
	case self:
		if patch.Role != nil || patch.Status != nil || patch.Email != nil || patch.NationalID != nil {
			return nil, serrors.With(serrors.ErrForbidden, "you can only change your name, phone number, address and password")
		}
	default:
		return nil, serrors.With(serrors.ErrForbidden, "you cannot modify this account")
	}

	if self && patch.Role != nil && *patch.Role != u.Role {
		return nil, serrors.With(serrors.ErrBadRequest, "you cannot change your own role")
	}
	if self && patch.Password != nil {
		if err := checkCurrentPassword(u, patch.CurrentPassword); err != nil {
			return nil, err
		}
	}

	applyUserPatch(u, patch)
	if err := u.Validate(); err != nil {
		return nil, err
	}
	if patch.Password != nil {
		if u.PasswordHash, err = password.Hash(*patch.Password); err != nil {
			return nil, err //nolint: wrapcheck
		}
		u.PasswordChangedAt = r.now()
	}

	return r.saveUser(ctx, *u)
}

func checkCurrentPassword(u *domain.User, current *string) error {
	if current == nil || *current == "" {
		return serrors.Invalid("currentPassword", "is required to change your password")
	}
	if err := password.Verify(*current, u.PasswordHash); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return serrors.With(serrors.ErrForbidden, "current password is incorrect")
		}

		return fmt.Errorf("could not verify current password: %w", err)
	}

	return nil
}

func applyUserPatch(u *domain.User, p UserPatch) {
	if p.FirstName != nil {
		u.FirstName = strings.TrimSpace(*p.FirstName)
	}
	if p.LastName != nil {
		u.LastName = strings.TrimSpace(*p.LastName)
	}
	if p.Email != nil {
		u.Email = domain.NormalizeEmail(*p.Email)
	}
	if p.PhoneNumber != nil {
		u.PhoneNumber = strings.TrimSpace(*p.PhoneNumber)
	}
	if p.NationalID != nil {
		u.NationalID = strings.TrimSpace(*p.NationalID)
	}
	if p.Address != nil {
		u.Address = strings.TrimSpace(*p.Address)
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
}

func (r *registry) saveUser(ctx context.Context, u domain.User) (*domain.User, error) {
	updated, err := r.storage.UpdateUser(ctx, u)
	if err != nil {
		return nil, storage.Translate(fmt.Errorf("could not update user: %w", err), storage.UserConstraints)
	}
	if updated == nil {
		return nil, notFound("user")
	}

	return updated, nil
}

func (r *registry) DeleteUser(ctx context.Context, actor domain.Actor, id domain.UserID) error {
	if err := requireAdmin(actor, "delete users"); err != nil {
		return err
	}
	if actor.Is(id) {
		return serrors.With(serrors.ErrBadRequest, "you cannot delete your own account")
	}

	deleted, err := r.storage.DeleteUser(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete user: %w", err)
	}
	if !deleted {
		return notFound("user")
	}

	logger.Info(ctx, "user deleted", zap.Stringer("userID", id), zap.Stringer("by", actor.UserID))

	return nil
}

func (r *registry) ListUsers(ctx context.Context,
	actor domain.Actor,
	filter storage.UserFilter,
	page domain.PageRequest) (*domain.Page[domain.User], error) {
	if err := requireStaff(actor, "list users"); err != nil {
		return nil, err
	}
	if filter.Role != "" && !filter.Role.Valid() {
		return nil, serrors.Invalid("role", "is not a known role")
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, serrors.Invalid("status", "is not a known user status")
	}

	page = page.Normalize()
	users, total, err := r.storage.ListUsers(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("could not list users: %w", err)
	}

	return newPage(users, total, page), nil
}

func (r *registry) SetUserStatus(ctx context.Context,
	actor domain.Actor,
	id domain.UserID,
	status domain.UserStatus) (*domain.User, error) {
	if err := requireAdmin(actor, "change account status"); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, serrors.Invalid("status", "is not a known user status")
	}
	if actor.Is(id) && status != domain.UserStatusActive {
		return nil, serrors.With(serrors.ErrBadRequest, "you cannot deactivate your own account")
	}

	u, err := r.user(ctx, r.storage, id)
	if err != nil {
		return nil, err
	}
	u.Status = status

	return r.saveUser(ctx, *u)
}

func (r *registry) ChangeUserRole(ctx context.Context,
	actor domain.Actor,
	id domain.UserID,
	role domain.Role) (*domain.User, error) {
	if err := requireAdmin(actor, "change roles"); err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, serrors.Invalid("role", "is not a known role")
	}
	if actor.Is(id) && role != actor.Role {
		return nil, serrors.With(serrors.ErrBadRequest, "you cannot change your own role")
	}

	u, err := r.user(ctx, r.storage, id)
	if err != nil {
		return nil, err
	}
	u.Role = role

	return r.saveUser(ctx, *u)
}

func (r *registry) UserStats(ctx context.Context, actor domain.Actor) (*domain.UserStats, error) {
	if err := requireStaff(actor, "view user statistics"); err != nil {
		return nil, err
	}

	stats, err := r.storage.UserStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get user stats: %w", err)
	}

	return &stats, nil
}
