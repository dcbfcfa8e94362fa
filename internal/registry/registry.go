// Package registry implements the land registry use cases: user
// administration, parcels, ownerships, workflow requests and documents.
// Every operation receives the acting principal and enforces its role.
package registry

import (
	"context"
	"fmt"
	"landregistry/pkg/domain"
	"landregistry/pkg/serrors"
	"landregistry/pkg/storage"
	"time"
)

// registry is the concrete implementation of the Registry interface.
type registry struct {
	storage storage.Storage
	now     func() time.Time
}

// Ensure registry implements Registry.
var _ Registry = (*registry)(nil)

// New returns a Registry backed by st.
func New(st storage.Storage) Registry {
	return &registry{
		storage: st,
		now:     time.Now,
	}
}

func requireStaff(actor domain.Actor, action string) error {
	if !actor.IsStaff() {
		return serrors.With(serrors.ErrForbidden, "only land officers and administrators can %s", action)
	}

	return nil
}

func requireAdmin(actor domain.Actor, action string) error {
	if !actor.IsAdmin() {
		return serrors.With(serrors.ErrForbidden, "only administrators can %s", action)
	}

	return nil
}

func notFound(entity string) error {
	return serrors.With(serrors.ErrNotFound, "%s not found", entity)
}

// today truncates t to midnight UTC, the resolution of ownership dates.
func today(t time.Time) time.Time {
	y, m, d := t.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// activeStaff loads id and checks that it is an active land officer or
// administrator, the precondition for assignment and verification.
func activeStaff(ctx context.Context, st storage.AllStorage, id domain.UserID, field string) (*domain.User, error) {
	u, err := st.UserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if u == nil {
		return nil, serrors.Invalid(field, "does not exist")
	}
	if !u.Role.IsStaff() || u.Status != domain.UserStatusActive {
		return nil, serrors.Invalid(field, "must be an active land officer or administrator")
	}

	return u, nil
}

func newPage[T any](items []T, total int64, page domain.PageRequest) *domain.Page[T] {
	p := domain.NewPage(items, page, total)

	return &p
}
