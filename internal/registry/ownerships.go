package registry

import (
	"context"
	"fmt"
	"landregistry/pkg/domain"
	"landregistry/pkg/logger"
	"landregistry/pkg/serrors"
	"landregistry/pkg/storage"
	"strings"
	"time"

	"go.uber.org/zap"
)

var ownershipConstraints = map[string]string{ //nolint: gochecknoglobals
	"ownerships_title_deed_number_key": "title deed number is already used by an active ownership",
	"ownerships_active_holder_key":     "user already has an active ownership of this land parcel",
	"ownerships_user_id_fkey":          "user does not exist",
	"ownerships_land_parcel_id_fkey":   "land parcel does not exist",
}

// checkShare verifies that adding o to the active ownerships of its parcel
// keeps the total at or below 100 percent. The parcel row must already be
// locked by the caller's transaction.
func checkShare(ctx context.Context, tx storage.AllStorage, o *domain.Ownership, exclude *domain.OwnershipID) error {
	if o.Status != domain.OwnershipStatusActive {
		return nil
	}

	held, err := tx.ActiveOwnershipShare(ctx, o.ParcelID, exclude)
	if err != nil {
		return fmt.Errorf("could not sum ownership shares: %w", err)
	}
	if held.Add(o.OwnershipPercentage).GreaterThan(domain.MaxOwnershipPercentage) {
		return serrors.With(serrors.ErrConflict,
			"total ownership of the land parcel would exceed 100%% (%s%% already held)", held.StringFixed(2))
	}

	return nil
}

func lockParcel(ctx context.Context, tx storage.AllStorage, id domain.ParcelID) error {
	p, err := tx.LockParcel(ctx, id)
	if err != nil {
		return fmt.Errorf("could not lock land parcel: %w", err)
	}
	if p == nil {
		return serrors.Invalid("landParcelId", "does not exist")
	}

	return nil
}

func activeUser(ctx context.Context, tx storage.AllStorage, id domain.UserID, field string) error {
	u, err := tx.UserByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not get user: %w", err)
	}
	if u == nil {
		return serrors.Invalid(field, "does not exist")
	}
	if u.Status != domain.UserStatusActive {
		return serrors.Invalid(field, "must be an active user")
	}

	return nil
}

// CreateOwnership records a holding. The parcel is locked for the duration
// of the share check so that concurrent grants cannot overshoot 100 percent.
func (r *registry) CreateOwnership(ctx context.Context,
	actor domain.Actor,
	o domain.Ownership) (*domain.Ownership, error) {
	if err := requireStaff(actor, "record ownerships"); err != nil {
		return nil, err
	}

	o.ID = domain.OwnershipID{}
	o.TitleDeedNumber = strings.TrimSpace(o.TitleDeedNumber)
	if o.Status == "" {
		o.Status = domain.OwnershipStatusActive
	}
	if o.AcquisitionDate.IsZero() {
		o.AcquisitionDate = today(r.now())
	}
	if o.StartDate.IsZero() {
		o.StartDate = o.AcquisitionDate
	}
	if o.Status.Ends() && o.EndDate.IsZero() {
		o.EndDate = today(r.now())
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Ownership
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := lockParcel(ctx, tx, o.ParcelID); err != nil {
			return err
		}
		if err := activeUser(ctx, tx, o.UserID, "userId"); err != nil {
			return err
		}
		if err := checkShare(ctx, tx, &o, nil); err != nil {
			return err
		}

		var err error
		created, err = tx.CreateOwnership(ctx, o)
		if err != nil {
			return storage.Translate(fmt.Errorf("could not create ownership: %w", err), ownershipConstraints)
		}

		return nil
	}); err != nil {
		return nil, err //nolint: wrapcheck
	}

	logger.Info(ctx, "ownership recorded",
		zap.Stringer("ownershipID", created.ID),
		zap.Stringer("parcelID", created.ParcelID),
		zap.Stringer("userID", created.UserID))

	return created, nil
}

// Ownership returns the ownership id. Citizens may only read their own.
func (r *registry) Ownership(ctx context.Context, actor domain.Actor, id domain.OwnershipID) (*domain.Ownership, error) {
	o, err := r.ownership(ctx, r.storage, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsStaff() && !actor.Is(o.UserID) {
		return nil, serrors.With(serrors.ErrForbidden, "you can only view your own ownerships")
	}

	return o, nil
}

func (r *registry) ownership(ctx context.Context, st storage.AllStorage, id domain.OwnershipID) (*domain.Ownership, error) {
	o, err := st.OwnershipByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get ownership: %w", err)
	}
	if o == nil {
		return nil, notFound("ownership")
	}

	return o, nil
}

// lockOwnership takes the parcel lock and then the row lock of the
// ownership, in that order, and returns the row as read under both.
func (r *registry) lockOwnership(ctx context.Context, tx storage.AllStorage, id domain.OwnershipID) (*domain.Ownership, error) {
	o, err := r.ownership(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if err := lockParcel(ctx, tx, o.ParcelID); err != nil {
		return nil, err
	}

	locked, err := tx.LockOwnership(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not lock ownership: %w", err)
	}
	if locked == nil {
		return nil, notFound("ownership")
	}

	return locked, nil
}

func (r *registry) UpdateOwnership(ctx context.Context,
	actor domain.Actor,
	id domain.OwnershipID,
	patch OwnershipPatch) (*domain.Ownership, error) {
	if err := requireStaff(actor, "update ownerships"); err != nil {
		return nil, err
	}

	return r.updateOwnership(ctx, id, func(o *domain.Ownership) {
		if patch.OwnershipPercentage != nil {
			o.OwnershipPercentage = *patch.OwnershipPercentage
		}
		if patch.OwnershipType != nil {
			o.OwnershipType = *patch.OwnershipType
		}
		if patch.AcquisitionMethod != nil {
			o.AcquisitionMethod = *patch.AcquisitionMethod
		}
		if patch.TitleDeedNumber != nil {
			o.TitleDeedNumber = strings.TrimSpace(*patch.TitleDeedNumber)
		}
		if patch.Status != nil {
			o.Status = *patch.Status
		}
		if patch.EndDate != nil {
			o.EndDate = today(*patch.EndDate)
		}
		if patch.Notes != nil {
			o.Notes = *patch.Notes
		}
	})
}

// updateOwnership applies change to the ownership inside a transaction that
// holds the parcel and ownership locks, re-checking the share of the parcel.
func (r *registry) updateOwnership(ctx context.Context,
	id domain.OwnershipID,
	change func(o *domain.Ownership)) (*domain.Ownership, error) {
	var updated *domain.Ownership
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		o, err := r.lockOwnership(ctx, tx, id)
		if err != nil {
			return err
		}

		wasEnded := o.Status.Ends()
		change(o)
		if o.Status.Ends() && (!wasEnded || o.EndDate.IsZero()) {
			o.EndDate = today(r.now())
		}
		if !o.Status.Ends() && wasEnded {
			o.EndDate = time.Time{}
		}
		if err := o.Validate(); err != nil {
			return err
		}
		if err := checkShare(ctx, tx, o, &o.ID); err != nil {
			return err
		}

		updated, err = tx.UpdateOwnership(ctx, *o)
		if err != nil {
			return storage.Translate(fmt.Errorf("could not update ownership: %w", err), ownershipConstraints)
		}
		if updated == nil {
			return notFound("ownership")
		}

		return nil
	}); err != nil {
		return nil, err //nolint: wrapcheck
	}

	return updated, nil
}

func (r *registry) SetOwnershipStatus(ctx context.Context,
	actor domain.Actor,
	id domain.OwnershipID,
	status domain.OwnershipStatus) (*domain.Ownership, error) {
	if err := requireStaff(actor, "change ownership status"); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, serrors.Invalid("status", "is not a known ownership status")
	}

	return r.updateOwnership(ctx, id, func(o *domain.Ownership) {
		o.Status = status
	})
}

func (r *registry) DeleteOwnership(ctx context.Context, actor domain.Actor, id domain.OwnershipID) error {
	if err := requireAdmin(actor, "delete ownerships"); err != nil {
		return err
	}

	deleted, err := r.storage.DeleteOwnership(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete ownership: %w", err)
	}
	if !deleted {
		return notFound("ownership")
	}

	return nil
}

// ListOwnerships lists ownerships. Citizens only ever see their own.
func (r *registry) ListOwnerships(ctx context.Context,
	actor domain.Actor,
	filter storage.OwnershipFilter,
	page domain.PageRequest) (*domain.Page[domain.Ownership], error) {
	if !actor.IsStaff() {
		filter.UserID = &actor.UserID
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, serrors.Invalid("status", "is not a known ownership status")
	}
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, serrors.Invalid("ownershipType", "is not a known ownership type")
	}

	page = page.Normalize()
	items, total, err := r.storage.ListOwnerships(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("could not list ownerships: %w", err)
	}

	return newPage(items, total, page), nil
}

// TransferOwnership ends an active ownership and grants the same share of
// the parcel to newOwner, atomically.
func (r *registry) TransferOwnership(ctx context.Context,
	actor domain.Actor,
	id domain.OwnershipID,
	newOwner domain.UserID) (*domain.Ownership, error) {
	if err := requireStaff(actor, "transfer ownerships"); err != nil {
		return nil, err
	}
	if newOwner.IsZero() {
		return nil, serrors.Invalid("newUserId", "is required")
	}

	var created *domain.Ownership
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		old, err := r.lockOwnership(ctx, tx, id)
		if err != nil {
			return err
		}
		if old.Status != domain.OwnershipStatusActive {
			return serrors.With(serrors.ErrConflict, "only active ownerships can be transferred")
		}
		if old.UserID == newOwner {
			return serrors.Invalid("newUserId", "already holds this ownership")
		}
		if err := activeUser(ctx, tx, newOwner, "newUserId"); err != nil {
			return err
		}

		now := today(r.now())
		successor := *old
		successor.ID = domain.OwnershipID{}
		successor.UserID = newOwner
		successor.AcquisitionDate = now
		successor.StartDate = now
		successor.EndDate = time.Time{}
		successor.Notes = fmt.Sprintf("transferred from ownership %s", old.ID)

		old.Status = domain.OwnershipStatusTransferred
		old.EndDate = now
		if _, err := tx.UpdateOwnership(ctx, *old); err != nil {
			return storage.Translate(fmt.Errorf("could not end ownership: %w", err), ownershipConstraints)
		}

		created, err = tx.CreateOwnership(ctx, successor)
		if err != nil {
			return storage.Translate(fmt.Errorf("could not create transferred ownership: %w", err), map[string]string{
				"ownerships_active_holder_key": "new owner already has an active ownership of this land parcel",
			})
		}

		return nil
	}); err != nil {
		return nil, err //nolint: wrapcheck
	}

	logger.Info(ctx, "ownership transferred",
		zap.Stringer("from", id),
		zap.Stringer("to", created.ID),
		zap.Stringer("newOwner", newOwner),
		zap.Stringer("by", actor.UserID))

	return created, nil
}

func (r *registry) OwnershipStats(ctx context.Context, actor domain.Actor) (*domain.OwnershipStats, error) {
	if err := requireStaff(actor, "view ownership statistics"); err != nil {
		return nil, err
	}

	stats, err := r.storage.OwnershipStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get ownership stats: %w", err)
	}

	return &stats, nil
}
