package storage

import (
	"context"
	"landregistry/pkg/domain"

	"github.com/shopspring/decimal"
)

// OwnershipFilter narrows ownership listings. Zero-valued fields are ignored.
type OwnershipFilter struct {
	UserID   *domain.UserID
	ParcelID *domain.ParcelID
	Status   domain.OwnershipStatus
	Type     domain.OwnershipType
}

type OwnershipStorage interface {
	// CreateOwnership inserts o. A duplicate title deed number returns ErrUniqueViolation
	// and a missing user or parcel returns ErrForeignKeyViolation.
	CreateOwnership(ctx context.Context, o domain.Ownership) (*domain.Ownership, error)
	UpdateOwnership(ctx context.Context, o domain.Ownership) (*domain.Ownership, error)
	DeleteOwnership(ctx context.Context, id domain.OwnershipID) (bool, error)
	OwnershipByID(ctx context.Context, id domain.OwnershipID) (*domain.Ownership, error)
	// LockOwnership fetches the ownership and holds a row lock on it until the
	// surrounding transaction ends.
	LockOwnership(ctx context.Context, id domain.OwnershipID) (*domain.Ownership, error)
	ListOwnerships(ctx context.Context,
		filter OwnershipFilter,
		page domain.PageRequest) ([]domain.Ownership, int64, error)
	// ActiveOwnershipShare sums the percentages of ACTIVE ownerships on a
	// parcel, leaving out the ownership identified by exclude when set.
	ActiveOwnershipShare(ctx context.Context,
		parcelID domain.ParcelID,
		exclude *domain.OwnershipID) (decimal.Decimal, error)
	OwnershipStats(ctx context.Context) (domain.OwnershipStats, error)
}
