package storage

import (
	"context"
	"landregistry/pkg/domain"

	"github.com/shopspring/decimal"
)

// ParcelFilter narrows parcel listings. Zero-valued fields are ignored.
type ParcelFilter struct {
	// Search matches parcel number, location, district, sector or cell.
	Search string
	// Location matches location, district, sector or cell.
	Location string
	District string
	Sector   string
	Cell     string
	Status   domain.ParcelStatus
	LandUse  domain.LandUse
	MinArea  *decimal.Decimal
	MaxArea  *decimal.Decimal
	// OwnerID keeps parcels on which the user holds an ACTIVE ownership.
	OwnerID *domain.UserID
}

type ParcelStorage interface {
	// CreateParcel inserts p. A duplicate parcel number returns ErrUniqueViolation.
	CreateParcel(ctx context.Context, p domain.Parcel) (*domain.Parcel, error)
	// UpdateParcel overwrites the mutable columns of p.ID, returning nil when missing.
	UpdateParcel(ctx context.Context, p domain.Parcel) (*domain.Parcel, error)
	// DeleteParcel removes the parcel together with its ownerships.
	DeleteParcel(ctx context.Context, id domain.ParcelID) (bool, error)
	ParcelByID(ctx context.Context, id domain.ParcelID) (*domain.Parcel, error)
	ParcelByNumber(ctx context.Context, number string) (*domain.Parcel, error)
	// LockParcel fetches the parcel and holds a row lock on it until the
	// surrounding transaction ends. Outside a transaction the lock is released
	// immediately.
	LockParcel(ctx context.Context, id domain.ParcelID) (*domain.Parcel, error)
	ListParcels(ctx context.Context, filter ParcelFilter, page domain.PageRequest) ([]domain.Parcel, int64, error)
	ParcelStats(ctx context.Context) (domain.ParcelStats, error)
}
