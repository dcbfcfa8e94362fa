package registry

import (
	"context"
	"fmt"
	"landregistry/pkg/domain"
	"landregistry/pkg/logger"
	"landregistry/pkg/serrors"
	"landregistry/pkg/storage"
	"strings"

	"go.uber.org/zap"
)

var parcelConstraints = map[string]string{ //nolint: gochecknoglobals
	"land_parcels_parcel_number_key": "parcel number already exists",
}

func (r *registry) CreateParcel(ctx context.Context, actor domain.Actor, p domain.Parcel) (*domain.Parcel, error) {
	if err := requireStaff(actor, "register land parcels"); err != nil {
		return nil, err
	}

	p.ID = domain.ParcelID{}
	trimParcel(&p)
	if p.Status == "" {
		p.Status = domain.ParcelStatusAvailable
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	created, err := r.storage.CreateParcel(ctx, p)
	if err != nil {
		return nil, storage.Translate(fmt.Errorf("could not create land parcel: %w", err), parcelConstraints)
	}

	logger.Info(ctx, "land parcel registered",
		zap.Stringer("parcelID", created.ID),
		zap.String("parcelNumber", created.ParcelNumber))

	return created, nil
}

func trimParcel(p *domain.Parcel) {
	p.ParcelNumber = strings.TrimSpace(p.ParcelNumber)
	p.Location = strings.TrimSpace(p.Location)
	p.District = strings.TrimSpace(p.District)
	p.Sector = strings.TrimSpace(p.Sector)
	p.Cell = strings.TrimSpace(p.Cell)
}

func (r *registry) Parcel(ctx context.Context, _ domain.Actor, id domain.ParcelID) (*domain.Parcel, error) {
	return r.parcel(ctx, r.storage, id)
}

func (r *registry) parcel(ctx context.Context, st storage.AllStorage, id domain.ParcelID) (*domain.Parcel, error) {
	p, err := st.ParcelByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get land parcel: %w", err)
	}
	if p == nil {
		return nil, notFound("land parcel")
	}

	return p, nil
}

func (r *registry) ParcelByNumber(ctx context.Context, _ domain.Actor, number string) (*domain.Parcel, error) {
	p, err := r.storage.ParcelByNumber(ctx, strings.TrimSpace(number))
	if err != nil {
		return nil, fmt.Errorf("could not get land parcel: %w", err)
	}
	if p == nil {
		return nil, notFound("land parcel")
	}

	return p, nil
}

func (r *registry) UpdateParcel(ctx context.Context,
	actor domain.Actor,
	id domain.ParcelID,
	patch ParcelPatch) (*domain.Parcel, error) {
	if err := requireStaff(actor, "update land parcels"); err != nil {
		return nil, err
	}

	p, err := r.parcel(ctx, r.storage, id)
	if err != nil {
		return nil, err
	}

	applyParcelPatch(p, patch)
	trimParcel(p)
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return r.saveParcel(ctx, *p)
}

func applyParcelPatch(p *domain.Parcel, patch ParcelPatch) {
	if patch.ParcelNumber != nil {
		p.ParcelNumber = *patch.ParcelNumber
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.District != nil {
		p.District = *patch.District
	}
	if patch.Sector != nil {
		p.Sector = *patch.Sector
	}
	if patch.Cell != nil {
		p.Cell = *patch.Cell
	}
	if patch.AreaSqm != nil {
		p.AreaSqm = *patch.AreaSqm
	}
	if patch.LandUse != nil {
		p.LandUse = *patch.LandUse
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Coordinates != nil {
		p.Coordinates = *patch.Coordinates
	}
	if patch.MarketValue != nil {
		p.MarketValue = patch.MarketValue
	}
}

func (r *registry) saveParcel(ctx context.Context, p domain.Parcel) (*domain.Parcel, error) {
	updated, err := r.storage.UpdateParcel(ctx, p)
	if err != nil {
		return nil, storage.Translate(fmt.Errorf("could not update land parcel: %w", err), parcelConstraints)
	}
	if updated == nil {
		return nil, notFound("land parcel")
	}

	return updated, nil
}

// DeleteParcel removes the parcel together with its ownerships and documents.
func (r *registry) DeleteParcel(ctx context.Context, actor domain.Actor, id domain.ParcelID) error {
	if err := requireAdmin(actor, "delete land parcels"); err != nil {
		return err
	}

	deleted, err := r.storage.DeleteParcel(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete land parcel: %w", err)
	}
	if !deleted {
		return notFound("land parcel")
	}

	logger.Info(ctx, "land parcel deleted", zap.Stringer("parcelID", id), zap.Stringer("by", actor.UserID))

	return nil
}

func (r *registry) ListParcels(ctx context.Context,
	_ domain.Actor,
	filter storage.ParcelFilter,
	page domain.PageRequest) (*domain.Page[domain.Parcel], error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, serrors.Invalid("status", "is not a known land parcel status")
	}
	if filter.LandUse != "" && !filter.LandUse.Valid() {
		return nil, serrors.Invalid("landUse", "is not a known land use")
	}
	if filter.MinArea != nil && filter.MaxArea != nil && filter.MinArea.GreaterThan(*filter.MaxArea) {
		return nil, serrors.Invalid("minArea", "must not exceed maxArea")
	}

	page = page.Normalize()
	parcels, total, err := r.storage.ListParcels(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("could not list land parcels: %w", err)
	}

	return newPage(parcels, total, page), nil
}

func (r *registry) SetParcelStatus(ctx context.Context,
	actor domain.Actor,
	id domain.ParcelID,
	status domain.ParcelStatus) (*domain.Parcel, error) {
	if err := requireStaff(actor, "change land parcel status"); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, serrors.Invalid("status", "is not a known land parcel status")
	}

	p, err := r.parcel(ctx, r.storage, id)
	if err != nil {
		return nil, err
	}
	p.Status = status

	return r.saveParcel(ctx, *p)
}

func (r *registry) ParcelStats(ctx context.Context, actor domain.Actor) (*domain.ParcelStats, error) {
	if err := requireStaff(actor, "view land parcel statistics"); err != nil {
		return nil, err
	}

	stats, err := r.storage.ParcelStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get land parcel stats: %w", err)
	}

	return &stats, nil
}

// parcelExists reports a referenced parcel that is missing as an invalid field.
func parcelExists(ctx context.Context, st storage.AllStorage, id domain.ParcelID) error {
	p, err := st.ParcelByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not get land parcel: %w", err)
	}
	if p == nil {
		return serrors.Invalid("landParcelId", "does not exist")
	}

	return nil
}
