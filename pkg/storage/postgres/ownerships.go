package postgres

import (
	"context"
	"fmt"
	"landregistry/pkg/domain"
	"landregistry/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ownershipSort = sortColumns{ //nolint: gochecknoglobals
	"createdAt":           "created_at",
	"acquisitionDate":     "acquisition_date",
	"startDate":           "start_date",
	"ownershipPercentage": "ownership_percentage",
	"status":              "status",
	"ownershipType":       "ownership_type",
}

func (p *PgSQL) CreateOwnership(ctx context.Context, o domain.Ownership) (*domain.Ownership, error) {
	var row PgOwnership
	row.FromDomain(o)

	var stored PgOwnership
	if _, err := p.Builder.Insert(ownershipsTable).
		Rows(row).
		Returning(&PgOwnership{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, wrapErr(err, "could not store ownership into pg")
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) UpdateOwnership(ctx context.Context, o domain.Ownership) (*domain.Ownership, error) {
	var row PgOwnership
	row.FromDomain(o)
	row.UpdatedAt = nullTime(time.Now())

	var stored PgOwnership
	found, err := p.Builder.Update(ownershipsTable).
		Set(row).
		Where(goqu.I("id").Eq(uuid.UUID(o.ID))).
		Returning(&PgOwnership{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, wrapErr(err, "could not update ownership in pg")
	}
	if !found {
		return nil, nil
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) DeleteOwnership(ctx context.Context, id domain.OwnershipID) (bool, error) {
	return p.deleteByID(ctx, ownershipsTable, uuid.UUID(id))
}

func (p *PgSQL) OwnershipByID(ctx context.Context, id domain.OwnershipID) (*domain.Ownership, error) {
	return p.ownershipBy(ctx, p.Builder.From(ownershipsTable).Where(goqu.I("id").Eq(uuid.UUID(id))))
}

// LockOwnership selects the ownership FOR UPDATE.
func (p *PgSQL) LockOwnership(ctx context.Context, id domain.OwnershipID) (*domain.Ownership, error) {
	return p.ownershipBy(ctx, p.Builder.From(ownershipsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		ForUpdate(exp.Wait))
}

func (p *PgSQL) ownershipBy(ctx context.Context, ds *goqu.SelectDataset) (*domain.Ownership, error) {
	var row PgOwnership
	found, err := ds.ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch ownership: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ListOwnerships(ctx context.Context,
	filter storage.OwnershipFilter,
	page domain.PageRequest) ([]domain.Ownership, int64, error) {
	ds := p.Builder.From(ownershipsTable)
	if filter.UserID != nil {
		ds = ds.Where(goqu.I("user_id").Eq(uuid.UUID(*filter.UserID)))
	}
	if filter.ParcelID != nil {
		ds = ds.Where(goqu.I("land_parcel_id").Eq(uuid.UUID(*filter.ParcelID)))
	}
	if filter.Status != "" {
		ds = ds.Where(goqu.I("status").Eq(string(filter.Status)))
	}
	if filter.Type != "" {
		ds = ds.Where(goqu.I("ownership_type").Eq(string(filter.Type)))
	}

	var rows []PgOwnership
	total, err := fetchPage(ctx, ds, page, ownershipSort.order(page), &rows)
	if err != nil {
		return nil, 0, fmt.Errorf("could not list ownerships: %w", err)
	}

	return toDomain(rows, (*PgOwnership).ToDomain), total, nil
}

func (p *PgSQL) ActiveOwnershipShare(ctx context.Context,
	parcelID domain.ParcelID,
	exclude *domain.OwnershipID) (decimal.Decimal, error) {
	ds := p.Builder.From(ownershipsTable).
		Select(goqu.COALESCE(goqu.SUM("ownership_percentage"), 0)).
		Where(
			goqu.I("land_parcel_id").Eq(uuid.UUID(parcelID)),
			goqu.I("status").Eq(string(domain.OwnershipStatusActive)),
		)
	if exclude != nil {
		ds = ds.Where(goqu.I("id").Neq(uuid.UUID(*exclude)))
	}

	var share decimal.Decimal
	if _, err := ds.ScanValContext(ctx, &share); err != nil {
		return decimal.Zero, fmt.Errorf("could not sum active ownership share: %w", err)
	}

	return share, nil
}

func (p *PgSQL) OwnershipStats(ctx context.Context) (domain.OwnershipStats, error) {
	byStatus, err := countBy(ctx, p.Builder.From(ownershipsTable), "status")
	if err != nil {
		return domain.OwnershipStats{}, err
	}
	byType, err := countBy(ctx, p.Builder.From(ownershipsTable), "ownership_type")
	if err != nil {
		return domain.OwnershipStats{}, err
	}

	stats := domain.OwnershipStats{
		ByStatus: convertKeys[domain.OwnershipStatus](byStatus),
		ByType:   convertKeys[domain.OwnershipType](byType),
	}
	for _, c := range byStatus {
		stats.Total += c
	}

	return stats, nil
}
