package postgres

import (
	"context"
	"fmt"
	"landregistry/pkg/domain"
	"landregistry/pkg/storage"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var parcelSort = sortColumns{ //nolint: gochecknoglobals
	"createdAt":    "created_at",
	"parcelNumber": "parcel_number",
	"location":     "location",
	"district":     "district",
	"sector":       "sector",
	"areaSqm":      "area_sqm",
	"landUse":      "land_use",
	"status":       "status",
	"marketValue":  "market_value",
}

func (p *PgSQL) CreateParcel(ctx context.Context, parcel domain.Parcel) (*domain.Parcel, error) {
	var row PgParcel
	row.FromDomain(parcel)

	var stored PgParcel
	if _, err := p.Builder.Insert(parcelsTable).
		Rows(row).
		Returning(&PgParcel{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, wrapErr(err, "could not store land parcel into pg")
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) UpdateParcel(ctx context.Context, parcel domain.Parcel) (*domain.Parcel, error) {
	var row PgParcel
	row.FromDomain(parcel)
	row.UpdatedAt = nullTime(time.Now())

	var stored PgParcel
	found, err := p.Builder.Update(parcelsTable).
		Set(row).
		Where(goqu.I("id").Eq(uuid.UUID(parcel.ID))).
		Returning(&PgParcel{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, wrapErr(err, "could not update land parcel in pg")
	}
	if !found {
		return nil, nil
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) DeleteParcel(ctx context.Context, id domain.ParcelID) (bool, error) {
	return p.deleteByID(ctx, parcelsTable, uuid.UUID(id))
}

func (p *PgSQL) parcelBy(ctx context.Context, ds *goqu.SelectDataset) (*domain.Parcel, error) {
	var row PgParcel
	found, err := ds.ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch land parcel: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ParcelByID(ctx context.Context, id domain.ParcelID) (*domain.Parcel, error) {
	return p.parcelBy(ctx, p.Builder.From(parcelsTable).Where(goqu.I("id").Eq(uuid.UUID(id))))
}

func (p *PgSQL) ParcelByNumber(ctx context.Context, number string) (*domain.Parcel, error) {
	return p.parcelBy(ctx, p.Builder.From(parcelsTable).
		Where(goqu.Func("UPPER", goqu.I("parcel_number")).Eq(strings.ToUpper(strings.TrimSpace(number)))))
}

// LockParcel selects the parcel FOR UPDATE.
func (p *PgSQL) LockParcel(ctx context.Context, id domain.ParcelID) (*domain.Parcel, error) {
	return p.parcelBy(ctx, p.Builder.From(parcelsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		ForUpdate(exp.Wait))
}

func (p *PgSQL) ListParcels(ctx context.Context,
	filter storage.ParcelFilter,
	page domain.PageRequest) ([]domain.Parcel, int64, error) {
	ds := p.Builder.From(parcelsTable)
	if filter.Search != "" {
		ds = ds.Where(contains(filter.Search, "parcel_number", "location", "district", "sector", "cell"))
	}
	if filter.Location != "" {
		ds = ds.Where(contains(filter.Location, "location", "district", "sector", "cell"))
	}
	if filter.District != "" {
		ds = ds.Where(goqu.Func("LOWER", goqu.I("district")).Eq(strings.ToLower(filter.District)))
	}
	if filter.Sector != "" {
		ds = ds.Where(goqu.Func("LOWER", goqu.I("sector")).Eq(strings.ToLower(filter.Sector)))
	}
	if filter.Cell != "" {
		ds = ds.Where(goqu.Func("LOWER", goqu.I("cell")).Eq(strings.ToLower(filter.Cell)))
	}
	if filter.Status != "" {
		ds = ds.Where(goqu.I("status").Eq(string(filter.Status)))
	}
	if filter.LandUse != "" {
		ds = ds.Where(goqu.I("land_use").Eq(string(filter.LandUse)))
	}
	if filter.MinArea != nil {
		ds = ds.Where(goqu.I("area_sqm").Gte(*filter.MinArea))
	}
	if filter.MaxArea != nil {
		ds = ds.Where(goqu.I("area_sqm").Lte(*filter.MaxArea))
	}
	if filter.OwnerID != nil {
		ds = ds.Where(goqu.I("id").In(
			p.Builder.From(ownershipsTable).
				Select("land_parcel_id").
				Where(
					goqu.I("user_id").Eq(uuid.UUID(*filter.OwnerID)),
					goqu.I("status").Eq(string(domain.OwnershipStatusActive)),
				),
		))
	}

	var rows []PgParcel
	total, err := fetchPage(ctx, ds, page, parcelSort.order(page), &rows)
	if err != nil {
		return nil, 0, fmt.Errorf("could not list land parcels: %w", err)
	}

	return toDomain(rows, (*PgParcel).ToDomain), total, nil
}

func (p *PgSQL) ParcelStats(ctx context.Context) (domain.ParcelStats, error) {
	byStatus, err := countBy(ctx, p.Builder.From(parcelsTable), "status")
	if err != nil {
		return domain.ParcelStats{}, err
	}
	byLandUse, err := countBy(ctx, p.Builder.From(parcelsTable), "land_use")
	if err != nil {
		return domain.ParcelStats{}, err
	}

	var sums struct {
		Area  decimal.Decimal `db:"area"`
		Value decimal.Decimal `db:"value"`
	}
	_, err = p.Builder.From(parcelsTable).
		Select(
			goqu.COALESCE(goqu.SUM("area_sqm"), 0).As("area"),
			goqu.COALESCE(goqu.SUM("market_value"), 0).As("value"),
		).
		ScanStructContext(ctx, &sums)
	if err != nil {
		return domain.ParcelStats{}, fmt.Errorf("could not sum land parcels: %w", err)
	}

	stats := domain.ParcelStats{
		ByStatus:         convertKeys[domain.ParcelStatus](byStatus),
		ByLandUse:        convertKeys[domain.LandUse](byLandUse),
		TotalAreaSqm:     sums.Area,
		TotalMarketValue: sums.Value,
	}
	for _, c := range byStatus {
		stats.Total += c
	}

	return stats, nil
}

// deleteByID hard-deletes a row from table and reports whether it existed.
func (p *PgSQL) deleteByID(ctx context.Context, table string, id uuid.UUID) (bool, error) {
	res, err := p.Builder.Delete(table).
		Where(goqu.I("id").Eq(id)).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, wrapErr(err, "could not delete from "+table)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n > 0, nil
}
