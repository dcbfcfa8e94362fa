package postgres

import (
	"context"
	"fmt"
	"landregistry/pkg/domain"
	"landregistry/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

var documentSort = sortColumns{ //nolint: gochecknoglobals
	"createdAt":    "created_at",
	"documentName": "document_name",
	"documentType": "document_type",
	"status":       "status",
	"version":      "version",
	"fileSize":     "file_size",
	"expiryDate":   "expiry_date",
}

func (p *PgSQL) CreateDocument(ctx context.Context, d domain.Document) (*domain.Document, error) {
	var row PgDocument
	row.FromDomain(d)

	var stored PgDocument
	if _, err := p.Builder.Insert(documentsTable).
		Rows(row).
		Returning(&PgDocument{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, wrapErr(err, "could not store document into pg")
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) UpdateDocument(ctx context.Context, d domain.Document) (*domain.Document, error) {
	var row PgDocument
	row.FromDomain(d)
	row.UpdatedAt = nullTime(time.Now())

	var stored PgDocument
	found, err := p.Builder.Update(documentsTable).
		Set(row).
		Where(goqu.I("id").Eq(uuid.UUID(d.ID))).
		Returning(&PgDocument{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, wrapErr(err, "could not update document in pg")
	}
	if !found {
		return nil, nil
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) DeleteDocument(ctx context.Context, id domain.DocumentID) (bool, error) {
	return p.deleteByID(ctx, documentsTable, uuid.UUID(id))
}

func (p *PgSQL) DocumentByID(ctx context.Context, id domain.DocumentID) (*domain.Document, error) {
	var row PgDocument
	found, err := p.Builder.From(documentsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch document: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ListDocuments(ctx context.Context,
	filter storage.DocumentFilter,
	page domain.PageRequest) ([]domain.Document, int64, error) {
	ds := p.Builder.From(documentsTable)
	if filter.Search != "" {
		ds = ds.Where(contains(filter.Search, "document_name", "description"))
	}
	if filter.Type != "" {
		ds = ds.Where(goqu.I("document_type").Eq(string(filter.Type)))
	}
	if filter.Status != "" {
		ds = ds.Where(goqu.I("status").Eq(string(filter.Status)))
	}
	if filter.Verified != nil {
		ds = ds.Where(goqu.I("is_verified").Eq(*filter.Verified))
	}
	if filter.ParcelID != nil {
		ds = ds.Where(goqu.I("land_parcel_id").Eq(uuid.UUID(*filter.ParcelID)))
	}
	if filter.RequestID != nil {
		ds = ds.Where(goqu.I("request_id").Eq(uuid.UUID(*filter.RequestID)))
	}
	if filter.UploadedBy != nil {
		ds = ds.Where(goqu.I("uploaded_by").Eq(uuid.UUID(*filter.UploadedBy)))
	}

	var rows []PgDocument
	total, err := fetchPage(ctx, ds, page, documentSort.order(page), &rows)
	if err != nil {
		return nil, 0, fmt.Errorf("could not list documents: %w", err)
	}

	return toDomain(rows, (*PgDocument).ToDomain), total, nil
}

func (p *PgSQL) MaxDocumentVersion(ctx context.Context, name string, parcelID *domain.ParcelID) (int, error) {
	ds := p.Builder.From(documentsTable).
		Select(goqu.COALESCE(goqu.MAX("version"), 0)).
		Where(goqu.I("document_name").Eq(name))
	if parcelID != nil {
		ds = ds.Where(goqu.I("land_parcel_id").Eq(uuid.UUID(*parcelID)))
	} else {
		ds = ds.Where(goqu.I("land_parcel_id").IsNull())
	}

	var version int
	if _, err := ds.ScanValContext(ctx, &version); err != nil {
		return 0, fmt.Errorf("could not fetch max document version: %w", err)
	}

	return version, nil
}

func (p *PgSQL) ArchiveExpiredDocuments(ctx context.Context, now time.Time) (int64, error) {
	res, err := p.Builder.Update(documentsTable).
		Set(goqu.Record{
			"status":     string(domain.DocumentStatusArchived),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("status").Eq(string(domain.DocumentStatusActive)),
			goqu.I("expiry_date").Lt(now),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not archive expired documents: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n, nil
}

func (p *PgSQL) DocumentStats(ctx context.Context) (domain.DocumentStats, error) {
	byStatus, err := countBy(ctx, p.Builder.From(documentsTable), "status")
	if err != nil {
		return domain.DocumentStats{}, err
	}
	byType, err := countBy(ctx, p.Builder.From(documentsTable), "document_type")
	if err != nil {
		return domain.DocumentStats{}, err
	}

	var agg struct {
		Verified int64 `db:"verified"`
		Size     int64 `db:"size"`
	}
	_, err = p.Builder.From(documentsTable).
		Select(
			goqu.L("COUNT(*) FILTER (WHERE is_verified)").As("verified"),
			goqu.L("COALESCE(SUM(file_size) FILTER (WHERE status = ?), 0)::BIGINT",
				string(domain.DocumentStatusActive)).As("size"),
		).
		ScanStructContext(ctx, &agg)
	if err != nil {
		return domain.DocumentStats{}, fmt.Errorf("could not aggregate documents: %w", err)
	}

	stats := domain.DocumentStats{
		Verified:            agg.Verified,
		ByStatus:            convertKeys[domain.DocumentStatus](byStatus),
		ByType:              convertKeys[domain.DocumentType](byType),
		TotalActiveFileSize: agg.Size,
	}
	for _, c := range byStatus {
		stats.Total += c
	}

	return stats, nil
}
