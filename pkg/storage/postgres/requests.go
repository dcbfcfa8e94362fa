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
)

var requestSort = sortColumns{ //nolint: gochecknoglobals
	"createdAt":      "created_at",
	"submissionDate": "submission_date",
	"requestNumber":  "request_number",
	"requestType":    "request_type",
	"status":         "status",
	"priority":       "priority",
	"reviewDate":     "review_date",
	"completionDate": "completion_date",
}

// priorityRank orders URGENT before HIGH before NORMAL before LOW.
var priorityRank = goqu.L(`CASE "priority" ` + //nolint: gochecknoglobals
	`WHEN 'URGENT' THEN 4 WHEN 'HIGH' THEN 3 WHEN 'NORMAL' THEN 2 WHEN 'LOW' THEN 1 ELSE 0 END`)

func (p *PgSQL) CreateRequest(ctx context.Context, r domain.Request) (*domain.Request, error) {
	var row PgRequest
	row.FromDomain(r)

	var stored PgRequest
	if _, err := p.Builder.Insert(requestsTable).
		Rows(row).
		Returning(&PgRequest{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, wrapErr(err, "could not store request into pg")
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) UpdateRequest(ctx context.Context, r domain.Request) (*domain.Request, error) {
	var row PgRequest
	row.FromDomain(r)
	row.UpdatedAt = nullTime(time.Now())

	var stored PgRequest
	found, err := p.Builder.Update(requestsTable).
		Set(row).
		Where(goqu.I("id").Eq(uuid.UUID(r.ID))).
		Returning(&PgRequest{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, wrapErr(err, "could not update request in pg")
	}
	if !found {
		return nil, nil
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) DeleteRequest(ctx context.Context, id domain.RequestID) (bool, error) {
	return p.deleteByID(ctx, requestsTable, uuid.UUID(id))
}

func (p *PgSQL) RequestByID(ctx context.Context, id domain.RequestID) (*domain.Request, error) {
	return p.requestBy(ctx, p.Builder.From(requestsTable).Where(goqu.I("id").Eq(uuid.UUID(id))))
}

// LockRequest selects the request FOR UPDATE.
func (p *PgSQL) LockRequest(ctx context.Context, id domain.RequestID) (*domain.Request, error) {
	return p.requestBy(ctx, p.Builder.From(requestsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		ForUpdate(exp.Wait))
}

func (p *PgSQL) requestBy(ctx context.Context, ds *goqu.SelectDataset) (*domain.Request, error) {
	var row PgRequest
	found, err := ds.ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch request: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ListRequests(ctx context.Context,
	filter storage.RequestFilter,
	page domain.PageRequest) ([]domain.Request, int64, error) {
	ds := p.Builder.From(requestsTable)
	if filter.Search != "" {
		ds = ds.Where(contains(filter.Search, "request_number", "description"))
	}
	if filter.Status != "" {
		ds = ds.Where(goqu.I("status").Eq(string(filter.Status)))
	}
	if filter.Type != "" {
		ds = ds.Where(goqu.I("request_type").Eq(string(filter.Type)))
	}
	if filter.Priority != "" {
		ds = ds.Where(goqu.I("priority").Eq(string(filter.Priority)))
	}
	if filter.RequesterID != nil {
		ds = ds.Where(goqu.I("requester_id").Eq(uuid.UUID(*filter.RequesterID)))
	}
	if filter.AssignedOfficerID != nil {
		ds = ds.Where(goqu.I("assigned_officer_id").Eq(uuid.UUID(*filter.AssignedOfficerID)))
	}
	if filter.ParcelID != nil {
		ds = ds.Where(goqu.I("land_parcel_id").Eq(uuid.UUID(*filter.ParcelID)))
	}

	order := requestSort.order(page)
	if filter.ByPriority {
		order = []exp.OrderedExpression{
			priorityRank.Desc(),
			goqu.I("submission_date").Asc(),
			goqu.I("id").Asc(),
		}
	}

	var rows []PgRequest
	total, err := fetchPage(ctx, ds, page, order, &rows)
	if err != nil {
		return nil, 0, fmt.Errorf("could not list requests: %w", err)
	}

	return toDomain(rows, (*PgRequest).ToDomain), total, nil
}

func (p *PgSQL) NextRequestSequence(ctx context.Context) (int64, error) {
	var seq int64
	if err := p.DB.QueryRowContext(ctx, "SELECT nextval('request_number_seq')").Scan(&seq); err != nil {
		return 0, fmt.Errorf("could not get next request number: %w", err)
	}

	return seq, nil
}

func (p *PgSQL) RequestStats(ctx context.Context) (domain.RequestStats, error) {
	byStatus, err := countBy(ctx, p.Builder.From(requestsTable), "status")
	if err != nil {
		return domain.RequestStats{}, err
	}
	byType, err := countBy(ctx, p.Builder.From(requestsTable), "request_type")
	if err != nil {
		return domain.RequestStats{}, err
	}
	byPriority, err := countBy(ctx, p.Builder.From(requestsTable), "priority")
	if err != nil {
		return domain.RequestStats{}, err
	}

	stats := domain.RequestStats{
		ByStatus:   convertKeys[domain.RequestStatus](byStatus),
		ByType:     convertKeys[domain.RequestType](byType),
		ByPriority: convertKeys[domain.Priority](byPriority),
	}
	for _, c := range byStatus {
		stats.Total += c
	}

	return stats, nil
}
