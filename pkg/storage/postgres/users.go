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
)

var userSort = sortColumns{ //nolint: gochecknoglobals
	"createdAt":   "created_at",
	"firstName":   "first_name",
	"lastName":    "last_name",
	"email":       "email",
	"role":        "role",
	"status":      "status",
	"nationalId":  "national_id",
	"phoneNumber": "phone_number",
}

func (p *PgSQL) users() *goqu.SelectDataset {
	return p.Builder.From(usersTable).Where(goqu.I("deleted_at").IsNull())
}

func (p *PgSQL) CreateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	var row PgUser
	row.FromDomain(u)
	row.Email = strings.ToLower(strings.TrimSpace(row.Email))

	var stored PgUser
	if _, err := p.Builder.Insert(usersTable).
		Rows(row).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, wrapErr(err, "could not store user into pg")
	}

	return stored.ToDomain(), nil
}

// UpdateUser overwrites every mutable column and bumps updated_at.
func (p *PgSQL) UpdateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	var row PgUser
	row.FromDomain(u)
	row.Email = strings.ToLower(strings.TrimSpace(row.Email))
	row.UpdatedAt = nullTime(time.Now())

	var stored PgUser
	found, err := p.Builder.Update(usersTable).
		Set(row).
		Where(goqu.I("id").Eq(uuid.UUID(u.ID)), goqu.I("deleted_at").IsNull()).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, wrapErr(err, "could not update user in pg")
	}
	if !found {
		return nil, nil
	}

	return stored.ToDomain(), nil
}

// DeleteUser performs a soft delete by setting the deleted_at timestamp.
func (p *PgSQL) DeleteUser(ctx context.Context, id domain.UserID) (bool, error) {
	res, err := p.Builder.Update(usersTable).
		Set(goqu.Record{"deleted_at": goqu.L("CURRENT_TIMESTAMP")}).
		Where(goqu.I("id").Eq(uuid.UUID(id)), goqu.I("deleted_at").IsNull()).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete user in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n > 0, nil
}

func (p *PgSQL) userBy(ctx context.Context, where exp.Expression) (*domain.User, error) {
	var row PgUser
	found, err := p.users().Where(where).ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return p.userBy(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return p.userBy(ctx, goqu.Func("LOWER", goqu.I("email")).Eq(strings.ToLower(strings.TrimSpace(email))))
}

func (p *PgSQL) UserByResetToken(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, nil
	}

	return p.userBy(ctx, goqu.I("password_reset_token").Eq(token))
}

func (p *PgSQL) ListUsers(ctx context.Context,
	filter storage.UserFilter,
	page domain.PageRequest) ([]domain.User, int64, error) {
	ds := p.users()
	if filter.Search != "" {
		ds = ds.Where(contains(filter.Search, "first_name", "last_name", "email", "phone_number", "national_id"))
	}
	if filter.Name != "" {
		ds = ds.Where(goqu.Or(
			contains(filter.Name, "first_name", "last_name"),
			goqu.L("first_name || ' ' || last_name").ILike("%"+escapeLike(strings.TrimSpace(filter.Name))+"%"),
		))
	}
	if filter.Role != "" {
		ds = ds.Where(goqu.I("role").Eq(string(filter.Role)))
	}
	if filter.Status != "" {
		ds = ds.Where(goqu.I("status").Eq(string(filter.Status)))
	}

	var rows []PgUser
	total, err := fetchPage(ctx, ds, page, userSort.order(page), &rows)
	if err != nil {
		return nil, 0, fmt.Errorf("could not list users: %w", err)
	}

	return toDomain(rows, (*PgUser).ToDomain), total, nil
}

func (p *PgSQL) UserStats(ctx context.Context) (domain.UserStats, error) {
	byRole, err := countBy(ctx, p.users(), "role")
	if err != nil {
		return domain.UserStats{}, err
	}
	byStatus, err := countBy(ctx, p.users(), "status")
	if err != nil {
		return domain.UserStats{}, err
	}

	stats := domain.UserStats{
		Active: byStatus[string(domain.UserStatusActive)],
		ByRole: convertKeys[domain.Role](byRole),
	}
	for _, c := range byRole {
		stats.Total += c
	}

	return stats, nil
}
