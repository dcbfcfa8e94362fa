package postgres

import (
	"context"
	"fmt"
	"landregistry/pkg/domain"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

const (
	usersTable      = "users"
	parcelsTable    = "land_parcels"
	ownershipsTable = "ownerships"
	requestsTable   = "requests"
	documentsTable  = "documents"
)

// sortColumns maps API sort keys to column names. Unknown keys fall back to created_at.
type sortColumns map[string]string

func (s sortColumns) order(page domain.PageRequest) []exp.OrderedExpression {
	col, ok := s[page.SortBy]
	if !ok {
		col = "created_at"
	}

	if page.SortDir == domain.SortAsc {
		return []exp.OrderedExpression{goqu.I(col).Asc(), goqu.I("id").Asc()}
	}

	return []exp.OrderedExpression{goqu.I(col).Desc(), goqu.I("id").Desc()}
}

// contains builds a case-insensitive substring match against any of cols.
func contains(q string, cols ...string) exp.Expression {
	pattern := "%" + escapeLike(strings.TrimSpace(q)) + "%"
	ors := make([]exp.Expression, 0, len(cols))
	for _, c := range cols {
		ors = append(ors, goqu.I(c).ILike(pattern))
	}

	return goqu.Or(ors...)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// fetchPage counts the rows selected by ds and then loads the requested page
// into dest, which must be a pointer to a slice of row structs.
func fetchPage(ctx context.Context,
	ds *goqu.SelectDataset,
	page domain.PageRequest,
	order []exp.OrderedExpression,
	dest any) (int64, error) {
	total, err := ds.CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count rows: %w", err)
	}
	if total == 0 {
		return 0, nil
	}

	err = ds.Order(order...).
		Limit(uint(page.Size)).      //nolint: gosec
		Offset(uint(page.Offset())). //nolint: gosec
		ScanStructsContext(ctx, dest)
	if err != nil {
		return 0, fmt.Errorf("could not fetch rows: %w", err)
	}

	return total, nil
}

type groupCount struct {
	Key   string `db:"key"`
	Count int64  `db:"count"`
}

// countBy returns the number of rows of ds grouped by col.
func countBy(ctx context.Context, ds *goqu.SelectDataset, col string) (map[string]int64, error) {
	var rows []groupCount
	err := ds.Select(goqu.I(col).As("key"), goqu.COUNT("*").As("count")).
		GroupBy(goqu.I(col)).
		ScanStructsContext(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("could not count %s: %w", col, err)
	}

	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Key] = r.Count
	}

	return out, nil
}

func convertKeys[K ~string](in map[string]int64) map[K]int64 {
	out := make(map[K]int64, len(in))
	for k, v := range in {
		out[K(k)] = v
	}

	return out
}
