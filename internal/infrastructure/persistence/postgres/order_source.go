package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"sales_analytics/internal/domain/order"
	"sales_analytics/internal/domain/repository"
)

const undefinedTable = "42P01"

// Querier is the subset of pgxpool.Pool used by OrderSource.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// OrderSource reads seed records from an orders table. It never writes.
type OrderSource struct {
	db    Querier
	table string
}

var _ repository.SeedSource = (*OrderSource)(nil)

func NewOrderSource(db Querier, table string) *OrderSource {
	if table == "" {
		table = "orders"
	}
	return &OrderSource{db: db, table: table}
}

func (s *OrderSource) Name() string {
	return "postgres:" + s.table
}

func (s *OrderSource) Records(ctx context.Context) ([]map[string]any, error) {
	query := fmt.Sprintf(`
		SELECT order_id, region, category, units, revenue, order_ts
		FROM %s
		ORDER BY order_ts, order_id;
	`, pgx.Identifier{s.table}.Sanitize())

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	records := make([]map[string]any, 0)
	for rows.Next() {
		var row orderRow
		if err := rows.Scan(&row.OrderID, &row.Region, &row.Category, &row.Units, &row.Revenue, &row.OrderTS); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		records = append(records, row.record())
	}
	if err := rows.Err(); err != nil {
		return nil, s.mapError(err)
	}
	return records, nil
}

func (s *OrderSource) mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == undefinedTable {
		return &repository.NotFoundError{Source: s.Name(), Err: err}
	}
	return fmt.Errorf("query %s: %w", s.Name(), err)
}

type orderRow struct {
	OrderID  string
	Region   string
	Category string
	Units    int64
	Revenue  float64
	OrderTS  time.Time
}

func (r orderRow) record() map[string]any {
	return map[string]any{
		order.FieldOrderID:  r.OrderID,
		order.FieldRegion:   r.Region,
		order.FieldCategory: r.Category,
		order.FieldUnits:    r.Units,
		order.FieldRevenue:  r.Revenue,
		order.FieldOrderTS:  order.FormatTimestamp(r.OrderTS.UTC()),
	}
}
