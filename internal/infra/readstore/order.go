package readstore

import (
	"context"
	"strconv"
	"strings"

	"crm-service/internal/infra"
	"crm-service/internal/infra/db"
	"crm-service/internal/pkg/pgconv"
	"crm-service/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

// List returns orders with the owning customer's email. LEFT JOIN keeps rows
// whose customer reference is broken by external deletion; their email comes
// back blank and consumers decide how to handle them.
func (r *OrderReadStore) List(ctx context.Context, filters queries.OrderFilters) ([]*queries.OrderView, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT o.id, o.customer_id, COALESCE(c.email, ''), o.order_date, o.total_amount, o.status
		FROM orders o
		LEFT JOIN customers c ON c.id = o.customer_id`)

	var (
		conds []string
		args  []any
	)
	if filters.Status != nil {
		args = append(args, *filters.Status)
		conds = append(conds, "o.status = $"+strconv.Itoa(len(args)))
	}
	if filters.From != nil {
		args = append(args, *filters.From)
		conds = append(conds, "o.order_date >= $"+strconv.Itoa(len(args)))
	}
	if filters.To != nil {
		args = append(args, *filters.To)
		conds = append(conds, "o.order_date <= $"+strconv.Itoa(len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY o.order_date, o.id")

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}

	views, err := pgx.CollectRows(rows, scanOrderView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan orders", err)
	}
	return views, nil
}

// RevenueSummary treats NULL total_amount as zero; rows written by this core
// always carry a total but externally administered rows may not.
func (r *OrderReadStore) RevenueSummary(ctx context.Context) (*queries.RevenueSummary, error) {
	const query = `
		SELECT COUNT(*), COALESCE(SUM(COALESCE(total_amount, 0)), 0)
		FROM orders`

	var (
		summary queries.RevenueSummary
		revenue pgtype.Numeric
	)
	err := r.db.QueryRow(ctx, query).Scan(&summary.TotalOrders, &revenue)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to compute revenue summary", err)
	}
	d, err := pgconv.DecimalFromNumeric(revenue)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode revenue", err)
	}
	summary.TotalRevenue = d
	return &summary, nil
}

func scanOrderView(row pgx.CollectableRow) (*queries.OrderView, error) {
	var (
		view      queries.OrderView
		orderDate pgtype.Timestamptz
		total     pgtype.Numeric
	)
	if err := row.Scan(&view.ID, &view.CustomerID, &view.CustomerEmail, &orderDate, &total, &view.Status); err != nil {
		return nil, err
	}
	view.OrderDate = pgconv.TimeFromPgtype(orderDate)
	d, err := pgconv.DecimalFromNumeric(total)
	if err != nil {
		return nil, err
	}
	view.TotalAmount = d
	return &view, nil
}
