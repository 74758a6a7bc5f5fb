package repository

import (
	"context"

	"crm-service/internal/domain/order"
	"crm-service/internal/infra/db"
	"crm-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Create persists the order row and its product associations. Callers run it
// inside a transaction so a failed association insert rolls back the order.
func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.Order) (uuid.UUID, error) {
	const orderQuery = `
		INSERT INTO orders (id, customer_id, order_date, total_amount, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, orderQuery,
		o.ID(),
		o.CustomerID(),
		pgconv.TimeToPgtype(o.OrderDate()),
		pgconv.DecimalToNumeric(o.TotalAmount()),
		o.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create order", err)
	}

	const lineQuery = `
		INSERT INTO order_products (order_id, product_id)
		VALUES ($1, $2)`

	for _, productID := range o.ProductIDs() {
		if _, err := tx.Exec(ctx, lineQuery, id, productID); err != nil {
			return uuid.Nil, wrapWriteErr("failed to create order product association", err)
		}
	}

	return id, nil
}
