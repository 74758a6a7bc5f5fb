package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerView represents read-optimized customer data
type CustomerView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderView represents read-optimized order data with the owning customer's
// email joined in. CustomerEmail may be blank for externally damaged rows;
// consumers skip those rather than failing.
type OrderView struct {
	ID            uuid.UUID       `json:"id"`
	CustomerID    uuid.UUID       `json:"customer_id"`
	CustomerEmail string          `json:"customer_email"`
	OrderDate     time.Time       `json:"order_date"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status"`
}

// ProductView represents read-optimized product data
type ProductView struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int32           `json:"stock"`
}

// RevenueSummary aggregates the order book: count plus sum of total_amount
// with NULL treated as zero.
type RevenueSummary struct {
	TotalOrders  int64           `json:"total_orders"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// OrderFilters narrows order listings. Nil fields are unfiltered; From/To are
// inclusive bounds on order_date.
type OrderFilters struct {
	Status *string
	From   *time.Time
	To     *time.Time
}
