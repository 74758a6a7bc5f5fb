package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyProductList = errors.New("at least one product must be selected")
	ErrNegativeTotal    = errors.New("order total cannot be negative")
	ErrInvalidStatus    = errors.New("invalid order status")
)

// Line is a priced product reference captured at order-creation time.
type Line struct {
	ProductID uuid.UUID
	Price     decimal.Decimal
}

// Order entity. The total is the sum of the referenced products' prices at
// creation time and is frozen afterwards; later price changes do not alter it.
type Order struct {
	id          uuid.UUID
	customerID  uuid.UUID
	lines       []Line
	orderDate   time.Time
	totalAmount decimal.Decimal
	status      Status
	createdAt   time.Time
}

func NewOrder(customerID uuid.UUID, lines []Line, orderDate time.Time) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyProductList
	}

	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Price)
	}
	if total.IsNegative() {
		return nil, ErrNegativeTotal
	}

	return &Order{
		id:          uuid.New(),
		customerID:  customerID,
		lines:       lines,
		orderDate:   orderDate,
		totalAmount: total,
		status:      StatusPending,
	}, nil
}

func ReconstructOrder(
	id, customerID uuid.UUID,
	lines []Line,
	orderDate time.Time,
	totalAmount decimal.Decimal,
	status Status,
	createdAt time.Time,
) *Order {
	return &Order{
		id:          id,
		customerID:  customerID,
		lines:       lines,
		orderDate:   orderDate,
		totalAmount: totalAmount,
		status:      status,
		createdAt:   createdAt,
	}
}

func (o *Order) IsPending() bool {
	return o.status == StatusPending
}

func (o *Order) ProductIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(o.lines))
	for i, l := range o.lines {
		ids[i] = l.ProductID
	}
	return ids
}

func (o *Order) ID() uuid.UUID                { return o.id }
func (o *Order) CustomerID() uuid.UUID        { return o.customerID }
func (o *Order) Lines() []Line                { return o.lines }
func (o *Order) OrderDate() time.Time         { return o.orderDate }
func (o *Order) TotalAmount() decimal.Decimal { return o.totalAmount }
func (o *Order) Status() Status               { return o.status }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
