//go:build unit || e2e

package builder

import (
	"time"

	domorder "crm-service/internal/domain/order"
	reqdto "crm-service/internal/handler/dto/request"
	"crm-service/internal/usecase/commands"
	"crm-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderBuilder struct {
	CustomerID    uuid.UUID
	CustomerEmail string
	Lines         []domorder.Line
	OrderDate     time.Time
	Status        domorder.Status
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		CustomerID:    uuid.New(),
		CustomerEmail: "alice@example.com",
		Lines: []domorder.Line{
			{ProductID: uuid.New(), Price: decimal.RequireFromString("999.99")},
			{ProductID: uuid.New(), Price: decimal.RequireFromString("499.99")},
		},
		OrderDate: time.Now(),
		Status:    domorder.StatusPending,
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *OrderBuilder) BuildDomain() (*domorder.Order, error) {
	return domorder.NewOrder(b.CustomerID, b.Lines, b.OrderDate)
}

func (b *OrderBuilder) BuildCommand() commands.CreateOrderRequest {
	ids := make([]uuid.UUID, len(b.Lines))
	for i, l := range b.Lines {
		ids[i] = l.ProductID
	}
	date := b.OrderDate
	return commands.CreateOrderRequest{
		CustomerID: b.CustomerID,
		ProductIDs: ids,
		OrderDate:  &date,
	}
}

func (b *OrderBuilder) BuildCreateRequestDTO() reqdto.CreateOrderRequest {
	ids := make([]uuid.UUID, len(b.Lines))
	for i, l := range b.Lines {
		ids[i] = l.ProductID
	}
	date := b.OrderDate
	return reqdto.CreateOrderRequest{
		CustomerID: b.CustomerID,
		ProductIDs: ids,
		OrderDate:  &date,
	}
}

func (b *OrderBuilder) BuildView() queries.OrderView {
	total := decimal.Zero
	for _, l := range b.Lines {
		total = total.Add(l.Price)
	}
	return queries.OrderView{
		ID:            uuid.New(),
		CustomerID:    b.CustomerID,
		CustomerEmail: b.CustomerEmail,
		OrderDate:     b.OrderDate,
		TotalAmount:   total,
		Status:        b.Status.String(),
	}
}
