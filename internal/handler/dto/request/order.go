package request

import (
	"time"

	"crm-service/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateOrderRequest struct {
	CustomerID uuid.UUID `json:"customer_id" binding:"required"`
	// Unbound so an empty list reaches the domain's EmptyProductList check.
	ProductIDs []uuid.UUID `json:"product_ids"`
	OrderDate  *time.Time  `json:"order_date"`
}

func (r *CreateOrderRequest) ToCommand() commands.CreateOrderRequest {
	return commands.CreateOrderRequest{
		CustomerID: r.CustomerID,
		ProductIDs: r.ProductIDs,
		OrderDate:  r.OrderDate,
	}
}
