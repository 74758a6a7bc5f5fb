package request

import (
	"crm-service/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	Name string `json:"name" binding:"required"`
	// Price sign/zero checks live in the domain so the caller gets the
	// classified error, not a binding failure.
	Price decimal.Decimal `json:"price"`
	Stock int32           `json:"stock"`
}

func (r *CreateProductRequest) ToCommand() commands.CreateProductRequest {
	return commands.CreateProductRequest{
		Name:  r.Name,
		Price: r.Price,
		Stock: r.Stock,
	}
}
