//go:build unit || e2e

package builder

import (
	domproduct "crm-service/internal/domain/product"
	reqdto "crm-service/internal/handler/dto/request"
	"crm-service/internal/usecase/commands"
	"crm-service/internal/usecase/queries"
	"crm-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductBuilder struct {
	Name  string
	Price decimal.Decimal
	Stock int32
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		Name:  "Laptop",
		Price: decimal.RequireFromString("999.99"),
		Stock: 5,
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ProductBuilder) BuildDomain() (*domproduct.Product, error) {
	price, err := domproduct.NewPrice(b.Price)
	if err != nil {
		return nil, err
	}
	stock, err := domproduct.NewStock(b.Stock)
	if err != nil {
		return nil, err
	}
	return domproduct.NewProduct(b.Name, price, stock)
}

func (b *ProductBuilder) BuildCommand() commands.CreateProductRequest {
	return commands.CreateProductRequest{
		Name:  b.Name,
		Price: b.Price,
		Stock: b.Stock,
	}
}

func (b *ProductBuilder) BuildCreateRequestDTO() reqdto.CreateProductRequest {
	return reqdto.CreateProductRequest{
		Name:  b.Name,
		Price: b.Price,
		Stock: b.Stock,
	}
}

func (b *ProductBuilder) BuildSnapshot() shared.ProductSnapshot {
	return shared.ProductSnapshot{
		ID:    uuid.New(),
		Name:  b.Name,
		Price: b.Price,
		Stock: b.Stock,
	}
}

func (b *ProductBuilder) BuildView() queries.ProductView {
	return queries.ProductView{
		ID:    uuid.New(),
		Name:  b.Name,
		Price: b.Price,
		Stock: b.Stock,
	}
}
