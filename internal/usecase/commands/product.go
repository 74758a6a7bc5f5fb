package commands

import (
	"context"

	domproduct "crm-service/internal/domain/product"
	"crm-service/internal/pkg/errs"
	"crm-service/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	Name  string
	Price decimal.Decimal
	Stock int32
}

type CreateProductResult struct {
	Product shared.ProductSnapshot
}

type ProductCommands interface {
	Create(ctx context.Context, req CreateProductRequest) (*CreateProductResult, error)
}

type productCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewProductCommands(uow shared.UnitOfWork) ProductCommands {
	return &productCommandsImpl{uow: uow}
}

func (uc *productCommandsImpl) Create(ctx context.Context, req CreateProductRequest) (*CreateProductResult, error) {
	price, err := domproduct.NewPrice(req.Price)
	if err != nil {
		return nil, err
	}
	stock, err := domproduct.NewStock(req.Stock)
	if err != nil {
		return nil, err
	}

	prod, err := domproduct.NewProduct(req.Name, price, stock)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, derr := tx.Products().Create(ctx, tx.DB(), prod)
		return derr
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &CreateProductResult{
		Product: shared.ProductSnapshot{
			ID:    prod.ID(),
			Name:  prod.Name(),
			Price: price.Value(),
			Stock: stock.Value(),
		},
	}, nil
}
