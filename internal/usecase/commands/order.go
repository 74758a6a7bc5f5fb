package commands

import (
	"context"
	"time"

	domorder "crm-service/internal/domain/order"
	"crm-service/internal/infra"
	"crm-service/internal/pkg/clock"
	"crm-service/internal/pkg/errs"
	"crm-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	CustomerID uuid.UUID
	ProductIDs []uuid.UUID
	// OrderDate defaults to the caller's clock when nil.
	OrderDate *time.Time
}

type CreateOrderResult struct {
	OrderID     uuid.UUID
	TotalAmount decimal.Decimal
	OrderDate   time.Time
	Status      domorder.Status
}

type OrderCommands interface {
	Create(ctx context.Context, req CreateOrderRequest) (*CreateOrderResult, error)
}

type orderCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOrderCommands(uow shared.UnitOfWork, clk clock.Clock) OrderCommands {
	return &orderCommandsImpl{uow: uow, clock: clk}
}

func (uc *orderCommandsImpl) Create(ctx context.Context, req CreateOrderRequest) (*CreateOrderResult, error) {
	if len(req.ProductIDs) == 0 {
		return nil, domorder.ErrEmptyProductList
	}

	reads := uc.uow.CommandReads()

	if _, err := reads.CustomerByID(ctx, req.CustomerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCustomerNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	products, err := reads.ProductsByIDs(ctx, req.ProductIDs)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	// One resolved row per requested id; any invalid (or duplicated) id in
	// the request shows up as a count mismatch.
	if len(products) != len(req.ProductIDs) {
		return nil, errs.ErrProductNotFound
	}

	lines := make([]domorder.Line, len(products))
	for i, p := range products {
		lines[i] = domorder.Line{ProductID: p.ID, Price: p.Price}
	}

	orderDate := uc.clock.Now()
	if req.OrderDate != nil {
		orderDate = *req.OrderDate
	}

	ord, err := domorder.NewOrder(req.CustomerID, lines, orderDate)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, derr := tx.Orders().Create(ctx, tx.DB(), ord)
		return derr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			// Customer or product deleted between resolution and insert.
			return nil, errs.Mark(err, errs.ErrCustomerNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &CreateOrderResult{
		OrderID:     ord.ID(),
		TotalAmount: ord.TotalAmount(),
		OrderDate:   ord.OrderDate(),
		Status:      ord.Status(),
	}, nil
}
