package commands

import (
	"context"
	"fmt"

	"crm-service/internal/pkg/errs"
	"crm-service/internal/usecase/shared"
)

// RestockPolicy holds the replenishment rule applied behind the mutation:
// every product under Threshold is raised by Increment.
type RestockPolicy struct {
	Threshold int32
	Increment int32
}

type RestockResult struct {
	Success         bool
	Message         string
	UpdatedProducts []shared.RestockedProduct
}

type RestockCommands interface {
	Restock(ctx context.Context) (*RestockResult, error)
}

type restockCommandsImpl struct {
	uow    shared.UnitOfWork
	policy RestockPolicy
}

func NewRestockCommands(uow shared.UnitOfWork, policy RestockPolicy) RestockCommands {
	return &restockCommandsImpl{uow: uow, policy: policy}
}

func (uc *restockCommandsImpl) Restock(ctx context.Context) (*RestockResult, error) {
	var updated []shared.RestockedProduct

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rows, derr := tx.Products().RestockBelow(ctx, tx.DB(), uc.policy.Threshold, uc.policy.Increment)
		if derr != nil {
			return derr
		}
		updated = rows
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &RestockResult{
		Success:         true,
		Message:         fmt.Sprintf("Restocked %d low-stock products", len(updated)),
		UpdatedProducts: updated,
	}, nil
}
