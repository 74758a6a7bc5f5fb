package queries

import (
	"context"

	"crm-service/internal/infra"
	"crm-service/internal/pkg/errs"

	"github.com/google/uuid"
)

type CustomerReadStore interface {
	Count(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
}

type CustomerQueries interface {
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
}

type customerQueriesImpl struct {
	store CustomerReadStore
}

func NewCustomerQueries(store CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{store: store}
}

func (q *customerQueriesImpl) Count(ctx context.Context) (int64, error) {
	return q.store.Count(ctx)
}

func (q *customerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCustomerNotFound
		}
		return nil, err
	}
	return view, nil
}
