package queries

import (
	"context"
)

type OrderReadStore interface {
	List(ctx context.Context, filters OrderFilters) ([]*OrderView, error)
	RevenueSummary(ctx context.Context) (*RevenueSummary, error)
}

type OrderQueries interface {
	List(ctx context.Context, filters OrderFilters) ([]*OrderView, error)
	RevenueSummary(ctx context.Context) (*RevenueSummary, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) List(ctx context.Context, filters OrderFilters) ([]*OrderView, error) {
	return q.store.List(ctx, filters)
}

func (q *orderQueriesImpl) RevenueSummary(ctx context.Context) (*RevenueSummary, error) {
	return q.store.RevenueSummary(ctx)
}
