package queries

import (
	"context"
)

type ProductReadStore interface {
	FindLowStock(ctx context.Context, threshold int32) ([]*ProductView, error)
}

type ProductQueries interface {
	LowStock(ctx context.Context, threshold int32) ([]*ProductView, error)
}

type productQueriesImpl struct {
	store ProductReadStore
}

func NewProductQueries(store ProductReadStore) ProductQueries {
	return &productQueriesImpl{store: store}
}

func (q *productQueriesImpl) LowStock(ctx context.Context, threshold int32) ([]*ProductView, error) {
	return q.store.FindLowStock(ctx, threshold)
}
