package queries

import (
	"context"
)

type SystemReadStore interface {
	Ping(ctx context.Context) (string, error)
}

// SystemQueries is the trivial probe used by the heartbeat job.
type SystemQueries interface {
	Ping(ctx context.Context) (string, error)
}

type systemQueriesImpl struct {
	store SystemReadStore
}

func NewSystemQueries(store SystemReadStore) SystemQueries {
	return &systemQueriesImpl{store: store}
}

func (q *systemQueriesImpl) Ping(ctx context.Context) (string, error) {
	return q.store.Ping(ctx)
}
