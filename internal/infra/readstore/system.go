package readstore

import (
	"context"

	"crm-service/internal/infra"
	"crm-service/internal/infra/db"
)

type SystemReadStore struct {
	db db.DBTX
}

func NewSystemReadStore(dbtx db.DBTX) *SystemReadStore {
	return &SystemReadStore{db: dbtx}
}

// Ping is the heartbeat probe: a round-trip through the store that returns a
// greeting when the data layer answers.
func (r *SystemReadStore) Ping(ctx context.Context) (string, error) {
	var greeting string
	if err := r.db.QueryRow(ctx, `SELECT 'Hello, CRM!'`).Scan(&greeting); err != nil {
		return "", infra.WrapRepoErr("failed to ping data layer", err)
	}
	return greeting, nil
}
