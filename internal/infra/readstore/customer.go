package readstore

import (
	"context"

	"crm-service/internal/infra"
	"crm-service/internal/infra/db"
	"crm-service/internal/pkg/pgconv"
	"crm-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CustomerReadStore struct {
	db db.DBTX
}

func NewCustomerReadStore(dbtx db.DBTX) *CustomerReadStore {
	return &CustomerReadStore{db: dbtx}
}

func (r *CustomerReadStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count customers", err)
	}
	return count, nil
}

func (r *CustomerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	const query = `
		SELECT id, name, email, phone, created_at
		FROM customers
		WHERE id = $1`

	var (
		view      queries.CustomerView
		phone     pgtype.Text
		createdAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, query, id).Scan(&view.ID, &view.Name, &view.Email, &phone, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get customer by id", err)
	}
	view.Phone = pgconv.StringPtrFromPgtype(phone)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}

// EmailExists is the advisory uniqueness pre-check; exact, case-sensitive match.
func (r *CustomerReadStore) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check email existence", err)
	}
	return exists, nil
}
