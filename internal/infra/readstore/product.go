package readstore

import (
	"context"

	"crm-service/internal/infra"
	"crm-service/internal/infra/db"
	"crm-service/internal/pkg/pgconv"
	"crm-service/internal/usecase/queries"
	"crm-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ProductReadStore struct {
	db db.DBTX
}

func NewProductReadStore(dbtx db.DBTX) *ProductReadStore {
	return &ProductReadStore{db: dbtx}
}

func (r *ProductReadStore) FindLowStock(ctx context.Context, threshold int32) ([]*queries.ProductView, error) {
	const query = `
		SELECT id, name, price, stock
		FROM products
		WHERE stock < $1
		ORDER BY stock, name`

	rows, err := r.db.Query(ctx, query, threshold)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get low-stock products", err)
	}

	views, err := pgx.CollectRows(rows, scanProductView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan low-stock products", err)
	}
	return views, nil
}

// FindByIDs resolves the distinct requested ids; missing ids simply produce
// fewer rows, which the caller treats as a reference failure.
func (r *ProductReadStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]shared.ProductSnapshot, error) {
	const query = `
		SELECT id, name, price, stock
		FROM products
		WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get products by ids", err)
	}

	snaps, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (shared.ProductSnapshot, error) {
		var (
			snap  shared.ProductSnapshot
			price pgtype.Numeric
		)
		if err := row.Scan(&snap.ID, &snap.Name, &price, &snap.Stock); err != nil {
			return shared.ProductSnapshot{}, err
		}
		d, err := pgconv.DecimalFromNumeric(price)
		if err != nil {
			return shared.ProductSnapshot{}, err
		}
		snap.Price = d
		return snap, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan products by ids", err)
	}
	return snaps, nil
}

func scanProductView(row pgx.CollectableRow) (*queries.ProductView, error) {
	var (
		view  queries.ProductView
		price pgtype.Numeric
	)
	if err := row.Scan(&view.ID, &view.Name, &price, &view.Stock); err != nil {
		return nil, err
	}
	d, err := pgconv.DecimalFromNumeric(price)
	if err != nil {
		return nil, err
	}
	view.Price = d
	return &view, nil
}
