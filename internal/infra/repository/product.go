package repository

import (
	"context"

	"crm-service/internal/domain/product"
	"crm-service/internal/infra"
	"crm-service/internal/infra/db"
	"crm-service/internal/pkg/pgconv"
	"crm-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func (r *ProductRepository) Create(ctx context.Context, tx db.DBTX, p *product.Product) (uuid.UUID, error) {
	const query = `
		INSERT INTO products (id, name, price, stock)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		p.ID(),
		p.Name(),
		pgconv.DecimalToNumeric(p.Price().Value()),
		p.Stock().Value(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create product", err)
	}
	return id, nil
}

// RestockBelow applies the replenishment policy in a single statement so
// concurrent runs never double-apply to the same row.
func (r *ProductRepository) RestockBelow(ctx context.Context, tx db.DBTX, threshold, increment int32) ([]shared.RestockedProduct, error) {
	const query = `
		UPDATE products
		SET stock = stock + $2
		WHERE stock < $1
		RETURNING id, name, stock`

	rows, err := tx.Query(ctx, query, threshold, increment)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to restock low-stock products", err)
	}

	updated, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (shared.RestockedProduct, error) {
		var p shared.RestockedProduct
		err := row.Scan(&p.ID, &p.Name, &p.Stock)
		return p, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan restocked products", err)
	}
	return updated, nil
}
