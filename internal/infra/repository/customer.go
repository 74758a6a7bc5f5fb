package repository

import (
	"context"

	"crm-service/internal/domain/customer"
	"crm-service/internal/infra/db"

	"github.com/google/uuid"
)

type CustomerRepository struct{}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

func (r *CustomerRepository) Create(ctx context.Context, tx db.DBTX, c *customer.Customer) (uuid.UUID, error) {
	const query = `
		INSERT INTO customers (id, name, email, phone)
		VALUES ($1, $2, $3, NULLIF($4, ''))
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		c.ID(),
		c.Name().Value(),
		c.Email().Value(),
		c.Phone().Value(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create customer", err)
	}
	return id, nil
}
