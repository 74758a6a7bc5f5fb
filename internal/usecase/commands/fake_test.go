//go:build unit

package commands_test

import (
	"context"

	"crm-service/internal/domain/customer"
	"crm-service/internal/domain/order"
	"crm-service/internal/domain/product"
	"crm-service/internal/infra"
	"crm-service/internal/infra/db"
	"crm-service/internal/pkg/errs"
	"crm-service/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeUoW is an in-memory unit of work: writes mutate maps, reads observe
// them, so command flows can be exercised without a database.
type fakeUoW struct {
	reads     *fakeReads
	customers *fakeCustomerRepo
	products  *fakeProductRepo
	orders    *fakeOrderRepo
	withinErr error
}

func newFakeUoW() *fakeUoW {
	reads := &fakeReads{
		emails:    map[string]bool{},
		customers: map[uuid.UUID]*shared.CustomerSnapshot{},
		products:  map[uuid.UUID]shared.ProductSnapshot{},
	}
	return &fakeUoW{
		reads:     reads,
		customers: &fakeCustomerRepo{reads: reads, index: map[string]bool{}},
		products:  &fakeProductRepo{},
		orders:    &fakeOrderRepo{},
	}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.withinErr != nil {
		return u.withinErr
	}
	return fn(ctx, u)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return u.reads
}

// Tx
func (u *fakeUoW) Customers() shared.CustomerRepository { return u.customers }
func (u *fakeUoW) Products() shared.ProductRepository   { return u.products }
func (u *fakeUoW) Orders() shared.OrderRepository       { return u.orders }
func (u *fakeUoW) Reads() shared.CommandReads           { return u.reads }
func (u *fakeUoW) DB() db.DBTX                          { return nil }

type fakeReads struct {
	emails      map[string]bool
	emailErr    error
	customers   map[uuid.UUID]*shared.CustomerSnapshot
	customerErr error
	products    map[uuid.UUID]shared.ProductSnapshot
	productsErr error
}

func (r *fakeReads) CustomerEmailExists(_ context.Context, email string) (bool, error) {
	if r.emailErr != nil {
		return false, r.emailErr
	}
	return r.emails[email], nil
}

func (r *fakeReads) CustomerByID(_ context.Context, id uuid.UUID) (*shared.CustomerSnapshot, error) {
	if r.customerErr != nil {
		return nil, r.customerErr
	}
	c, ok := r.customers[id]
	if !ok {
		return nil, infra.WrapRepoErr("customer not found", errs.New("no rows"), infra.KindNotFound)
	}
	return c, nil
}

// ProductsByIDs resolves each distinct id at most once, matching the store's
// ANY($1) semantics: unknown and duplicate ids shrink the result set.
func (r *fakeReads) ProductsByIDs(_ context.Context, ids []uuid.UUID) ([]shared.ProductSnapshot, error) {
	if r.productsErr != nil {
		return nil, r.productsErr
	}
	seen := map[uuid.UUID]bool{}
	var out []shared.ProductSnapshot
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if p, ok := r.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// fakeCustomerRepo keeps its own unique index separate from the advisory
// read view, so check-then-insert races can be simulated.
type fakeCustomerRepo struct {
	reads   *fakeReads
	index   map[string]bool
	created []*customer.Customer
	err     error
}

func (r *fakeCustomerRepo) Create(_ context.Context, _ db.DBTX, c *customer.Customer) (uuid.UUID, error) {
	if r.err != nil {
		return uuid.Nil, r.err
	}
	email := c.Email().Value()
	if r.index[email] {
		return uuid.Nil, infra.WrapRepoErr("insert customer", errs.New("unique violation"), infra.KindDuplicateKey)
	}
	r.created = append(r.created, c)
	r.index[email] = true
	r.reads.emails[email] = true
	return c.ID(), nil
}

type fakeProductRepo struct {
	created   []*product.Product
	restocked []shared.RestockedProduct
	err       error
}

func (r *fakeProductRepo) Create(_ context.Context, _ db.DBTX, p *product.Product) (uuid.UUID, error) {
	if r.err != nil {
		return uuid.Nil, r.err
	}
	r.created = append(r.created, p)
	return p.ID(), nil
}

func (r *fakeProductRepo) RestockBelow(_ context.Context, _ db.DBTX, threshold, increment int32) ([]shared.RestockedProduct, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.restocked, nil
}

type fakeOrderRepo struct {
	created []*order.Order
	err     error
}

func (r *fakeOrderRepo) Create(_ context.Context, _ db.DBTX, o *order.Order) (uuid.UUID, error) {
	if r.err != nil {
		return uuid.Nil, r.err
	}
	r.created = append(r.created, o)
	return o.ID(), nil
}
