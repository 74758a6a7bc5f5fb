package product

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Product entity. Price and name are immutable within this core; stock is
// mutated only by the restock mutation through the store.
type Product struct {
	id        uuid.UUID
	name      string
	price     Price
	stock     Stock
	createdAt time.Time
}

func NewProduct(name string, price Price, stock Stock) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Product{
		id:    uuid.New(),
		name:  name,
		price: price,
		stock: stock,
	}, nil
}

func ReconstructProduct(id uuid.UUID, name string, price Price, stock Stock, createdAt time.Time) *Product {
	return &Product{
		id:        id,
		name:      name,
		price:     price,
		stock:     stock,
		createdAt: createdAt,
	}
}

func (p *Product) ID() uuid.UUID        { return p.id }
func (p *Product) Name() string         { return p.name }
func (p *Product) Price() Price         { return p.price }
func (p *Product) Stock() Stock         { return p.stock }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
