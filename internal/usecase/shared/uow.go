package shared

import (
	"context"
	"time"

	"crm-service/internal/domain/customer"
	"crm-service/internal/domain/order"
	"crm-service/internal/domain/product"
	"crm-service/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Customers() CustomerRepository
	Products() ProductRepository
	Orders() OrderRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the write-side lookups: an advisory email-existence check
// and referential resolution for order creation.
type CommandReads interface {
	CustomerEmailExists(ctx context.Context, email string) (bool, error)
	CustomerByID(ctx context.Context, id uuid.UUID) (*CustomerSnapshot, error)
	ProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]ProductSnapshot, error)
}

// Minimal snapshots for command read operations
type CustomerSnapshot struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     *string
	CreatedAt time.Time
}

type ProductSnapshot struct {
	ID    uuid.UUID
	Name  string
	Price decimal.Decimal
	Stock int32
}

type RestockedProduct struct {
	ID    uuid.UUID
	Name  string
	Stock int32
}

type CustomerRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *customer.Customer) (uuid.UUID, error)
}

type ProductRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *product.Product) (uuid.UUID, error)
	// RestockBelow raises the stock of every product under threshold and
	// reports each one with its new stock level.
	RestockBelow(ctx context.Context, tx db.DBTX, threshold, increment int32) ([]RestockedProduct, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *order.Order) (uuid.UUID, error)
}
