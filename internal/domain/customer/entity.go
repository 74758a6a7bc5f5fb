package customer

import (
	"time"

	"github.com/google/uuid"
)

// Customer entity. Immutable after creation within this core; deletion is an
// external administrative action.
type Customer struct {
	id        uuid.UUID
	name      Name
	email     Email
	phone     Phone
	createdAt time.Time
}

func NewCustomer(name Name, email Email, phone Phone) *Customer {
	return &Customer{
		id:    uuid.New(),
		name:  name,
		email: email,
		phone: phone,
	}
}

func ReconstructCustomer(id uuid.UUID, name Name, email Email, phone Phone, createdAt time.Time) *Customer {
	return &Customer{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		createdAt: createdAt,
	}
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) Name() Name           { return c.name }
func (c *Customer) Email() Email         { return c.email }
func (c *Customer) Phone() Phone         { return c.phone }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
