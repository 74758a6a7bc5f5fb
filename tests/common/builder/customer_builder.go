//go:build unit || e2e

package builder

import (
	"time"

	domcustomer "crm-service/internal/domain/customer"
	reqdto "crm-service/internal/handler/dto/request"
	"crm-service/internal/usecase/commands"
	"crm-service/internal/usecase/queries"
	"crm-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type CustomerBuilder struct {
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		Name:      "Alice Johnson",
		Email:     "alice@example.com",
		Phone:     "+1234567890",
		CreatedAt: time.Now(),
	}
}

func (b *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *CustomerBuilder) BuildDomain() (*domcustomer.Customer, error) {
	name, err := domcustomer.NewName(b.Name)
	if err != nil {
		return nil, err
	}
	email, err := domcustomer.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	phone, err := domcustomer.NewPhone(b.Phone)
	if err != nil {
		return nil, err
	}
	return domcustomer.NewCustomer(name, email, phone), nil
}

func (b *CustomerBuilder) BuildCommand() commands.CreateCustomerRequest {
	return commands.CreateCustomerRequest{
		Name:  b.Name,
		Email: b.Email,
		Phone: b.Phone,
	}
}

func (b *CustomerBuilder) BuildCreateRequestDTO() reqdto.CreateCustomerRequest {
	return reqdto.CreateCustomerRequest{
		Name:  b.Name,
		Email: b.Email,
		Phone: b.Phone,
	}
}

func (b *CustomerBuilder) BuildSnapshot() shared.CustomerSnapshot {
	snap := shared.CustomerSnapshot{
		ID:        uuid.New(),
		Name:      b.Name,
		Email:     b.Email,
		CreatedAt: b.CreatedAt,
	}
	if b.Phone != "" {
		p := b.Phone
		snap.Phone = &p
	}
	return snap
}

func (b *CustomerBuilder) BuildView() queries.CustomerView {
	view := queries.CustomerView{
		ID:        uuid.New(),
		Name:      b.Name,
		Email:     b.Email,
		CreatedAt: b.CreatedAt,
	}
	if b.Phone != "" {
		p := b.Phone
		view.Phone = &p
	}
	return view
}
