package commands

import (
	"context"
	"errors"
	"fmt"

	domcustomer "crm-service/internal/domain/customer"
	"crm-service/internal/infra"
	"crm-service/internal/pkg/errs"
	"crm-service/internal/usecase/shared"
)

const customerCreatedMessage = "Customer created successfully!"

type CreateCustomerRequest struct {
	Name  string
	Email string
	Phone string
}

type CreateCustomerResult struct {
	Customer shared.CustomerSnapshot
	Message  string
}

// BulkCreateResult reports per-item outcomes: every input item lands either
// in Customers or as one entry in Errors, in input order.
type BulkCreateResult struct {
	Customers []shared.CustomerSnapshot
	Errors    []string
}

type CustomerCommands interface {
	Create(ctx context.Context, req CreateCustomerRequest) (*CreateCustomerResult, error)
	// BulkCreate is best-effort per item: each success commits independently
	// and failures only append to the error list. It never fails as a whole.
	BulkCreate(ctx context.Context, items []CreateCustomerRequest) *BulkCreateResult
}

type customerCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCustomerCommands(uow shared.UnitOfWork) CustomerCommands {
	return &customerCommandsImpl{uow: uow}
}

func (uc *customerCommandsImpl) Create(ctx context.Context, req CreateCustomerRequest) (*CreateCustomerResult, error) {
	cust, err := uc.createOne(ctx, req)
	if err != nil {
		return nil, err
	}
	return &CreateCustomerResult{Customer: *cust, Message: customerCreatedMessage}, nil
}

func (uc *customerCommandsImpl) BulkCreate(ctx context.Context, items []CreateCustomerRequest) *BulkCreateResult {
	result := &BulkCreateResult{}

	for _, item := range items {
		cust, err := uc.createOne(ctx, item)
		if err != nil {
			result.Errors = append(result.Errors, bulkErrorString(item, err))
			continue
		}
		result.Customers = append(result.Customers, *cust)
	}

	return result
}

func (uc *customerCommandsImpl) createOne(ctx context.Context, req CreateCustomerRequest) (*shared.CustomerSnapshot, error) {
	name, err := domcustomer.NewName(req.Name)
	if err != nil {
		return nil, err
	}
	email, err := domcustomer.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}
	phone, err := domcustomer.NewPhone(req.Phone)
	if err != nil {
		return nil, err
	}

	// Advisory pre-check only; the store's unique index is the authority and
	// closes the check-then-insert race.
	exists, err := uc.uow.CommandReads().CustomerEmailExists(ctx, email.Value())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if exists {
		return nil, errs.ErrDuplicateEmail
	}

	cust := domcustomer.NewCustomer(name, email, phone)

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, derr := tx.Customers().Create(ctx, tx.DB(), cust)
		return derr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// A concurrent creation won the race after the advisory check.
			return nil, errs.Mark(err, errs.ErrDuplicateEmail)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	snap := shared.CustomerSnapshot{
		ID:    cust.ID(),
		Name:  name.Value(),
		Email: email.Value(),
	}
	if !phone.IsEmpty() {
		p := phone.Value()
		snap.Phone = &p
	}
	return &snap, nil
}

func bulkErrorString(item CreateCustomerRequest, err error) string {
	switch {
	case errors.Is(err, errs.ErrDuplicateEmail):
		return fmt.Sprintf("Email %s already exists", item.Email)
	case errors.Is(err, domcustomer.ErrInvalidPhoneFormat):
		return fmt.Sprintf("Invalid phone format for %s", item.Name)
	default:
		return fmt.Sprintf("Failed to create customer %s: %v", item.Email, err)
	}
}
