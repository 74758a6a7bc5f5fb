package response

import (
	"crm-service/internal/usecase/commands"
	"crm-service/internal/usecase/shared"
)

type CustomerResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

type CreateCustomerResponse struct {
	Customer CustomerResponse `json:"customer"`
	Message  string           `json:"message"`
}

type BulkCreateCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	Errors    []string           `json:"errors"`
}

type CustomerCountResponse struct {
	TotalCustomers int64 `json:"total_customers"`
}

func FromCustomerSnapshot(s shared.CustomerSnapshot) CustomerResponse {
	return CustomerResponse{
		ID:    s.ID.String(),
		Name:  s.Name,
		Email: s.Email,
		Phone: s.Phone,
	}
}

func FromCreateCustomerResult(r *commands.CreateCustomerResult) *CreateCustomerResponse {
	return &CreateCustomerResponse{
		Customer: FromCustomerSnapshot(r.Customer),
		Message:  r.Message,
	}
}

func FromBulkCreateResult(r *commands.BulkCreateResult) *BulkCreateCustomersResponse {
	resp := &BulkCreateCustomersResponse{
		Customers: make([]CustomerResponse, len(r.Customers)),
		Errors:    r.Errors,
	}
	if resp.Errors == nil {
		resp.Errors = []string{}
	}
	for i, c := range r.Customers {
		resp.Customers[i] = FromCustomerSnapshot(c)
	}
	return resp
}
