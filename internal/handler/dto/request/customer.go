package request

import (
	"crm-service/internal/usecase/commands"
)

type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone"`
}

type BulkCreateCustomersRequest struct {
	Customers []CreateCustomerRequest `json:"customers" binding:"required,dive"`
}

func (r *CreateCustomerRequest) ToCommand() commands.CreateCustomerRequest {
	return commands.CreateCustomerRequest{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
	}
}

func (r *BulkCreateCustomersRequest) ToCommands() []commands.CreateCustomerRequest {
	items := make([]commands.CreateCustomerRequest, len(r.Customers))
	for i, c := range r.Customers {
		items[i] = c.ToCommand()
	}
	return items
}
