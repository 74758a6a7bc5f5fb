package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Customer errors
	ErrDuplicateEmail   = errors.New("email already exists")
	ErrCustomerNotFound = errors.New("customer not found")

	// Product errors
	ErrProductNotFound = errors.New("product not found")

	// Order errors
	ErrOrderNotFound = errors.New("order not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
