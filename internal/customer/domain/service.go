package domain

import "context"

// Service is the form-facing surface: Create is the submission callback of
// the multi-step customer form, List backs the directory view.
type Service interface {
	// Create validates the full form input and persists the customer.
	// Validation failures come back as validate.FieldErrors; other errors
	// are persistence failures and leave no record behind.
	Create(ctx context.Context, input FormInput) (Customer, error)
	List(ctx context.Context) ([]Customer, error)
}
