package domain

import "context"

// Service is the invoice-form surface.
type Service interface {
	// Create validates the submission, derives totals from the line items
	// and persists the invoice. Validation failures come back as
	// validate.FieldErrors.
	Create(ctx context.Context, input InvoiceInput) (Invoice, error)
	ListByCustomer(ctx context.Context, customerID string) ([]Invoice, error)
	ListAll(ctx context.Context) ([]Invoice, error)
}
