package domain

import "context"

// Repository owns the persisted invoice map. It does not verify that
// CustomerID references an existing customer; that gap is the caller's to
// mind.
type Repository interface {
	// Add generates the id and createdAt, persists the record and returns
	// the stored invoice.
	Add(ctx context.Context, record CreateInvoice) (Invoice, error)
	// GetByCustomer returns the customer's invoices, newest first.
	GetByCustomer(ctx context.Context, customerID string) ([]Invoice, error)
	// All returns every stored invoice in unspecified order.
	All(ctx context.Context) ([]Invoice, error)
	// Clear removes all stored invoices.
	Clear(ctx context.Context) error
}
