package domain

import (
	"context"
	"errors"
)

// ErrNotFound is returned by FindByEmail when no customer matches.
var ErrNotFound = errors.New("not_found")

// Repository owns the persisted customer map. Records are created once and
// never updated or individually deleted; Clear wipes the whole map.
type Repository interface {
	// GetAll returns every customer, most recently created first.
	GetAll(ctx context.Context) ([]Customer, error)
	// FindByEmail returns the first customer in GetAll order whose email
	// case-insensitively equals the argument, or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*Customer, error)
	// Add generates the id and createdAt, persists the record and returns
	// the stored customer.
	Add(ctx context.Context, record CreateCustomer) (Customer, error)
	// Clear removes all stored customers.
	Clear(ctx context.Context) error
}
