package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/smallbiznis/folio/internal/clock"
	"github.com/smallbiznis/folio/internal/customer/domain"
	"github.com/smallbiznis/folio/internal/storage"
)

const storeNamespace = "customers"

// documentKey is the single fixed key holding the whole customer map.
var documentKey = storage.Key(storeNamespace, storeNamespace)

type repo struct {
	store storage.Store
	clock clock.Clock
}

func New(store storage.Store, clk clock.Clock) domain.Repository {
	return &repo{store: store, clock: clk}
}

// readAll decodes the persisted map. A missing document means no customers
// yet, not an error.
func (r *repo) readAll(ctx context.Context) (map[string]domain.Customer, error) {
	raw, err := r.store.Get(ctx, documentKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return map[string]domain.Customer{}, nil
	}
	if err != nil {
		return nil, err
	}
	customers := map[string]domain.Customer{}
	if err := json.Unmarshal(raw, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *repo) writeAll(ctx context.Context, customers map[string]domain.Customer) error {
	raw, err := json.Marshal(customers)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, documentKey, raw)
}

func (r *repo) GetAll(ctx context.Context) ([]domain.Customer, error) {
	byID, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	customers := make([]domain.Customer, 0, len(byID))
	for _, customer := range byID {
		customers = append(customers, customer)
	}
	sort.Slice(customers, func(i, j int) bool {
		if !customers[i].CreatedAt.Equal(customers[j].CreatedAt) {
			return customers[i].CreatedAt.After(customers[j].CreatedAt)
		}
		// Stable tie-break so repeated reads agree on an order.
		return customers[i].ID < customers[j].ID
	})
	return customers, nil
}

func (r *repo) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	customers, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if strings.EqualFold(customers[i].Email, email) {
			return &customers[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *repo) Add(ctx context.Context, record domain.CreateCustomer) (domain.Customer, error) {
	customer := domain.Customer{
		ID:              uuid.NewString(),
		Name:            record.Name,
		Email:           record.Email,
		Phone:           record.Phone,
		BillingAddress:  record.BillingAddress,
		ShippingAddress: record.ShippingAddress,
		CreatedAt:       r.clock.Now().UTC(),
	}

	byID, err := r.readAll(ctx)
	if err != nil {
		return domain.Customer{}, err
	}
	byID[customer.ID] = customer
	if err := r.writeAll(ctx, byID); err != nil {
		return domain.Customer{}, err
	}
	return customer, nil
}

func (r *repo) Clear(ctx context.Context) error {
	return r.writeAll(ctx, map[string]domain.Customer{})
}
