package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"github.com/google/uuid"
	"github.com/smallbiznis/folio/internal/clock"
	"github.com/smallbiznis/folio/internal/invoice/domain"
	"github.com/smallbiznis/folio/internal/storage"
)

const storeNamespace = "invoices"

var documentKey = storage.Key(storeNamespace, storeNamespace)

type repo struct {
	store storage.Store
	clock clock.Clock
}

func New(store storage.Store, clk clock.Clock) domain.Repository {
	return &repo{store: store, clock: clk}
}

func (r *repo) readAll(ctx context.Context) (map[string]domain.Invoice, error) {
	raw, err := r.store.Get(ctx, documentKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return map[string]domain.Invoice{}, nil
	}
	if err != nil {
		return nil, err
	}
	invoices := map[string]domain.Invoice{}
	if err := json.Unmarshal(raw, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *repo) writeAll(ctx context.Context, invoices map[string]domain.Invoice) error {
	raw, err := json.Marshal(invoices)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, documentKey, raw)
}

func (r *repo) Add(ctx context.Context, record domain.CreateInvoice) (domain.Invoice, error) {
	invoice := domain.Invoice{
		ID:         uuid.NewString(),
		CustomerID: record.CustomerID,
		Date:       record.Date,
		DueDate:    record.DueDate,
		Items:      record.Items,
		Subtotal:   record.Subtotal,
		TaxTotal:   record.TaxTotal,
		GrandTotal: record.GrandTotal,
		Status:     record.Status,
		CreatedAt:  r.clock.Now().UTC(),
	}

	byID, err := r.readAll(ctx)
	if err != nil {
		return domain.Invoice{}, err
	}
	byID[invoice.ID] = invoice
	if err := r.writeAll(ctx, byID); err != nil {
		return domain.Invoice{}, err
	}
	return invoice, nil
}

func (r *repo) GetByCustomer(ctx context.Context, customerID string) ([]domain.Invoice, error) {
	byID, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	invoices := make([]domain.Invoice, 0, len(byID))
	for _, invoice := range byID {
		if invoice.CustomerID == customerID {
			invoices = append(invoices, invoice)
		}
	}
	sort.Slice(invoices, func(i, j int) bool {
		if !invoices[i].CreatedAt.Equal(invoices[j].CreatedAt) {
			return invoices[i].CreatedAt.After(invoices[j].CreatedAt)
		}
		return invoices[i].ID < invoices[j].ID
	})
	return invoices, nil
}

func (r *repo) All(ctx context.Context) ([]domain.Invoice, error) {
	byID, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	invoices := make([]domain.Invoice, 0, len(byID))
	for _, invoice := range byID {
		invoices = append(invoices, invoice)
	}
	return invoices, nil
}

func (r *repo) Clear(ctx context.Context) error {
	return r.writeAll(ctx, map[string]domain.Invoice{})
}
