package repository

import (
	"context"
	"testing"
	"time"

	"github.com/smallbiznis/folio/internal/clock"
	"github.com/smallbiznis/folio/internal/invoice/domain"
	"github.com/smallbiznis/folio/internal/storage"
)

func newTestRepo(t *testing.T) (domain.Repository, *clock.FakeClock) {
	t.Helper()
	fakeClock := clock.NewFakeClock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	return New(storage.NewMemoryStore(), fakeClock), fakeClock
}

func record(customerID string) domain.CreateInvoice {
	return domain.CreateInvoice{
		CustomerID: customerID,
		Date:       "2024-03-01",
		DueDate:    "2024-03-31",
		Items: []domain.InvoiceItem{
			{ID: "row-1", Description: "Consulting", Quantity: 2, Price: 10, TaxRate: 10},
		},
		Subtotal:   20,
		TaxTotal:   2,
		GrandTotal: 22,
		Status:     domain.StatusUnpaid,
	}
}

func TestAddRoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	stored, err := repo.Add(ctx, record("cust-1"))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if stored.ID == "" {
		t.Fatal("expected generated id")
	}
	if stored.CreatedAt.IsZero() {
		t.Fatal("expected createdAt to be set")
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected one invoice, got %d", len(all))
	}
	if all[0].GrandTotal != 22 || all[0].Status != domain.StatusUnpaid {
		t.Fatalf("unexpected stored invoice %+v", all[0])
	}
}

func TestGetByCustomer(t *testing.T) {
	repo, fakeClock := newTestRepo(t)
	ctx := context.Background()

	first, _ := repo.Add(ctx, record("cust-1"))
	fakeClock.Advance(time.Minute)
	second, _ := repo.Add(ctx, record("cust-1"))
	fakeClock.Advance(time.Minute)
	if _, err := repo.Add(ctx, record("cust-2")); err != nil {
		t.Fatalf("add: %v", err)
	}

	invoices, err := repo.GetByCustomer(ctx, "cust-1")
	if err != nil {
		t.Fatalf("getByCustomer: %v", err)
	}
	if len(invoices) != 2 {
		t.Fatalf("expected two invoices for cust-1, got %d", len(invoices))
	}
	if invoices[0].ID != second.ID || invoices[1].ID != first.ID {
		t.Fatalf("expected newest first [%s %s], got [%s %s]",
			second.ID, first.ID, invoices[0].ID, invoices[1].ID)
	}
	for _, invoice := range invoices {
		if invoice.CustomerID != "cust-1" {
			t.Fatalf("unexpected customer %q", invoice.CustomerID)
		}
	}
}

func TestGetByCustomerNoMatches(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.Add(ctx, record("cust-1")); err != nil {
		t.Fatalf("add: %v", err)
	}
	invoices, err := repo.GetByCustomer(ctx, "cust-unknown")
	if err != nil {
		t.Fatalf("getByCustomer: %v", err)
	}
	if len(invoices) != 0 {
		t.Fatalf("expected empty sequence, got %d", len(invoices))
	}
}

func TestClear(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.Add(ctx, record("cust-1")); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty after clear, got %d", len(all))
	}
}
