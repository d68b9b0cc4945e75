package service

import (
	"context"
	"testing"
	"time"

	"github.com/smallbiznis/folio/internal/clock"
	"github.com/smallbiznis/folio/internal/invoice/domain"
	"github.com/smallbiznis/folio/internal/invoice/repository"
	"github.com/smallbiznis/folio/internal/refresh"
	"github.com/smallbiznis/folio/internal/storage"
	"github.com/smallbiznis/folio/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (domain.Service, *refresh.Signal) {
	t.Helper()
	fakeClock := clock.NewFakeClock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	repo := repository.New(storage.NewMemoryStore(), fakeClock)
	signal := refresh.NewSignal()
	svc := New(Params{Log: zap.NewNop(), Repo: repo, Signal: signal})
	return svc, signal
}

func input(customerID string) domain.InvoiceInput {
	return domain.InvoiceInput{
		CustomerID: customerID,
		Date:       "2024-03-01",
		DueDate:    "2024-03-31",
		Items: []domain.InvoiceItemInput{
			{Description: "Consulting", Quantity: 2, Price: 10, TaxRate: 10},
			{Description: "Parts", Quantity: 3, Price: 5, TaxRate: 0},
		},
		Status: domain.StatusUnpaid,
	}
}

func TestCreateInvoice(t *testing.T) {
	svc, signal := newTestService(t)
	ctx := context.Background()

	tokens, cancel := signal.Subscribe()
	defer cancel()

	invoice, err := svc.Create(ctx, input("cust-1"))
	require.NoError(t, err)
	assert.NotEmpty(t, invoice.ID)
	assert.Equal(t, 35.0, invoice.Subtotal)
	assert.Equal(t, 2.0, invoice.TaxTotal)
	assert.Equal(t, 37.0, invoice.GrandTotal)
	require.Len(t, invoice.Items, 2)
	assert.NotEmpty(t, invoice.Items[0].ID, "rows get synthetic ids")

	select {
	case token := <-tokens:
		assert.NotEmpty(t, token)
	default:
		t.Fatal("expected a refresh token after create")
	}
}

func TestCreateInvoiceValidationFailure(t *testing.T) {
	svc, _ := newTestService(t)

	in := input("cust-1")
	in.Items = nil
	_, err := svc.Create(context.Background(), in)
	require.Error(t, err)
	fieldErrs, ok := validate.AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, "Add at least one item", fieldErrs["items"])

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all, "failed submission must not create a record")
}

func TestCreateInvoiceDoesNotCheckCustomer(t *testing.T) {
	svc, _ := newTestService(t)

	// Referential integrity is deliberately not enforced here.
	invoice, err := svc.Create(context.Background(), input("no-such-customer"))
	require.NoError(t, err)
	assert.Equal(t, "no-such-customer", invoice.CustomerID)
}

func TestListByCustomer(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, input("cust-1"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, input("cust-2"))
	require.NoError(t, err)

	invoices, err := svc.ListByCustomer(ctx, "cust-1")
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, created.ID, invoices[0].ID)
}
