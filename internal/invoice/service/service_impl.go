package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/smallbiznis/folio/internal/invoice/domain"
	"github.com/smallbiznis/folio/internal/refresh"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log    *zap.Logger
	Repo   domain.Repository
	Signal *refresh.Signal
}

type Service struct {
	log    *zap.Logger
	repo   domain.Repository
	signal *refresh.Signal
}

func New(p Params) domain.Service {
	return &Service{
		log:    p.Log.Named("invoice.service"),
		repo:   p.Repo,
		signal: p.Signal,
	}
}

// Create validates the submission, prices it and persists. CustomerID is
// stored as given; nothing checks it against the customer book.
func (s *Service) Create(ctx context.Context, input domain.InvoiceInput) (domain.Invoice, error) {
	validated, fieldErrs := domain.ValidateInput(input)
	if fieldErrs != nil {
		return domain.Invoice{}, fieldErrs
	}

	items := make([]domain.InvoiceItem, 0, len(validated.Items))
	for _, item := range validated.Items {
		items = append(items, domain.InvoiceItem{
			ID:          uuid.NewString(),
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price,
			TaxRate:     item.TaxRate,
		})
	}
	totals := domain.ComputeTotals(items)

	invoice, err := s.repo.Add(ctx, domain.CreateInvoice{
		CustomerID: validated.CustomerID,
		Date:       validated.Date,
		DueDate:    validated.DueDate,
		Items:      items,
		Subtotal:   totals.Subtotal,
		TaxTotal:   totals.TaxTotal,
		GrandTotal: totals.GrandTotal,
		Status:     validated.Status,
	})
	if err != nil {
		s.log.Error("failed to persist invoice", zap.Error(err))
		return domain.Invoice{}, err
	}

	token := s.signal.Notify()
	s.log.Info("invoice created",
		zap.String("invoice_id", invoice.ID),
		zap.String("customer_id", invoice.CustomerID),
		zap.Float64("grand_total", invoice.GrandTotal),
		zap.String("refresh_token", token),
	)
	return invoice, nil
}

func (s *Service) ListByCustomer(ctx context.Context, customerID string) ([]domain.Invoice, error) {
	return s.repo.GetByCustomer(ctx, customerID)
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Invoice, error) {
	return s.repo.All(ctx)
}
