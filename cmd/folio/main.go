package main

import (
	"context"

	"github.com/smallbiznis/folio/internal/clock"
	"github.com/smallbiznis/folio/internal/config"
	"github.com/smallbiznis/folio/internal/customer"
	customerdomain "github.com/smallbiznis/folio/internal/customer/domain"
	"github.com/smallbiznis/folio/internal/invoice"
	invoicedomain "github.com/smallbiznis/folio/internal/invoice/domain"
	"github.com/smallbiznis/folio/internal/logger"
	"github.com/smallbiznis/folio/internal/refresh"
	"github.com/smallbiznis/folio/internal/seed"
	"github.com/smallbiznis/folio/internal/storage"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		clock.Module,
		storage.Module,
		refresh.Module,

		// Functional domains
		customer.Module,
		invoice.Module,
		seed.Module,

		fx.Invoke(reportBook),
	)
	app.Run()
}

// reportBook logs what the store holds once everything is wired, which also
// verifies the backend is readable before the session is handed to the UI.
func reportBook(lc fx.Lifecycle, log *zap.Logger, customers customerdomain.Service, invoices invoicedomain.Service) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			customerList, err := customers.List(ctx)
			if err != nil {
				return err
			}
			invoiceList, err := invoices.ListAll(ctx)
			if err != nil {
				return err
			}
			log.Info("folio ready",
				zap.Int("customers", len(customerList)),
				zap.Int("invoices", len(invoiceList)),
			)
			return nil
		},
	})
}
