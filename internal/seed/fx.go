package seed

import (
	"context"

	"github.com/smallbiznis/folio/internal/config"
	customerdomain "github.com/smallbiznis/folio/internal/customer/domain"
	invoicedomain "github.com/smallbiznis/folio/internal/invoice/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func run(lc fx.Lifecycle, cfg config.Config, log *zap.Logger, customers customerdomain.Service, invoices invoicedomain.Service) {
	if !cfg.SeedDemo {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := EnsureDemoData(ctx, customers, invoices); err != nil {
				log.Warn("demo seeding failed", zap.Error(err))
			}
			return nil
		},
	})
}

// Module seeds demo data on startup when enabled by config.
var Module = fx.Module("seed",
	fx.Invoke(run),
)
