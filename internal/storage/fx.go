package storage

import (
	"context"
	"fmt"

	"github.com/smallbiznis/folio/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// New opens the store selected by config.
func New(cfg config.Config, log *zap.Logger) (Store, error) {
	switch cfg.Store.Driver {
	case config.StoreMemory:
		return NewMemoryStore(), nil
	case config.StoreSQLite:
		log.Info("opening sqlite store", zap.String("path", cfg.Store.SQLitePath))
		return NewSQLiteStore(cfg.Store.SQLitePath)
	case config.StoreRedis:
		log.Info("opening redis store", zap.String("addr", cfg.Store.RedisAddr))
		return NewRedisStore(cfg.Store.RedisAddr, cfg.Store.RedisDB), nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

func registerHooks(lc fx.Lifecycle, store Store) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = ctx
			return store.Close()
		},
	})
}

// Module wires the blob store for the application.
var Module = fx.Module("storage",
	fx.Provide(New),
	fx.Invoke(registerHooks),
)
