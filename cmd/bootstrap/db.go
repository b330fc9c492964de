package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"gin-storefront/internal/infra/db"
	"gin-storefront/internal/pkg/config"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
)

// NewDB opens the pool, migrates and seeds per DB_* flags, and closes the pool on shutdown.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*gorm.DB, error) {
	gdb, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			sqlDB, err := gdb.DB()
			if err != nil {
				return err
			}
			if err := sqlDB.PingContext(ctx); err != nil {
				return fmt.Errorf("database not reachable at %s:%s: %w", cfg.DB.Host, cfg.DB.Port, err)
			}
			logger.Info("database ready",
				"host", cfg.DB.Host,
				"name", cfg.DB.DBName,
				"auto_migrate", cfg.DB.AutoMigrate,
				"seed", cfg.DB.Seed,
			)
			return nil
		},
		OnStop: func(context.Context) error {
			cleanup()
			return nil
		},
	})

	return gdb, nil
}
