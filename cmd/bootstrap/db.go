package bootstrap

import (
	"context"
	"time"

	"github.com/Weed1801/Mystic-Tarot/internal/infra/db"
	"github.com/Weed1801/Mystic-Tarot/internal/infra/seed"
	"github.com/Weed1801/Mystic-Tarot/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	// Schema and catalog are idempotent, so applying them on every start is
	// safe and removes the need for a separate migration step.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.EnsureSchema(ctx, pool); err != nil {
		cleanup()
		return nil, err
	}
	if err := seed.EnsureCards(ctx, pool); err != nil {
		cleanup()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
