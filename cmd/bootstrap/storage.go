package bootstrap

import (
	"context"
	"log/slog"

	"petstay-bff/internal/infra/countdownstore"
	"petstay-bff/internal/pkg/clock"
	"petstay-bff/internal/pkg/config"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewCountdownStore,
	),
)

// NewCountdownStore opens the bolt-backed countdown store, or a purely
// in-memory one when no storage path is configured.
func NewCountdownStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (*countdownstore.Store, error) {
	var persister countdownstore.Persister
	if cfg.Storage.Path == "" {
		persister = countdownstore.NewMemoryPersister()
	} else {
		boltPersister, err := countdownstore.NewBoltPersister(cfg.Storage.Path)
		if err != nil {
			return nil, err
		}
		persister = boltPersister
	}

	store, err := countdownstore.New(persister, clk, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return persister.Close()
		},
	})

	return store, nil
}
