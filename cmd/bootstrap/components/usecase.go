package components

import (
	"log/slog"

	"petstay-bff/internal/infra/countdownstore"
	"petstay-bff/internal/infra/upstream"
	"petstay-bff/internal/pkg/clock"
	"petstay-bff/internal/pkg/config"
	"petstay-bff/internal/usecase"
	"petstay-bff/internal/usecase/commands"
	"petstay-bff/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(store *countdownstore.Store) commands.CountdownStore { return store },
	func(store *countdownstore.Store) queries.CountdownReader { return store },
	func(cmds commands.CountdownCommands, cfg config.Config, logger *slog.Logger) *usecase.Watcher {
		return usecase.NewWatcher(cmds, cfg.Countdown, logger)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(
			store commands.CountdownStore,
			statuses upstream.OrderStatusClient,
			clk clock.Clock,
			cfg config.Config,
			logger *slog.Logger,
		) commands.CountdownCommands {
			return commands.NewCountdownUseCase(store, statuses, clk, cfg.Countdown.FallbackWindow, logger)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewQuoteQueries,
		queries.NewCountdownQueries,
	),
)
