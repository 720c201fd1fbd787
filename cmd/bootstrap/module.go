package bootstrap

import (
	"petstay-bff/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	StorageModule,
	UpstreamModule,
	components.UseCaseModule,
	components.HandlerModule,
)
