package bootstrap

import (
	"petstay-bff/internal/infra/upstream"
	"petstay-bff/internal/pkg/config"

	"go.uber.org/fx"
)

var UpstreamModule = fx.Module("upstream",
	fx.Provide(
		func(cfg config.Config) upstream.OrderStatusClient {
			return upstream.NewOrderStatusClient(cfg.Upstream)
		},
	),
)
