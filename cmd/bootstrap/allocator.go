package bootstrap

import (
	"log/slog"

	"reservation-service/internal/infra/allocator"
	"reservation-service/internal/pkg/config"
	"reservation-service/internal/usecase/commands"
	"reservation-service/internal/usecase/queries"

	"go.uber.org/fx"
)

var AllocatorModule = fx.Module("allocator",
	fx.Provide(
		func(cfg config.Config) *allocator.Client {
			return allocator.NewClient(cfg.Allocator)
		},
		fx.Annotate(
			func(client *allocator.Client, logger *slog.Logger, cfg config.Config) *allocator.Gateway {
				return allocator.NewGateway(client, logger, cfg.Allocator)
			},
			fx.As(new(commands.AllocatorGateway)),
		),
		func(client *allocator.Client) queries.CatalogSource {
			return client
		},
	),
)
