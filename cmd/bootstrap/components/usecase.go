package components

import (
	"reservation-service/internal/pkg/clock"
	"reservation-service/internal/usecase/commands"
	"reservation-service/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewReviewCommands,
		commands.NewPromotionCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewReviewQueries,
		queries.NewPromotionQueries,
		queries.NewCatalogQueries,
	),
)
