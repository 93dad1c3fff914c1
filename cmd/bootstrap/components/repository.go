package components

import (
	"reservation-service/internal/infra/db"
	"reservation-service/internal/infra/readstore"
	"reservation-service/internal/infra/repository"
	"reservation-service/internal/usecase/commands"
	"reservation-service/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		// Write side
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			repository.NewReviewRepository,
			fx.As(new(commands.ReviewRepository)),
		),
		fx.Annotate(
			repository.NewPromotionRepository,
			fx.As(new(commands.PromotionRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
		fx.Annotate(
			readstore.NewPromotionReadStore,
			fx.As(new(queries.PromotionReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
