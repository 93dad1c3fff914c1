package repository

import (
	"context"

	"reservation-service/internal/domain/promotion"
	"reservation-service/internal/infra"
	"reservation-service/internal/infra/db"
	"reservation-service/internal/pkg/pgconv"
	"reservation-service/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

const createPromotionSQL = `
INSERT INTO promotions (id, name, description, discount_percentage, start_date, end_date, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, name, description, discount_percentage, start_date, end_date, is_active, created_at`

type PromotionRepository struct {
	db db.DBTX
}

func NewPromotionRepository(db db.DBTX) *PromotionRepository {
	return &PromotionRepository{db: db}
}

func (r *PromotionRepository) Create(ctx context.Context, promo *promotion.Promotion) (*queries.PromotionView, error) {
	row := r.db.QueryRow(ctx, createPromotionSQL,
		promo.ID(),
		promo.Name(),
		promo.Description(),
		promo.DiscountPercentage(),
		pgconv.DateToPgtype(promo.StartDate()),
		pgconv.DateToPgtype(promo.EndDate()),
		promo.IsActive(),
	)

	var (
		view      queries.PromotionView
		startDate pgtype.Date
		endDate   pgtype.Date
		createdAt pgtype.Timestamptz
	)
	if err := row.Scan(&view.ID, &view.Name, &view.Description, &view.DiscountPercentage, &startDate, &endDate, &view.IsActive, &createdAt); err != nil {
		return nil, infra.WrapRepoErr("failed to create promotion", err)
	}
	view.StartDate = pgconv.DateFromPgtype(startDate)
	view.EndDate = pgconv.DateFromPgtype(endDate)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)

	return &view, nil
}
