package readstore

import (
	"context"

	"reservation-service/internal/infra"
	"reservation-service/internal/infra/db"
	"reservation-service/internal/pkg/pgconv"
	"reservation-service/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

const findActivePromotionsSQL = `
SELECT id, name, description, discount_percentage, start_date, end_date, is_active, created_at
  FROM promotions
 WHERE start_date <= $1 AND end_date >= $1 AND is_active
 ORDER BY discount_percentage DESC`

type PromotionReadStore struct {
	db db.DBTX
}

func NewPromotionReadStore(db db.DBTX) *PromotionReadStore {
	return &PromotionReadStore{db: db}
}

func (s *PromotionReadStore) FindActive(ctx context.Context, day string) ([]*queries.PromotionView, error) {
	rows, err := s.db.Query(ctx, findActivePromotionsSQL, day)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active promotions", err)
	}
	defer rows.Close()

	result := make([]*queries.PromotionView, 0)
	for rows.Next() {
		var (
			view      queries.PromotionView
			startDate pgtype.Date
			endDate   pgtype.Date
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.Name, &view.Description, &view.DiscountPercentage, &startDate, &endDate, &view.IsActive, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan promotion row", err)
		}
		view.StartDate = pgconv.DateFromPgtype(startDate)
		view.EndDate = pgconv.DateFromPgtype(endDate)
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate promotion rows", err)
	}

	return result, nil
}
