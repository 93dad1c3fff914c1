package readstore

import (
	"context"

	"reservation-service/internal/infra"
	"reservation-service/internal/infra/db"
	"reservation-service/internal/pkg/pgconv"
	"reservation-service/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

const findAllReviewsSQL = `
SELECT id, customer_name, comment, rating, source, created_at
  FROM service_reviews
 ORDER BY created_at, id`

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(db db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: db}
}

func (s *ReviewReadStore) FindAll(ctx context.Context) ([]*queries.ReviewView, error) {
	rows, err := s.db.Query(ctx, findAllReviewsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	result := make([]*queries.ReviewView, 0)
	for rows.Next() {
		var (
			view      queries.ReviewView
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.CustomerName, &view.Comment, &view.Rating, &view.Source, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate review rows", err)
	}

	return result, nil
}
