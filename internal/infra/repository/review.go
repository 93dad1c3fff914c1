package repository

import (
	"context"

	"reservation-service/internal/domain/review"
	"reservation-service/internal/infra"
	"reservation-service/internal/infra/db"
	"reservation-service/internal/pkg/pgconv"
	"reservation-service/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

const createReviewSQL = `
INSERT INTO service_reviews (id, customer_name, comment, rating, source)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, customer_name, comment, rating, source, created_at`

type ReviewRepository struct {
	db db.DBTX
}

func NewReviewRepository(db db.DBTX) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) (*queries.ReviewView, error) {
	row := r.db.QueryRow(ctx, createReviewSQL,
		rev.ID(),
		rev.CustomerName(),
		rev.Comment(),
		int32(rev.Rating().Value()),
		rev.SourceTag(),
	)

	var (
		view      queries.ReviewView
		createdAt pgtype.Timestamptz
	)
	if err := row.Scan(&view.ID, &view.CustomerName, &view.Comment, &view.Rating, &view.Source, &createdAt); err != nil {
		return nil, infra.WrapRepoErr("failed to create review", err)
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)

	return &view, nil
}
