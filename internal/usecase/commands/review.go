package commands

import (
	"context"

	"reservation-service/internal/domain/review"
	"reservation-service/internal/pkg/errs"
	"reservation-service/internal/usecase/queries"
)

var ErrReviewValidation = errs.New("review validation failed")

type CreateReviewInput struct {
	CustomerName string
	Comment      string
	Rating       int
}

type ReviewCommands interface {
	Create(ctx context.Context, in CreateReviewInput) (*queries.ReviewView, error)
}

type reviewUseCaseImpl struct {
	repo      ReviewRepository
	allocator AllocatorGateway
}

func NewReviewCommands(repo ReviewRepository, allocator AllocatorGateway) ReviewCommands {
	return &reviewUseCaseImpl{repo: repo, allocator: allocator}
}

// Create persists the review locally, then pushes it to the allocator as a
// best-effort write-through. A failed sync never fails the submission.
func (u *reviewUseCaseImpl) Create(ctx context.Context, in CreateReviewInput) (*queries.ReviewView, error) {
	rev, err := review.NewReview(in.CustomerName, in.Comment, in.Rating)
	if err != nil {
		return nil, errs.Mark(err, ErrReviewValidation)
	}

	view, err := u.repo.Create(ctx, rev)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.allocator.SyncReview(*view)

	return view, nil
}
