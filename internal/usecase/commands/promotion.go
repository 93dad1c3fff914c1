package commands

import (
	"context"
	"time"

	"reservation-service/internal/domain/promotion"
	"reservation-service/internal/pkg/errs"
	"reservation-service/internal/usecase/queries"
)

var ErrPromotionValidation = errs.New("promotion validation failed")

const dateLayout = "2006-01-02"

type CreatePromotionInput struct {
	Name               string
	Description        string
	DiscountPercentage float64
	StartDate          string
	EndDate            string
}

type PromotionCommands interface {
	Create(ctx context.Context, in CreatePromotionInput) (*queries.PromotionView, error)
}

type promotionUseCaseImpl struct {
	repo PromotionRepository
}

func NewPromotionCommands(repo PromotionRepository) PromotionCommands {
	return &promotionUseCaseImpl{repo: repo}
}

func (u *promotionUseCaseImpl) Create(ctx context.Context, in CreatePromotionInput) (*queries.PromotionView, error) {
	start, err := time.Parse(dateLayout, in.StartDate)
	if err != nil {
		return nil, errs.Mark(err, ErrPromotionValidation)
	}
	end, err := time.Parse(dateLayout, in.EndDate)
	if err != nil {
		return nil, errs.Mark(err, ErrPromotionValidation)
	}

	promo, err := promotion.NewPromotion(in.Name, in.Description, in.DiscountPercentage, start, end)
	if err != nil {
		return nil, errs.Mark(err, ErrPromotionValidation)
	}

	view, err := u.repo.Create(ctx, promo)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
