package queries

import (
	"context"

	"reservation-service/internal/pkg/clock"
)

type PromotionReadStore interface {
	FindActive(ctx context.Context, day string) ([]*PromotionView, error)
}

type PromotionQueries interface {
	// ListActive returns promotions whose date window covers today, highest
	// discount first.
	ListActive(ctx context.Context) ([]*PromotionView, error)
}

type promotionQueriesImpl struct {
	store PromotionReadStore
	clock clock.Clock
}

func NewPromotionQueries(store PromotionReadStore, clk clock.Clock) PromotionQueries {
	return &promotionQueriesImpl{store: store, clock: clk}
}

func (q *promotionQueriesImpl) ListActive(ctx context.Context) ([]*PromotionView, error) {
	day := q.clock.Now().Format("2006-01-02")
	return q.store.FindActive(ctx, day)
}
