package queries

import "context"

type ReviewReadStore interface {
	FindAll(ctx context.Context) ([]*ReviewView, error)
}

type ReviewQueries interface {
	List(ctx context.Context) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	store ReviewReadStore
}

func NewReviewQueries(store ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{store: store}
}

func (q *reviewQueriesImpl) List(ctx context.Context) ([]*ReviewView, error) {
	return q.store.FindAll(ctx)
}
