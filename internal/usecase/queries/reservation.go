package queries

import (
	"context"

	"reservation-service/internal/infra"
	"reservation-service/internal/pkg/errs"
)

var ErrReservationNotFound = errs.New("reservation not found")

type ReservationReadStore interface {
	FindByID(ctx context.Context, id string) (*ReservationView, error)
	FindAll(ctx context.Context) ([]*ReservationView, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id string) (*ReservationView, error)
	// List returns the full snapshot in insertion order.
	List(ctx context.Context) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id string) (*ReservationView, error) {
	rv, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context) ([]*ReservationView, error) {
	return q.store.FindAll(ctx)
}
