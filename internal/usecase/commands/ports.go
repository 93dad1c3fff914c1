package commands

import (
	"context"

	"reservation-service/internal/domain/promotion"
	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/domain/review"
	"reservation-service/internal/usecase/queries"
)

// ReservationRepository is the write side of the reservation store. Every
// mutation is a single guarded statement so that concurrent transitions on the
// same id serialize on the row, never producing a field-level merge.
//
// Guard outcomes are reported as infra error kinds: KindNotFound when the id
// does not exist, KindConflict when the record is cancelled (or the requested
// transition is otherwise not allowed from the current state).
type ReservationRepository interface {
	Create(ctx context.Context, rec *reservation.Reservation) (*queries.ReservationView, error)
	UpdateStatus(ctx context.Context, id string, status reservation.Status, tableNumber *string) (*queries.ReservationView, error)
	Approve(ctx context.Context, id string, tableNumber string) (*queries.ReservationView, error)
	// UpsertConfirmed inserts a confirmed record or overwrites an existing
	// non-cancelled one. On a cancelled record it leaves the row untouched and
	// returns it as stored.
	UpsertConfirmed(ctx context.Context, rec *reservation.Reservation) (*queries.ReservationView, error)
	Cancel(ctx context.Context, id string) (*queries.ReservationView, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, rev *review.Review) (*queries.ReviewView, error)
}

type PromotionRepository interface {
	Create(ctx context.Context, promo *promotion.Promotion) (*queries.PromotionView, error)
}

// AllocatorGateway is the best-effort side channel to the allocator. Calls are
// dispatched detached from the caller; failures are logged by the gateway and
// never reach the controller. That asymmetry is deliberate: local state is
// authoritative, the remote side effect is advisory.
type AllocatorGateway interface {
	RequestAllocation(id, customerName string)
	ReleaseTable(tableNumber string)
	SyncReview(rv queries.ReviewView)
}
