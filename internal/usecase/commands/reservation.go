package commands

import (
	"context"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/infra"
	"reservation-service/internal/pkg/errs"
	"reservation-service/internal/usecase/queries"
)

var (
	ErrCustomerNameRequired    = errs.New("customer name is required")
	ErrTableNumberRequired     = errs.New("table number is required")
	ErrInvalidStatus           = errs.New("invalid reservation status")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrReservationCancelled    = errs.New("reservation is already cancelled")
	ErrInvalidTransition       = errs.New("reservation state does not allow this transition")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// ConfirmationSource identifies which inbound surface delivered a confirmation.
// The three HTTP endpoints are one semantic event ("the allocator told us
// something changed") with different payload shapes and existence policies.
type ConfirmationSource string

const (
	// SourceStatusUpdate is the explicit patch from the allocator. The id must
	// exist; this path must not silently create phantom records.
	SourceStatusUpdate ConfirmationSource = "status-update"
	// SourceApproval confirms an existing reservation onto a table.
	SourceApproval ConfirmationSource = "approval"
	// SourceNotification is the upsert path, the single channel allowed to
	// materialize a reservation this service never initiated.
	SourceNotification ConfirmationSource = "notification"
)

type ConfirmationEvent struct {
	Source        ConfirmationSource
	ReservationID string
	CustomerName  string  // notification only
	Status        string  // status-update only
	TableNumber   *string
	TableStatus   *string // notification only
}

type CreateReservationResult struct {
	Reservation *queries.ReservationView
}

type ReservationCommands interface {
	Create(ctx context.Context, customerName string) (*CreateReservationResult, error)
	ApplyConfirmation(ctx context.Context, ev ConfirmationEvent) (*queries.ReservationView, error)
	Cancel(ctx context.Context, id string) (*queries.ReservationView, error)
}

type reservationUseCaseImpl struct {
	repo      ReservationRepository
	allocator AllocatorGateway
}

func NewReservationCommands(repo ReservationRepository, allocator AllocatorGateway) ReservationCommands {
	return &reservationUseCaseImpl{
		repo:      repo,
		allocator: allocator,
	}
}

// Create persists a pending record and asks the allocator for a table. The
// store write is the only step awaited; the allocator call is dispatched
// fire-and-forget and its outcome never affects the response.
func (u *reservationUseCaseImpl) Create(ctx context.Context, customerName string) (*CreateReservationResult, error) {
	rec, err := reservation.NewReservation(customerName)
	if err != nil {
		return nil, errs.Mark(err, ErrCustomerNameRequired)
	}

	view, err := u.repo.Create(ctx, rec)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.allocator.RequestAllocation(rec.ID(), rec.CustomerName())

	return &CreateReservationResult{Reservation: view}, nil
}

func (u *reservationUseCaseImpl) ApplyConfirmation(ctx context.Context, ev ConfirmationEvent) (*queries.ReservationView, error) {
	switch ev.Source {
	case SourceStatusUpdate:
		return u.applyStatusUpdate(ctx, ev)
	case SourceApproval:
		return u.applyApproval(ctx, ev)
	case SourceNotification:
		return u.applyNotification(ctx, ev)
	default:
		return nil, errs.New("unknown confirmation source")
	}
}

func (u *reservationUseCaseImpl) applyStatusUpdate(ctx context.Context, ev ConfirmationEvent) (*queries.ReservationView, error) {
	status := reservation.Status(ev.Status)
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	view, err := u.repo.UpdateStatus(ctx, ev.ReservationID, status, ev.TableNumber)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return view, nil
}

func (u *reservationUseCaseImpl) applyApproval(ctx context.Context, ev ConfirmationEvent) (*queries.ReservationView, error) {
	if ev.TableNumber == nil || *ev.TableNumber == "" {
		return nil, ErrTableNumberRequired
	}

	view, err := u.repo.Approve(ctx, ev.ReservationID, *ev.TableNumber)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return view, nil
}

func (u *reservationUseCaseImpl) applyNotification(ctx context.Context, ev ConfirmationEvent) (*queries.ReservationView, error) {
	rec, err := reservation.NewConfirmedReservation(ev.ReservationID, ev.CustomerName, ev.TableNumber, ev.TableStatus)
	if err != nil {
		return nil, errs.Mark(err, ErrCustomerNameRequired)
	}

	// Upsert: re-applying an identical notification is a no-op, and a
	// cancelled record is returned as stored rather than downgraded.
	view, err := u.repo.UpsertConfirmed(ctx, rec)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// Cancel marks the record cancelled, keeping tableNumber for audit. Releasing
// the table on the allocator side is advisory; local cancellation succeeds
// regardless of collaborator reachability.
func (u *reservationUseCaseImpl) Cancel(ctx context.Context, id string) (*queries.ReservationView, error) {
	view, err := u.repo.Cancel(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}

	if view.TableNumber != nil && *view.TableNumber != "" {
		u.allocator.ReleaseTable(*view.TableNumber)
	}

	return view, nil
}

func mapRepoErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrReservationNotFound)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, ErrReservationCancelled)
	case infra.IsKind(err, infra.KindInvalidTransition):
		return errs.Mark(err, ErrInvalidTransition)
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
