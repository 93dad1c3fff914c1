package repository

import (
	"context"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/infra"
	"reservation-service/internal/infra/db"
	"reservation-service/internal/pkg/pgconv"
	"reservation-service/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Each transition below is a single guarded statement. The terminal-state
// predicate lives in the WHERE clause, so concurrent mutations on one id
// serialize on the row lock and the loser of the race observes the winner's
// fully-applied state, never a partial write.

const reservationColumns = "id, customer_name, status, table_number, table_status, created_at"

const createReservationSQL = `
INSERT INTO reservations (id, customer_name, status)
VALUES ($1, $2, $3)
RETURNING ` + reservationColumns

const updateReservationStatusSQL = `
UPDATE reservations
   SET status = $2, table_number = $3
 WHERE id = $1
   AND status <> 'cancelled'
   AND NOT (status = 'confirmed' AND $2 = 'pending')
RETURNING ` + reservationColumns

const approveReservationSQL = `
UPDATE reservations
   SET status = 'confirmed', table_number = $2
 WHERE id = $1
   AND status <> 'cancelled'
RETURNING ` + reservationColumns

const upsertConfirmedReservationSQL = `
INSERT INTO reservations (id, customer_name, status, table_number, table_status)
VALUES ($1, $2, 'confirmed', $3, $4)
ON CONFLICT (id) DO UPDATE
   SET customer_name = EXCLUDED.customer_name,
       status        = 'confirmed',
       table_number  = EXCLUDED.table_number,
       table_status  = EXCLUDED.table_status
 WHERE reservations.status <> 'cancelled'
RETURNING ` + reservationColumns

const cancelReservationSQL = `
UPDATE reservations
   SET status = 'cancelled'
 WHERE id = $1
   AND status <> 'cancelled'
RETURNING ` + reservationColumns

const selectReservationSQL = `
SELECT ` + reservationColumns + `
  FROM reservations
 WHERE id = $1`

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(db db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, rec *reservation.Reservation) (*queries.ReservationView, error) {
	row := r.db.QueryRow(ctx, createReservationSQL, rec.ID(), rec.CustomerName(), rec.Status().String())

	view, err := scanReservation(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return view, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id string, status reservation.Status, tableNumber *string) (*queries.ReservationView, error) {
	row := r.db.QueryRow(ctx, updateReservationStatusSQL, id, status.String(), pgconv.StringPtrToPgtype(tableNumber))

	view, err := scanReservation(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, r.classifyZeroRows(ctx, id, "status update rejected")
		}
		return nil, infra.WrapRepoErr("failed to update reservation status", err)
	}
	return view, nil
}

func (r *ReservationRepository) Approve(ctx context.Context, id string, tableNumber string) (*queries.ReservationView, error) {
	row := r.db.QueryRow(ctx, approveReservationSQL, id, tableNumber)

	view, err := scanReservation(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, r.classifyZeroRows(ctx, id, "approval rejected")
		}
		return nil, infra.WrapRepoErr("failed to approve reservation", err)
	}
	return view, nil
}

func (r *ReservationRepository) UpsertConfirmed(ctx context.Context, rec *reservation.Reservation) (*queries.ReservationView, error) {
	row := r.db.QueryRow(ctx, upsertConfirmedReservationSQL,
		rec.ID(),
		rec.CustomerName(),
		pgconv.StringPtrToPgtype(rec.TableNumber()),
		pgconv.StringPtrToPgtype(rec.TableStatus()),
	)

	view, err := scanReservation(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			// Cancelled record: leave it untouched and hand back what is stored.
			return r.findByID(ctx, rec.ID())
		}
		return nil, infra.WrapRepoErr("failed to upsert reservation", err)
	}
	return view, nil
}

func (r *ReservationRepository) Cancel(ctx context.Context, id string) (*queries.ReservationView, error) {
	row := r.db.QueryRow(ctx, cancelReservationSQL, id)

	view, err := scanReservation(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, r.classifyZeroRows(ctx, id, "cancellation rejected")
		}
		return nil, infra.WrapRepoErr("failed to cancel reservation", err)
	}
	return view, nil
}

// classifyZeroRows disambiguates a guarded update that matched nothing: the id
// is either absent, the record is cancelled, or the record is confirmed and
// the requested transition would move it backwards.
func (r *ReservationRepository) classifyZeroRows(ctx context.Context, id string, msg string) error {
	view, err := r.findByID(ctx, id)
	if err != nil {
		return err
	}
	if view.Status == reservation.StatusCancelled.String() {
		return infra.WrapRepoErr(msg, nil, infra.KindConflict)
	}
	return infra.WrapRepoErr(msg, nil, infra.KindInvalidTransition)
}

func (r *ReservationRepository) findByID(ctx context.Context, id string) (*queries.ReservationView, error) {
	row := r.db.QueryRow(ctx, selectReservationSQL, id)

	view, err := scanReservation(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return view, nil
}

func scanReservation(row pgx.Row) (*queries.ReservationView, error) {
	var (
		view        queries.ReservationView
		tableNumber pgtype.Text
		tableStatus pgtype.Text
		createdAt   pgtype.Timestamptz
	)

	if err := row.Scan(&view.ID, &view.CustomerName, &view.Status, &tableNumber, &tableStatus, &createdAt); err != nil {
		return nil, err
	}

	view.TableNumber = pgconv.StringPtrFromPgtype(tableNumber)
	view.TableStatus = pgconv.StringPtrFromPgtype(tableStatus)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}
