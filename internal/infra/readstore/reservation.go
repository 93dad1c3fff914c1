package readstore

import (
	"context"

	"reservation-service/internal/infra"
	"reservation-service/internal/infra/db"
	"reservation-service/internal/pkg/pgconv"
	"reservation-service/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

const findReservationByIDSQL = `
SELECT id, customer_name, status, table_number, table_status, created_at
  FROM reservations
 WHERE id = $1`

const findAllReservationsSQL = `
SELECT id, customer_name, status, table_number, table_status, created_at
  FROM reservations
 ORDER BY created_at, id`

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (s *ReservationReadStore) FindByID(ctx context.Context, id string) (*queries.ReservationView, error) {
	row := s.db.QueryRow(ctx, findReservationByIDSQL, id)

	var (
		view        queries.ReservationView
		tableNumber pgtype.Text
		tableStatus pgtype.Text
		createdAt   pgtype.Timestamptz
	)
	if err := row.Scan(&view.ID, &view.CustomerName, &view.Status, &tableNumber, &tableStatus, &createdAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	view.TableNumber = pgconv.StringPtrFromPgtype(tableNumber)
	view.TableStatus = pgconv.StringPtrFromPgtype(tableStatus)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}

func (s *ReservationReadStore) FindAll(ctx context.Context) ([]*queries.ReservationView, error) {
	rows, err := s.db.Query(ctx, findAllReservationsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	result := make([]*queries.ReservationView, 0)
	for rows.Next() {
		var (
			view        queries.ReservationView
			tableNumber pgtype.Text
			tableStatus pgtype.Text
			createdAt   pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.CustomerName, &view.Status, &tableNumber, &tableStatus, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		view.TableNumber = pgconv.StringPtrFromPgtype(tableNumber)
		view.TableStatus = pgconv.StringPtrFromPgtype(tableStatus)
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}

	return result, nil
}
