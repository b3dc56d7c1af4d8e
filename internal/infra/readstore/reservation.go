package readstore

import (
	"context"
	"errors"
	"time"

	"room-booking-api/internal/infra"
	"room-booking-api/internal/infra/db"
	"room-booking-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

const reservationSelectColumns = `
	r.id, r.room_id, rm.name, r.user_id, u.full_name, u.email,
	r.start_time, r.end_time, r.created_at, r.updated_at`

type ReservationReadStore struct {
	dbtx db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{dbtx: dbtx}
}

func (s *ReservationReadStore) FindByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	query := `
		SELECT` + reservationSelectColumns + `
		FROM reservations r
		JOIN rooms rm ON rm.id = r.room_id
		JOIN users u ON u.id = r.user_id
		WHERE r.id = $1`

	row := s.dbtx.QueryRow(ctx, query, id)
	view, err := scanReservationView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	return view, nil
}

func (s *ReservationReadStore) FindByRoomWithinRange(ctx context.Context, roomID int64, from, to time.Time) ([]*queries.ReservationView, error) {
	query := `
		SELECT` + reservationSelectColumns + `
		FROM reservations r
		JOIN rooms rm ON rm.id = r.room_id
		JOIN users u ON u.id = r.user_id
		WHERE r.room_id = $1
		  AND r.start_time BETWEEN $2 AND $3
		ORDER BY r.start_time ASC`

	rows, err := s.dbtx.Query(ctx, query, roomID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by room", err)
	}
	defer rows.Close()

	return collectReservationViews(rows)
}

func (s *ReservationReadStore) FindUpcomingByUser(ctx context.Context, userID int64, now time.Time) ([]*queries.ReservationView, error) {
	query := `
		SELECT` + reservationSelectColumns + `
		FROM reservations r
		JOIN rooms rm ON rm.id = r.room_id
		JOIN users u ON u.id = r.user_id
		WHERE r.user_id = $1
		  AND r.end_time > $2
		ORDER BY r.start_time ASC`

	rows, err := s.dbtx.Query(ctx, query, userID, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming reservations", err)
	}
	defer rows.Close()

	return collectReservationViews(rows)
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var v queries.ReservationView
	err := row.Scan(
		&v.ID, &v.RoomID, &v.RoomName, &v.UserID, &v.UserFullName, &v.UserEmail,
		&v.StartTime, &v.EndTime, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func collectReservationViews(rows pgx.Rows) ([]*queries.ReservationView, error) {
	views := make([]*queries.ReservationView, 0)
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return views, nil
}
