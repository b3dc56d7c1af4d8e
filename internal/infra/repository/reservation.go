package repository

import (
	"context"
	"errors"

	"room-booking-api/internal/domain/reservation"
	"room-booking-api/internal/infra"
	"room-booking-api/internal/infra/db"
	"room-booking-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Create(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) (int64, error) {
	const query = `
		INSERT INTO reservations (room_id, user_id, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := dbtx.QueryRow(ctx, query,
		res.RoomID(), res.UserID(), res.TimeSlot().Start(), res.TimeSlot().End(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}

	return id, nil
}

func (r *ReservationRepository) UpdateTimeSlot(ctx context.Context, dbtx db.DBTX, id int64, slot reservation.TimeSlot) error {
	const query = `
		UPDATE reservations
		SET start_time = $2, end_time = $3, updated_at = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id, slot.Start(), slot.End())
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation time slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, dbtx db.DBTX, id int64) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}

// FindOverlapping compares half-open ranges with the same predicate the
// reservations_no_overlap exclusion constraint indexes, so the scan and the
// constraint agree on what conflicts. Boundary-touching slots pass.
func (r *ReservationRepository) FindOverlapping(ctx context.Context, dbtx db.DBTX, roomID int64, slot reservation.TimeSlot, excludeID *int64) (*shared.ReservationSnapshot, error) {
	query := `
		SELECT id, room_id, user_id, start_time, end_time
		FROM reservations
		WHERE room_id = $1
		  AND tstzrange(start_time, end_time, '[)') && $2::tstzrange`
	args := []any{roomID, slot.ToTstzrange()}

	if excludeID != nil {
		query += ` AND id <> $3`
		args = append(args, *excludeID)
	}
	query += ` LIMIT 1`

	var snap shared.ReservationSnapshot
	err := dbtx.QueryRow(ctx, query, args...).Scan(
		&snap.ID, &snap.RoomID, &snap.UserID, &snap.StartTime, &snap.EndTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to scan for overlapping reservations", err)
	}

	return &snap, nil
}
