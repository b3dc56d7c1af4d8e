package readstore

import (
	"context"
	"errors"

	"room-booking-api/internal/infra"
	"room-booking-api/internal/infra/db"
	"room-booking-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type RoomTypeReadStore struct {
	dbtx db.DBTX
}

func NewRoomTypeReadStore(dbtx db.DBTX) *RoomTypeReadStore {
	return &RoomTypeReadStore{dbtx: dbtx}
}

func (s *RoomTypeReadStore) FindByID(ctx context.Context, id int64) (*queries.RoomTypeView, error) {
	const query = `
		SELECT id, name, created_at, updated_at
		FROM room_types
		WHERE id = $1`

	var v queries.RoomTypeView
	err := s.dbtx.QueryRow(ctx, query, id).Scan(&v.ID, &v.Name, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room type", err)
	}

	return &v, nil
}

func (s *RoomTypeReadStore) FindAll(ctx context.Context) ([]*queries.RoomTypeView, error) {
	const query = `
		SELECT id, name, created_at, updated_at
		FROM room_types
		ORDER BY id ASC`

	rows, err := s.dbtx.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types", err)
	}
	defer rows.Close()

	views := make([]*queries.RoomTypeView, 0)
	for rows.Next() {
		var v queries.RoomTypeView
		if err := rows.Scan(&v.ID, &v.Name, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room type row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room type rows", err)
	}

	return views, nil
}
