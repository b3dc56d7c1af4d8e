package repository

import (
	"context"

	"room-booking-api/internal/domain/room"
	"room-booking-api/internal/infra"
	"room-booking-api/internal/infra/db"
)

type RoomRepository struct{}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{}
}

func (r *RoomRepository) Create(ctx context.Context, dbtx db.DBTX, entity *room.Room) (int64, error) {
	const query = `
		INSERT INTO rooms (name, capacity, building_id, room_type_id, working_hours_start, working_hours_end)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := dbtx.QueryRow(ctx, query,
		entity.Name(), entity.Capacity(), entity.BuildingID(), entity.RoomTypeID(),
		entity.WorkingHours().Start(), entity.WorkingHours().End(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create room", err)
	}

	return id, nil
}

func (r *RoomRepository) Update(ctx context.Context, dbtx db.DBTX, id int64, entity *room.Room) error {
	const query = `
		UPDATE rooms
		SET name = $2, capacity = $3, building_id = $4, room_type_id = $5,
		    working_hours_start = $6, working_hours_end = $7, updated_at = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query,
		id, entity.Name(), entity.Capacity(), entity.BuildingID(), entity.RoomTypeID(),
		entity.WorkingHours().Start(), entity.WorkingHours().End(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, dbtx db.DBTX, id int64) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}

	return nil
}
