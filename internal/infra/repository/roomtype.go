package repository

import (
	"context"

	"room-booking-api/internal/domain/roomtype"
	"room-booking-api/internal/infra"
	"room-booking-api/internal/infra/db"
)

type RoomTypeRepository struct{}

func NewRoomTypeRepository() *RoomTypeRepository {
	return &RoomTypeRepository{}
}

func (r *RoomTypeRepository) Create(ctx context.Context, dbtx db.DBTX, entity *roomtype.RoomType) (int64, error) {
	const query = `
		INSERT INTO room_types (name)
		VALUES ($1)
		RETURNING id`

	var id int64
	err := dbtx.QueryRow(ctx, query, entity.Name()).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create room type", err)
	}

	return id, nil
}

func (r *RoomTypeRepository) Update(ctx context.Context, dbtx db.DBTX, id int64, entity *roomtype.RoomType) error {
	const query = `
		UPDATE room_types
		SET name = $2, updated_at = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id, entity.Name())
	if err != nil {
		return infra.WrapRepoErr("failed to update room type", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room type not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *RoomTypeRepository) Delete(ctx context.Context, dbtx db.DBTX, id int64) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM room_types WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room type", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room type not found", nil, infra.KindNotFound)
	}

	return nil
}
