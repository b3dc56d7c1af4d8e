package repository

import (
	"context"

	"room-booking-api/internal/domain/building"
	"room-booking-api/internal/infra"
	"room-booking-api/internal/infra/db"
)

type BuildingRepository struct{}

func NewBuildingRepository() *BuildingRepository {
	return &BuildingRepository{}
}

func (r *BuildingRepository) Create(ctx context.Context, dbtx db.DBTX, entity *building.Building) (int64, error) {
	const query = `
		INSERT INTO buildings (name, address)
		VALUES ($1, $2)
		RETURNING id`

	var id int64
	err := dbtx.QueryRow(ctx, query, entity.Name(), entity.Address()).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create building", err)
	}

	return id, nil
}

func (r *BuildingRepository) Update(ctx context.Context, dbtx db.DBTX, id int64, entity *building.Building) error {
	const query = `
		UPDATE buildings
		SET name = $2, address = $3, updated_at = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id, entity.Name(), entity.Address())
	if err != nil {
		return infra.WrapRepoErr("failed to update building", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("building not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *BuildingRepository) Delete(ctx context.Context, dbtx db.DBTX, id int64) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM buildings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete building", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("building not found", nil, infra.KindNotFound)
	}

	return nil
}
