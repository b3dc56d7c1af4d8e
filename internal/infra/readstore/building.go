package readstore

import (
	"context"
	"errors"

	"room-booking-api/internal/infra"
	"room-booking-api/internal/infra/db"
	"room-booking-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type BuildingReadStore struct {
	dbtx db.DBTX
}

func NewBuildingReadStore(dbtx db.DBTX) *BuildingReadStore {
	return &BuildingReadStore{dbtx: dbtx}
}

func (s *BuildingReadStore) FindByID(ctx context.Context, id int64) (*queries.BuildingView, error) {
	const query = `
		SELECT id, name, address, created_at, updated_at
		FROM buildings
		WHERE id = $1`

	var v queries.BuildingView
	err := s.dbtx.QueryRow(ctx, query, id).Scan(&v.ID, &v.Name, &v.Address, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("building not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find building", err)
	}

	return &v, nil
}

func (s *BuildingReadStore) FindAll(ctx context.Context) ([]*queries.BuildingView, error) {
	const query = `
		SELECT id, name, address, created_at, updated_at
		FROM buildings
		ORDER BY id ASC`

	rows, err := s.dbtx.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list buildings", err)
	}
	defer rows.Close()

	views := make([]*queries.BuildingView, 0)
	for rows.Next() {
		var v queries.BuildingView
		if err := rows.Scan(&v.ID, &v.Name, &v.Address, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan building row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate building rows", err)
	}

	return views, nil
}
