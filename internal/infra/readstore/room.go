package readstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"room-booking-api/internal/infra"
	"room-booking-api/internal/infra/db"
	"room-booking-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

const roomSelectColumns = `
	r.id, r.name, r.capacity, r.building_id, b.name, r.room_type_id, t.name,
	r.working_hours_start, r.working_hours_end, r.created_at, r.updated_at`

type RoomReadStore struct {
	dbtx db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{dbtx: dbtx}
}

func (s *RoomReadStore) FindByID(ctx context.Context, id int64) (*queries.RoomView, error) {
	query := `
		SELECT` + roomSelectColumns + `
		FROM rooms r
		JOIN buildings b ON b.id = r.building_id
		JOIN room_types t ON t.id = r.room_type_id
		WHERE r.id = $1`

	row := s.dbtx.QueryRow(ctx, query, id)
	view, err := scanRoomView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}

	return view, nil
}

func (s *RoomReadStore) FindAll(ctx context.Context, filter queries.RoomFilter) ([]*queries.RoomView, error) {
	var conditions []string
	var args []any

	addCondition := func(clause string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filter.BuildingID != nil {
		addCondition("r.building_id = $%d", *filter.BuildingID)
	}
	if filter.RoomTypeID != nil {
		addCondition("r.room_type_id = $%d", *filter.RoomTypeID)
	}
	if filter.MinCapacity != nil {
		addCondition("r.capacity >= $%d", *filter.MinCapacity)
	}
	if filter.MaxCapacity != nil {
		addCondition("r.capacity <= $%d", *filter.MaxCapacity)
	}

	query := `
		SELECT` + roomSelectColumns + `
		FROM rooms r
		JOIN buildings b ON b.id = r.building_id
		JOIN room_types t ON t.id = r.room_type_id`
	if len(conditions) > 0 {
		query += "\n\t\tWHERE " + strings.Join(conditions, " AND ")
	}
	query += "\n\t\tORDER BY r.id ASC"

	rows, err := s.dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	views := make([]*queries.RoomView, 0)
	for rows.Next() {
		view, err := scanRoomView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}

	return views, nil
}

func scanRoomView(row pgx.Row) (*queries.RoomView, error) {
	var v queries.RoomView
	err := row.Scan(
		&v.ID, &v.Name, &v.Capacity, &v.BuildingID, &v.BuildingName, &v.RoomTypeID, &v.RoomTypeName,
		&v.WorkingHoursStart, &v.WorkingHoursEnd, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
