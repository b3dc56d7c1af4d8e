package request

import (
	"time"

	"room-booking-api/internal/usecase/commands"
	"room-booking-api/internal/usecase/queries"
)

type RoomRequest struct {
	Name              string    `json:"name" binding:"required"`
	Capacity          int32     `json:"capacity" binding:"required,gt=0"`
	BuildingID        int64     `json:"building_id" binding:"required"`
	RoomTypeID        int64     `json:"room_type_id" binding:"required"`
	WorkingHoursStart time.Time `json:"working_hours_start" binding:"required"`
	WorkingHoursEnd   time.Time `json:"working_hours_end" binding:"required"`
}

func (r RoomRequest) ToParams() commands.RoomParams {
	return commands.RoomParams{
		Name:              r.Name,
		Capacity:          r.Capacity,
		BuildingID:        r.BuildingID,
		RoomTypeID:        r.RoomTypeID,
		WorkingHoursStart: r.WorkingHoursStart,
		WorkingHoursEnd:   r.WorkingHoursEnd,
	}
}

// ListRoomsQuery carries the optional filters of the public room listing.
type ListRoomsQuery struct {
	BuildingID  *int64 `form:"building_id"`
	RoomTypeID  *int64 `form:"room_type_id"`
	MinCapacity *int32 `form:"min_capacity"`
	MaxCapacity *int32 `form:"max_capacity"`
}

func (q ListRoomsQuery) ToFilter() queries.RoomFilter {
	return queries.RoomFilter{
		BuildingID:  q.BuildingID,
		RoomTypeID:  q.RoomTypeID,
		MinCapacity: q.MinCapacity,
		MaxCapacity: q.MaxCapacity,
	}
}
