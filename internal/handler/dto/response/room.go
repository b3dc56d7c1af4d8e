package response

import (
	"time"

	"room-booking-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Capacity          int32     `json:"capacity"`
	BuildingID        int64     `json:"building_id"`
	BuildingName      string    `json:"building_name"`
	RoomTypeID        int64     `json:"room_type_id"`
	RoomTypeName      string    `json:"room_type_name"`
	WorkingHoursStart time.Time `json:"working_hours_start"`
	WorkingHoursEnd   time.Time `json:"working_hours_end"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromRoomView(view *queries.RoomView) *RoomResponse {
	var resp RoomResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromRoomViews(views []*queries.RoomView) []*RoomResponse {
	resps := make([]*RoomResponse, len(views))
	for i, v := range views {
		resps[i] = FromRoomView(v)
	}
	return resps
}
