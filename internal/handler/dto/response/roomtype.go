package response

import (
	"time"

	"room-booking-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RoomTypeResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromRoomTypeView(view *queries.RoomTypeView) *RoomTypeResponse {
	var resp RoomTypeResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromRoomTypeViews(views []*queries.RoomTypeView) []*RoomTypeResponse {
	resps := make([]*RoomTypeResponse, len(views))
	for i, v := range views {
		resps[i] = FromRoomTypeView(v)
	}
	return resps
}
