package response

import (
	"time"

	"room-booking-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID           int64     `json:"id"`
	RoomID       int64     `json:"room_id"`
	RoomName     string    `json:"room_name"`
	UserID       int64     `json:"user_id"`
	UserFullName string    `json:"user_full_name"`
	UserEmail    string    `json:"user_email"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromReservationView(view *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	resps := make([]*ReservationResponse, len(views))
	for i, v := range views {
		resps[i] = FromReservationView(v)
	}
	return resps
}
