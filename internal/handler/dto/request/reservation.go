package request

import (
	"time"

	"room-booking-api/internal/usecase/commands"
)

type CreateReservationRequest struct {
	RoomID    int64     `json:"room_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

func (r CreateReservationRequest) ToParams(userID int64) commands.CreateReservationParams {
	return commands.CreateReservationParams{
		RoomID:    r.RoomID,
		UserID:    userID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

type UpdateReservationRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

func (r UpdateReservationRequest) ToParams(reservationID, requesterID int64) commands.UpdateReservationParams {
	return commands.UpdateReservationParams{
		ReservationID: reservationID,
		RequesterID:   requesterID,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
	}
}
