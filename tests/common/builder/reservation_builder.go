//go:build unit || e2e

package builder

import (
	"time"

	reqdto "room-booking-api/internal/handler/dto/request"
	"room-booking-api/internal/usecase/queries"
)

type ReservationBuilder struct {
	ID        int64
	RoomID    int64
	RoomName  string
	UserID    int64
	StartTime time.Time
	EndTime   time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:        1,
		RoomID:    1,
		RoomName:  "Conference Room A",
		UserID:    100,
		StartTime: time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 6, 10, 11, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) BuildCreateDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		RoomID:    b.RoomID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
	}
}

func (b *ReservationBuilder) BuildUpdateDTO() reqdto.UpdateReservationRequest {
	return reqdto.UpdateReservationRequest{
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
	}
}

func (b *ReservationBuilder) BuildReadModel() *queries.ReservationView {
	now := time.Now().UTC()
	return &queries.ReservationView{
		ID:           b.ID,
		RoomID:       b.RoomID,
		RoomName:     b.RoomName,
		UserID:       b.UserID,
		UserFullName: "Taro Yamada",
		UserEmail:    "taro@example.com",
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Fluent builder methods
func (b *ReservationBuilder) WithRoomID(id int64) *ReservationBuilder {
	b.RoomID = id
	return b
}

func (b *ReservationBuilder) WithUserID(id int64) *ReservationBuilder {
	b.UserID = id
	return b
}

func (b *ReservationBuilder) WithTimeRange(start, end time.Time) *ReservationBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}
