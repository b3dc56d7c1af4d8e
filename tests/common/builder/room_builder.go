//go:build unit || e2e

package builder

import (
	"time"

	"room-booking-api/internal/domain/room"
	reqdto "room-booking-api/internal/handler/dto/request"
	"room-booking-api/internal/usecase/queries"
)

type RoomBuilder struct {
	ID                int64
	Name              string
	Capacity          int32
	BuildingID        int64
	RoomTypeID        int64
	WorkingHoursStart time.Time
	WorkingHoursEnd   time.Time
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:                1,
		Name:              "Conference Room A",
		Capacity:          10,
		BuildingID:        1,
		RoomTypeID:        1,
		WorkingHoursStart: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
		WorkingHoursEnd:   time.Date(2025, 1, 1, 18, 0, 0, 0, time.UTC),
	}
}

func (b *RoomBuilder) BuildDomain() (*room.Room, error) {
	hours, err := room.NewWorkingHours(b.WorkingHoursStart, b.WorkingHoursEnd)
	if err != nil {
		return nil, err
	}
	return room.NewRoom(b.Name, b.Capacity, b.BuildingID, b.RoomTypeID, hours)
}

func (b *RoomBuilder) BuildDTO() reqdto.RoomRequest {
	return reqdto.RoomRequest{
		Name:              b.Name,
		Capacity:          b.Capacity,
		BuildingID:        b.BuildingID,
		RoomTypeID:        b.RoomTypeID,
		WorkingHoursStart: b.WorkingHoursStart,
		WorkingHoursEnd:   b.WorkingHoursEnd,
	}
}

func (b *RoomBuilder) BuildReadModel() *queries.RoomView {
	now := time.Now().UTC()
	return &queries.RoomView{
		ID:                b.ID,
		Name:              b.Name,
		Capacity:          b.Capacity,
		BuildingID:        b.BuildingID,
		BuildingName:      "Main Building",
		RoomTypeID:        b.RoomTypeID,
		RoomTypeName:      "Conference",
		WorkingHoursStart: b.WorkingHoursStart,
		WorkingHoursEnd:   b.WorkingHoursEnd,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// Fluent builder methods
func (b *RoomBuilder) WithName(name string) *RoomBuilder {
	b.Name = name
	return b
}

func (b *RoomBuilder) WithCapacity(capacity int32) *RoomBuilder {
	b.Capacity = capacity
	return b
}

func (b *RoomBuilder) WithWorkingHours(start, end time.Time) *RoomBuilder {
	b.WorkingHoursStart = start
	b.WorkingHoursEnd = end
	return b
}
