package queries

import "time"

// Read models (DTO for read side)
type ReservationView struct {
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

type RoomView struct {
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

type BuildingView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RoomTypeView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AuthorizedUserView struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// RoomFilter narrows the public room listing; nil fields are not applied.
type RoomFilter struct {
	BuildingID  *int64
	RoomTypeID  *int64
	MinCapacity *int32
	MaxCapacity *int32
}
