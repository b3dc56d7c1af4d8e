package room

import "errors"

var (
	ErrInvalidName     = errors.New("room name is required")
	ErrInvalidCapacity = errors.New("room capacity must be positive")
)

// Room belongs to one building and one room type.
type Room struct {
	id           int64
	name         string
	capacity     int32
	buildingID   int64
	roomTypeID   int64
	workingHours WorkingHours
}

func NewRoom(name string, capacity int32, buildingID, roomTypeID int64, workingHours WorkingHours) (*Room, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &Room{
		name:         name,
		capacity:     capacity,
		buildingID:   buildingID,
		roomTypeID:   roomTypeID,
		workingHours: workingHours,
	}, nil
}

func (r *Room) ID() int64                  { return r.id }
func (r *Room) Name() string               { return r.name }
func (r *Room) Capacity() int32            { return r.capacity }
func (r *Room) BuildingID() int64          { return r.buildingID }
func (r *Room) RoomTypeID() int64          { return r.roomTypeID }
func (r *Room) WorkingHours() WorkingHours { return r.workingHours }
