package roomtype

import "errors"

var ErrInvalidName = errors.New("room type name is required")

type RoomType struct {
	id   int64
	name string
}

func NewRoomType(name string) (*RoomType, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	return &RoomType{name: name}, nil
}

func (t *RoomType) ID() int64    { return t.id }
func (t *RoomType) Name() string { return t.name }
