package building

import "errors"

var ErrInvalidName = errors.New("building name is required")

type Building struct {
	id      int64
	name    string
	address string
}

func NewBuilding(name, address string) (*Building, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	return &Building{name: name, address: address}, nil
}

func (b *Building) ID() int64       { return b.id }
func (b *Building) Name() string    { return b.name }
func (b *Building) Address() string { return b.address }
