package queries

import (
	"context"

	"room-booking-api/internal/infra"
	"room-booking-api/internal/pkg/errs"
)

var ErrRoomNotFound = errs.New("room not found")

type RoomReadStore interface {
	FindByID(ctx context.Context, id int64) (*RoomView, error)
	FindAll(ctx context.Context, filter RoomFilter) ([]*RoomView, error)
}

type RoomQueries interface {
	GetByID(ctx context.Context, id int64) (*RoomView, error)
	List(ctx context.Context, filter RoomFilter) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	readStore RoomReadStore
}

func NewRoomQueries(readStore RoomReadStore) RoomQueries {
	return &roomQueriesImpl{readStore: readStore}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id int64) (*RoomView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Wrap(err, "failed to find room")
	}
	return view, nil
}

func (q *roomQueriesImpl) List(ctx context.Context, filter RoomFilter) ([]*RoomView, error) {
	views, err := q.readStore.FindAll(ctx, filter)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list rooms")
	}
	return views, nil
}
