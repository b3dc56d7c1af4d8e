package queries

import (
	"context"

	"room-booking-api/internal/infra"
	"room-booking-api/internal/pkg/errs"
)

var ErrRoomTypeNotFound = errs.New("room type not found")

type RoomTypeReadStore interface {
	FindByID(ctx context.Context, id int64) (*RoomTypeView, error)
	FindAll(ctx context.Context) ([]*RoomTypeView, error)
}

type RoomTypeQueries interface {
	GetByID(ctx context.Context, id int64) (*RoomTypeView, error)
	List(ctx context.Context) ([]*RoomTypeView, error)
}

type roomTypeQueriesImpl struct {
	readStore RoomTypeReadStore
}

func NewRoomTypeQueries(readStore RoomTypeReadStore) RoomTypeQueries {
	return &roomTypeQueriesImpl{readStore: readStore}
}

func (q *roomTypeQueriesImpl) GetByID(ctx context.Context, id int64) (*RoomTypeView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, errs.Wrap(err, "failed to find room type")
	}
	return view, nil
}

func (q *roomTypeQueriesImpl) List(ctx context.Context) ([]*RoomTypeView, error) {
	views, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list room types")
	}
	return views, nil
}
