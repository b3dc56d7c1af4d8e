package queries

import (
	"context"

	"room-booking-api/internal/infra"
	"room-booking-api/internal/pkg/errs"
)

var ErrBuildingNotFound = errs.New("building not found")

type BuildingReadStore interface {
	FindByID(ctx context.Context, id int64) (*BuildingView, error)
	FindAll(ctx context.Context) ([]*BuildingView, error)
}

type BuildingQueries interface {
	GetByID(ctx context.Context, id int64) (*BuildingView, error)
	List(ctx context.Context) ([]*BuildingView, error)
}

type buildingQueriesImpl struct {
	readStore BuildingReadStore
}

func NewBuildingQueries(readStore BuildingReadStore) BuildingQueries {
	return &buildingQueriesImpl{readStore: readStore}
}

func (q *buildingQueriesImpl) GetByID(ctx context.Context, id int64) (*BuildingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBuildingNotFound
		}
		return nil, errs.Wrap(err, "failed to find building")
	}
	return view, nil
}

func (q *buildingQueriesImpl) List(ctx context.Context) ([]*BuildingView, error) {
	views, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list buildings")
	}
	return views, nil
}
