package commands

import (
	"context"

	"room-booking-api/internal/domain/building"
	"room-booking-api/internal/infra"
	"room-booking-api/internal/pkg/errs"
	"room-booking-api/internal/usecase/queries"
	"room-booking-api/internal/usecase/shared"
)

var (
	ErrInvalidBuildingInput = errs.New("invalid building input")
	ErrBuildingInUse        = errs.New("building has rooms and cannot be deleted")
)

type BuildingParams struct {
	Name    string
	Address string
}

type BuildingCommands interface {
	Create(ctx context.Context, params BuildingParams) (*queries.BuildingView, error)
	Update(ctx context.Context, id int64, params BuildingParams) (*queries.BuildingView, error)
	Delete(ctx context.Context, id int64) error
}

type buildingCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.BuildingReadStore
}

func NewBuildingCommands(uow shared.UnitOfWork, readStore queries.BuildingReadStore) BuildingCommands {
	return &buildingCommandsImpl{uow: uow, readStore: readStore}
}

func (c *buildingCommandsImpl) Create(ctx context.Context, params BuildingParams) (*queries.BuildingView, error) {
	entity, err := building.NewBuilding(params.Name, params.Address)
	if err != nil {
		return nil, ErrInvalidBuildingInput
	}

	var createdID int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Buildings().Create(ctx, tx.DB(), entity)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.findByID(ctx, createdID)
}

func (c *buildingCommandsImpl) Update(ctx context.Context, id int64, params BuildingParams) (*queries.BuildingView, error) {
	entity, err := building.NewBuilding(params.Name, params.Address)
	if err != nil {
		return nil, ErrInvalidBuildingInput
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().BuildingByID(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBuildingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := tx.Buildings().Update(ctx, tx.DB(), id, entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.findByID(ctx, id)
}

func (c *buildingCommandsImpl) Delete(ctx context.Context, id int64) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().BuildingByID(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBuildingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := tx.Buildings().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrBuildingInUse
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *buildingCommandsImpl) findByID(ctx context.Context, id int64) (*queries.BuildingView, error) {
	view, err := c.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
