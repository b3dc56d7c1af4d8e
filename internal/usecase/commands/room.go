package commands

import (
	"context"
	"time"

	"room-booking-api/internal/domain/room"
	"room-booking-api/internal/infra"
	"room-booking-api/internal/pkg/errs"
	"room-booking-api/internal/usecase/queries"
	"room-booking-api/internal/usecase/shared"
)

var (
	ErrBuildingNotFound = errs.New("building not found")
	ErrRoomTypeNotFound = errs.New("room type not found")
	ErrInvalidRoomInput = errs.New("invalid room input")
	ErrRoomInUse        = errs.New("room has reservations and cannot be deleted")
)

type RoomParams struct {
	Name              string
	Capacity          int32
	BuildingID        int64
	RoomTypeID        int64
	WorkingHoursStart time.Time
	WorkingHoursEnd   time.Time
}

type RoomCommands interface {
	Create(ctx context.Context, params RoomParams) (*queries.RoomView, error)
	Update(ctx context.Context, id int64, params RoomParams) (*queries.RoomView, error)
	Delete(ctx context.Context, id int64) error
}

type roomCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.RoomReadStore
}

func NewRoomCommands(uow shared.UnitOfWork, readStore queries.RoomReadStore) RoomCommands {
	return &roomCommandsImpl{uow: uow, readStore: readStore}
}

func (c *roomCommandsImpl) Create(ctx context.Context, params RoomParams) (*queries.RoomView, error) {
	entity, err := c.toDomain(params)
	if err != nil {
		return nil, err
	}

	var createdID int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := c.validateReferences(ctx, tx, params); err != nil {
			return err
		}

		id, err := tx.Rooms().Create(ctx, tx.DB(), entity)
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

func (c *roomCommandsImpl) Update(ctx context.Context, id int64, params RoomParams) (*queries.RoomView, error) {
	entity, err := c.toDomain(params)
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().RoomByID(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := c.validateReferences(ctx, tx, params); err != nil {
			return err
		}

		if err := tx.Rooms().Update(ctx, tx.DB(), id, entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.findByID(ctx, id)
}

func (c *roomCommandsImpl) Delete(ctx context.Context, id int64) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().RoomByID(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := tx.Rooms().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrRoomInUse
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *roomCommandsImpl) validateReferences(ctx context.Context, tx shared.Tx, params RoomParams) error {
	if _, err := tx.Reads().BuildingByID(ctx, params.BuildingID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBuildingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if _, err := tx.Reads().RoomTypeByID(ctx, params.RoomTypeID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRoomTypeNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return nil
}

func (c *roomCommandsImpl) toDomain(params RoomParams) (*room.Room, error) {
	hours, err := room.NewWorkingHours(params.WorkingHoursStart, params.WorkingHoursEnd)
	if err != nil {
		return nil, ErrInvalidRoomInput
	}

	entity, err := room.NewRoom(params.Name, params.Capacity, params.BuildingID, params.RoomTypeID, hours)
	if err != nil {
		return nil, ErrInvalidRoomInput
	}
	return entity, nil
}

func (c *roomCommandsImpl) findByID(ctx context.Context, id int64) (*queries.RoomView, error) {
	view, err := c.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
