package commands

import (
	"context"

	"room-booking-api/internal/domain/roomtype"
	"room-booking-api/internal/infra"
	"room-booking-api/internal/pkg/errs"
	"room-booking-api/internal/usecase/queries"
	"room-booking-api/internal/usecase/shared"
)

var (
	ErrInvalidRoomTypeInput  = errs.New("invalid room type input")
	ErrRoomTypeAlreadyExists = errs.New("a room type with this name already exists")
	ErrRoomTypeInUse         = errs.New("room type has rooms and cannot be deleted")
)

type RoomTypeCommands interface {
	Create(ctx context.Context, name string) (*queries.RoomTypeView, error)
	Update(ctx context.Context, id int64, name string) (*queries.RoomTypeView, error)
	Delete(ctx context.Context, id int64) error
}

type roomTypeCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.RoomTypeReadStore
}

func NewRoomTypeCommands(uow shared.UnitOfWork, readStore queries.RoomTypeReadStore) RoomTypeCommands {
	return &roomTypeCommandsImpl{uow: uow, readStore: readStore}
}

func (c *roomTypeCommandsImpl) Create(ctx context.Context, name string) (*queries.RoomTypeView, error) {
	entity, err := roomtype.NewRoomType(name)
	if err != nil {
		return nil, ErrInvalidRoomTypeInput
	}

	var createdID int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.RoomTypes().Create(ctx, tx.DB(), entity)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrRoomTypeAlreadyExists
			}
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

func (c *roomTypeCommandsImpl) Update(ctx context.Context, id int64, name string) (*queries.RoomTypeView, error) {
	entity, err := roomtype.NewRoomType(name)
	if err != nil {
		return nil, ErrInvalidRoomTypeInput
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().RoomTypeByID(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomTypeNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := tx.RoomTypes().Update(ctx, tx.DB(), id, entity); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrRoomTypeAlreadyExists
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.findByID(ctx, id)
}

func (c *roomTypeCommandsImpl) Delete(ctx context.Context, id int64) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().RoomTypeByID(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomTypeNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := tx.RoomTypes().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrRoomTypeInUse
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *roomTypeCommandsImpl) findByID(ctx context.Context, id int64) (*queries.RoomTypeView, error) {
	view, err := c.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
