package commands

import (
	"context"
	"time"

	"room-booking-api/internal/domain/reservation"
	"room-booking-api/internal/domain/room"
	"room-booking-api/internal/infra"
	"room-booking-api/internal/pkg/errs"
	"room-booking-api/internal/usecase/queries"
	"room-booking-api/internal/usecase/shared"
)

var (
	ErrRoomNotFound            = errs.New("room not found")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrInvalidTimeRange        = errs.New("invalid time range")
	ErrOutsideWorkingHours     = errs.New("reservation time is outside the room working hours")
	ErrReservationConflict     = errs.New("reservation overlaps with an existing reservation")
	ErrNotOwner                = errs.New("reservation belongs to another user")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateReservationParams struct {
	RoomID    int64
	UserID    int64
	StartTime time.Time
	EndTime   time.Time
}

type UpdateReservationParams struct {
	ReservationID int64
	RequesterID   int64
	StartTime     time.Time
	EndTime       time.Time
}

type ReservationCommands interface {
	Create(ctx context.Context, params CreateReservationParams) (*queries.ReservationView, error)
	UpdateTime(ctx context.Context, params UpdateReservationParams) (*queries.ReservationView, error)
	Delete(ctx context.Context, reservationID, requesterID int64) error
}

type reservationCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.ReservationReadStore
}

func NewReservationCommands(uow shared.UnitOfWork, readStore queries.ReservationReadStore) ReservationCommands {
	return &reservationCommandsImpl{
		uow:       uow,
		readStore: readStore,
	}
}

// Create runs the full validation chain and the insert inside one
// transaction: room lookup, working-hours check, conflict scan, write. The
// scan rejects overlaps it can see; the exclusion constraint on the
// reservations table rejects the ones it cannot (two in-flight requests), and
// that violation surfaces as the same conflict error.
func (c *reservationCommandsImpl) Create(ctx context.Context, params CreateReservationParams) (*queries.ReservationView, error) {
	slot, err := reservation.NewTimeSlot(params.StartTime, params.EndTime)
	if err != nil {
		return nil, ErrInvalidTimeRange
	}

	var createdID int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := c.validateAgainstRoom(ctx, tx, params.RoomID, slot, nil); err != nil {
			return err
		}

		id, err := tx.Reservations().Create(ctx, tx.DB(), reservation.NewReservation(params.RoomID, params.UserID, slot))
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrReservationConflict
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.findCreated(ctx, createdID)
}

// UpdateTime enforces ownership before any time validation: a requester who
// does not own the reservation learns nothing about whether the new range
// would have been legal.
func (c *reservationCommandsImpl) UpdateTime(ctx context.Context, params UpdateReservationParams) (*queries.ReservationView, error) {
	var updatedID int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := c.loadOwned(ctx, tx, params.ReservationID, params.RequesterID)
		if err != nil {
			return err
		}

		slot, err := reservation.NewTimeSlot(params.StartTime, params.EndTime)
		if err != nil {
			return ErrInvalidTimeRange
		}

		excludeID := existing.ID()
		if err := c.validateAgainstRoom(ctx, tx, existing.RoomID(), slot, &excludeID); err != nil {
			return err
		}

		existing.Reschedule(slot)
		if err := tx.Reservations().UpdateTimeSlot(ctx, tx.DB(), existing.ID(), existing.TimeSlot()); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrReservationConflict
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		updatedID = existing.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.findCreated(ctx, updatedID)
}

// Delete checks ownership only; no time or conflict validation applies.
func (c *reservationCommandsImpl) Delete(ctx context.Context, reservationID, requesterID int64) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := c.loadOwned(ctx, tx, reservationID, requesterID)
		if err != nil {
			return err
		}

		if err := tx.Reservations().Delete(ctx, tx.DB(), existing.ID()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// loadOwned hydrates the stored reservation and enforces the ownership rule
// before any other validation runs.
func (c *reservationCommandsImpl) loadOwned(ctx context.Context, tx shared.Tx, reservationID, requesterID int64) (*reservation.Reservation, error) {
	snap, err := tx.Reads().ReservationByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	existing := reservation.ReconstructReservation(snap.ID, snap.RoomID, snap.UserID,
		reservation.ReconstructTimeSlot(snap.StartTime, snap.EndTime))
	if !existing.IsOwnedBy(requesterID) {
		return nil, ErrNotOwner
	}
	return existing, nil
}

func (c *reservationCommandsImpl) validateAgainstRoom(ctx context.Context, tx shared.Tx, roomID int64, slot reservation.TimeSlot, excludeID *int64) error {
	roomSnap, err := tx.Reads().RoomByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRoomNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	hours := room.ReconstructWorkingHours(roomSnap.WorkingHoursStart, roomSnap.WorkingHoursEnd)
	if !hours.Contains(slot.Start(), slot.End()) {
		return ErrOutsideWorkingHours
	}

	conflict, err := tx.Reservations().FindOverlapping(ctx, tx.DB(), roomID, slot, excludeID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if conflict != nil {
		return ErrReservationConflict
	}

	return nil
}

// Read-after-write: return the full view from the read store after commit.
func (c *reservationCommandsImpl) findCreated(ctx context.Context, id int64) (*queries.ReservationView, error) {
	view, err := c.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
