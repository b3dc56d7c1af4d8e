package queries

import (
	"context"
	"time"

	"room-booking-api/internal/infra"
	"room-booking-api/internal/pkg/clock"
	"room-booking-api/internal/pkg/errs"
	"room-booking-api/internal/pkg/timeutil"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrInvalidDate         = errs.New("date is required in format YYYY-MM-DD")
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id int64) (*ReservationView, error)
	// FindByRoomWithinRange returns reservations for the room whose start time
	// falls inside [from, to], ascending by start time.
	FindByRoomWithinRange(ctx context.Context, roomID int64, from, to time.Time) ([]*ReservationView, error)
	// FindUpcomingByUser returns the user's reservations with end time after
	// now, ascending by start time.
	FindUpcomingByUser(ctx context.Context, userID int64, now time.Time) ([]*ReservationView, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id int64) (*ReservationView, error)
	ListByRoomAndDate(ctx context.Context, roomID int64, dateOnly string) ([]*ReservationView, error)
	ListMyUpcoming(ctx context.Context, userID int64) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
	clock     clock.Clock
}

func NewReservationQueries(readStore ReservationReadStore, clock clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{
		readStore: readStore,
		clock:     clock,
	}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id int64) (*ReservationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Wrap(err, "failed to find reservation")
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByRoomAndDate(ctx context.Context, roomID int64, dateOnly string) ([]*ReservationView, error) {
	from, to, err := timeutil.DayRangeUTC(dateOnly)
	if err != nil {
		return nil, ErrInvalidDate
	}

	views, err := q.readStore.FindByRoomWithinRange(ctx, roomID, from, to)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list reservations by room and date")
	}
	return views, nil
}

func (q *reservationQueriesImpl) ListMyUpcoming(ctx context.Context, userID int64) ([]*ReservationView, error) {
	views, err := q.readStore.FindUpcomingByUser(ctx, userID, q.clock.Now())
	if err != nil {
		return nil, errs.Wrap(err, "failed to list upcoming reservations")
	}
	return views, nil
}
