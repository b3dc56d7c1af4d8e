package room

import (
	"errors"
	"time"

	"room-booking-api/internal/pkg/timeutil"
)

var ErrInvalidWorkingHours = errors.New("working hours start must be before end")

// WorkingHours is a per-room time-of-day window in UTC. The values are stored
// as full timestamps, but only hour:minute is semantically meaningful; the
// date component is ignored on every comparison.
type WorkingHours struct {
	start time.Time
	end   time.Time
}

func NewWorkingHours(start, end time.Time) (WorkingHours, error) {
	if timeutil.MinutesFromMidnightUTC(start) >= timeutil.MinutesFromMidnightUTC(end) {
		return WorkingHours{}, ErrInvalidWorkingHours
	}
	return WorkingHours{start: start.UTC(), end: end.UTC()}, nil
}

func ReconstructWorkingHours(start, end time.Time) WorkingHours {
	return WorkingHours{start: start.UTC(), end: end.UTC()}
}

func (w WorkingHours) Start() time.Time { return w.start }
func (w WorkingHours) End() time.Time   { return w.end }

// Contains reports whether [start, end] lies within the window, comparing
// minutes-from-midnight only. The upper bound is inclusive: a reservation
// ending exactly at close is valid.
func (w WorkingHours) Contains(start, end time.Time) bool {
	s := timeutil.MinutesFromMidnightUTC(start)
	e := timeutil.MinutesFromMidnightUTC(end)
	opensAt := timeutil.MinutesFromMidnightUTC(w.start)
	closesAt := timeutil.MinutesFromMidnightUTC(w.end)

	return s >= opensAt && e <= closesAt
}
