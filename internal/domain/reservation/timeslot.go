package reservation

import (
	"errors"
	"fmt"
	"time"

	"room-booking-api/internal/pkg/timeutil"
)

var (
	ErrStartNotBeforeEnd = errors.New("start time must be before end time")
	ErrCrossDayRange     = errors.New("start and end times must fall on the same UTC day")
)

// TimeSlot is a validated half-open interval [start, end). Construction
// enforces the ordering and same-UTC-day invariants; working-hours and
// overlap checks happen against stored state in the lifecycle commands.
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrStartNotBeforeEnd
	}
	if !timeutil.SameUTCDay(start, end) {
		return TimeSlot{}, ErrCrossDayRange
	}

	return TimeSlot{
		start: start.UTC(),
		end:   end.UTC(),
	}, nil
}

func ReconstructTimeSlot(start, end time.Time) TimeSlot {
	return TimeSlot{start: start.UTC(), end: end.UTC()}
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

// Overlaps uses half-open semantics: slots that only touch at a boundary
// (09:00-09:30 and 09:30-10:00) do not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return timeutil.Overlaps(ts.start, ts.end, other.start, other.end)
}

// ToTstzrange renders the slot as the half-open range literal the storage
// layer compares against.
func (ts TimeSlot) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}
