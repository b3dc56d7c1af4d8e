// Package timeutil holds the pure time-range helpers the reservation engine
// is built on. All computations are UTC-only; working-hours comparisons reduce
// instants to minutes-from-midnight and ignore the date component entirely.
package timeutil

import (
	"regexp"
	"time"

	"room-booking-api/internal/pkg/errs"
)

var ErrInvalidDateOnly = errs.New("date must be in format YYYY-MM-DD")

// strict YYYY-MM-DD
var dateOnlyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// DayRangeUTC parses a strict YYYY-MM-DD string into the inclusive UTC
// instants for 00:00:00.000 and 23:59:59.999 of that calendar day.
func DayRangeUTC(dateOnly string) (time.Time, time.Time, error) {
	if !dateOnlyPattern.MatchString(dateOnly) {
		return time.Time{}, time.Time{}, ErrInvalidDateOnly
	}

	start, err := time.ParseInLocation(time.DateOnly, dateOnly, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateOnly
	}

	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end, nil
}

// MinutesFromMidnightUTC returns hours*60+minutes of t in UTC, in [0, 1440).
func MinutesFromMidnightUTC(t time.Time) int {
	utc := t.UTC()
	return utc.Hour()*60 + utc.Minute()
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
// Half-open semantics: ranges that only touch at a boundary do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// SameUTCDay reports whether a and b fall on the same UTC calendar day.
func SameUTCDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
