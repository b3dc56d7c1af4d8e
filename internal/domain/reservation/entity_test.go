//go:build unit

package reservation_test

import (
	"testing"

	"room-booking-api/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationIsOwnedBy(t *testing.T) {
	slot := reservation.ReconstructTimeSlot(slotTime(10, 0), slotTime(11, 0))
	res := reservation.ReconstructReservation(1, 2, 100, slot)

	t.Run("作成したユーザーが所有者", func(t *testing.T) {
		assert.True(t, res.IsOwnedBy(100))
	})

	t.Run("別のユーザーは所有者ではない", func(t *testing.T) {
		assert.False(t, res.IsOwnedBy(200))
	})
}

func TestReservationReschedule(t *testing.T) {
	original := reservation.ReconstructTimeSlot(slotTime(10, 0), slotTime(11, 0))
	res := reservation.ReconstructReservation(1, 2, 100, original)

	moved, err := reservation.NewTimeSlot(slotTime(14, 0), slotTime(15, 0))
	require.NoError(t, err)

	res.Reschedule(moved)

	assert.Equal(t, slotTime(14, 0), res.TimeSlot().Start())
	assert.Equal(t, slotTime(15, 0), res.TimeSlot().End())

	// Identity and ownership are untouched by a reschedule
	assert.Equal(t, int64(1), res.ID())
	assert.True(t, res.IsOwnedBy(100))
}
