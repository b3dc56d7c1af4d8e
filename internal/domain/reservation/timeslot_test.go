//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"room-booking-api/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotTime(h, m int) time.Time {
	return time.Date(2025, 6, 1, h, m, 0, 0, time.UTC)
}

func TestNewTimeSlot(t *testing.T) {
	t.Run("有効な範囲で生成できる", func(t *testing.T) {
		slot, err := reservation.NewTimeSlot(slotTime(9, 0), slotTime(10, 30))
		require.NoError(t, err)

		assert.Equal(t, slotTime(9, 0), slot.Start())
		assert.Equal(t, slotTime(10, 30), slot.End())
	})

	t.Run("開始と終了が同時刻はエラー", func(t *testing.T) {
		_, err := reservation.NewTimeSlot(slotTime(9, 0), slotTime(9, 0))
		assert.ErrorIs(t, err, reservation.ErrStartNotBeforeEnd)
	})

	t.Run("開始が終了より後はエラー", func(t *testing.T) {
		_, err := reservation.NewTimeSlot(slotTime(10, 0), slotTime(9, 0))
		assert.ErrorIs(t, err, reservation.ErrStartNotBeforeEnd)
	})

	t.Run("UTC日をまたぐ範囲はエラー", func(t *testing.T) {
		start := time.Date(2025, 6, 1, 23, 0, 0, 0, time.UTC)
		end := time.Date(2025, 6, 2, 1, 0, 0, 0, time.UTC)
		_, err := reservation.NewTimeSlot(start, end)
		assert.ErrorIs(t, err, reservation.ErrCrossDayRange)
	})

	t.Run("非UTCの入力はUTCに正規化される", func(t *testing.T) {
		jst := time.FixedZone("JST", 9*3600)
		slot, err := reservation.NewTimeSlot(
			time.Date(2025, 6, 1, 18, 0, 0, 0, jst),
			time.Date(2025, 6, 1, 19, 0, 0, 0, jst),
		)
		require.NoError(t, err)

		assert.Equal(t, time.UTC, slot.Start().Location())
		assert.Equal(t, slotTime(9, 0), slot.Start())
	})

	t.Run("ローカル時刻では同日でもUTCでまたぐ場合はエラー", func(t *testing.T) {
		jst := time.FixedZone("JST", 9*3600)
		// 08:00-10:00 JST on 06-02 crosses the UTC midnight boundary
		_, err := reservation.NewTimeSlot(
			time.Date(2025, 6, 2, 8, 0, 0, 0, jst),
			time.Date(2025, 6, 2, 10, 0, 0, 0, jst),
		)
		assert.ErrorIs(t, err, reservation.ErrCrossDayRange)
	})
}

func TestTimeSlotOverlaps(t *testing.T) {
	base, err := reservation.NewTimeSlot(slotTime(9, 0), slotTime(10, 0))
	require.NoError(t, err)

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"同一範囲", slotTime(9, 0), slotTime(10, 0), true},
		{"後半と重複", slotTime(9, 30), slotTime(10, 30), true},
		{"前半と重複", slotTime(8, 30), slotTime(9, 30), true},
		{"直後に隣接は重複なし", slotTime(10, 0), slotTime(11, 0), false},
		{"直前に隣接は重複なし", slotTime(8, 0), slotTime(9, 0), false},
		{"離れた範囲", slotTime(14, 0), slotTime(15, 0), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			other, err := reservation.NewTimeSlot(c.start, c.end)
			require.NoError(t, err)
			assert.Equal(t, c.want, base.Overlaps(other))
		})
	}
}

func TestTimeSlotToTstzrange(t *testing.T) {
	slot, err := reservation.NewTimeSlot(slotTime(9, 0), slotTime(10, 0))
	require.NoError(t, err)

	assert.Equal(t, "[2025-06-01T09:00:00Z,2025-06-01T10:00:00Z)", slot.ToTstzrange())
}
