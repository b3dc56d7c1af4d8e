//go:build unit

package timeutil_test

import (
	"testing"
	"time"

	"room-booking-api/internal/pkg/timeutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayRangeUTC(t *testing.T) {
	t.Run("有効な日付で1日分の範囲を返す", func(t *testing.T) {
		from, to, err := timeutil.DayRangeUTC("2025-03-15")
		require.NoError(t, err)

		assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2025, 3, 15, 23, 59, 59, 999_000_000, time.UTC), to)
	})

	t.Run("範囲は常にUTC", func(t *testing.T) {
		from, to, err := timeutil.DayRangeUTC("2025-12-31")
		require.NoError(t, err)

		assert.Equal(t, time.UTC, from.Location())
		assert.Equal(t, time.UTC, to.Location())
	})

	t.Run("形式不正はエラー", func(t *testing.T) {
		invalid := []string{
			"",
			"2025/03/15",
			"15-03-2025",
			"2025-3-15",
			"2025-03-15T00:00:00Z",
			"not-a-date",
		}
		for _, s := range invalid {
			_, _, err := timeutil.DayRangeUTC(s)
			assert.ErrorIs(t, err, timeutil.ErrInvalidDateOnly, "input: %q", s)
		}
	})

	t.Run("存在しない日付はエラー", func(t *testing.T) {
		_, _, err := timeutil.DayRangeUTC("2025-02-30")
		assert.ErrorIs(t, err, timeutil.ErrInvalidDateOnly)
	})
}

func TestMinutesFromMidnightUTC(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want int
	}{
		{"真夜中", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 0},
		{"午前9時", time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC), 540},
		{"9時30分", time.Date(2025, 1, 1, 9, 30, 0, 0, time.UTC), 570},
		{"23時59分", time.Date(2025, 1, 1, 23, 59, 0, 0, time.UTC), 1439},
		{"非UTCタイムゾーンはUTCに変換", time.Date(2025, 1, 1, 9, 0, 0, 0, time.FixedZone("JST", 9*3600)), 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, timeutil.MinutesFromMidnightUTC(c.in))
		})
	}
}

func TestOverlaps(t *testing.T) {
	day := func(h, m int) time.Time {
		return time.Date(2025, 6, 1, h, m, 0, 0, time.UTC)
	}

	cases := []struct {
		name string
		a    [2]time.Time
		b    [2]time.Time
		want bool
	}{
		{"完全一致", [2]time.Time{day(9, 0), day(10, 0)}, [2]time.Time{day(9, 0), day(10, 0)}, true},
		{"部分重複", [2]time.Time{day(9, 0), day(10, 0)}, [2]time.Time{day(9, 30), day(10, 30)}, true},
		{"包含", [2]time.Time{day(9, 0), day(12, 0)}, [2]time.Time{day(10, 0), day(11, 0)}, true},
		{"終端と始端が接するのは重複なし", [2]time.Time{day(9, 0), day(9, 30)}, [2]time.Time{day(9, 30), day(10, 0)}, false},
		{"始端と終端が接するのは重複なし", [2]time.Time{day(9, 30), day(10, 0)}, [2]time.Time{day(9, 0), day(9, 30)}, false},
		{"完全に分離", [2]time.Time{day(9, 0), day(10, 0)}, [2]time.Time{day(14, 0), day(15, 0)}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := timeutil.Overlaps(c.a[0], c.a[1], c.b[0], c.b[1])
			assert.Equal(t, c.want, got)

			// Overlap is symmetric
			assert.Equal(t, c.want, timeutil.Overlaps(c.b[0], c.b[1], c.a[0], c.a[1]))
		})
	}
}

func TestSameUTCDay(t *testing.T) {
	t.Run("同じUTC日", func(t *testing.T) {
		a := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		b := time.Date(2025, 6, 1, 23, 59, 59, 0, time.UTC)
		assert.True(t, timeutil.SameUTCDay(a, b))
	})

	t.Run("日をまたぐ", func(t *testing.T) {
		a := time.Date(2025, 6, 1, 23, 0, 0, 0, time.UTC)
		b := time.Date(2025, 6, 2, 1, 0, 0, 0, time.UTC)
		assert.False(t, timeutil.SameUTCDay(a, b))
	})

	t.Run("ローカル時刻では同日でもUTCで判定", func(t *testing.T) {
		jst := time.FixedZone("JST", 9*3600)
		// Both 2025-06-02 in JST, but 06-01 vs 06-02 in UTC
		a := time.Date(2025, 6, 2, 8, 0, 0, 0, jst)
		b := time.Date(2025, 6, 2, 10, 0, 0, 0, jst)
		assert.False(t, timeutil.SameUTCDay(a, b))
	})
}
