//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"room-booking-api/internal/pkg/clock"
	"room-booking-api/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReservationReadStore struct {
	views   []*queries.ReservationView
	gotFrom time.Time
	gotTo   time.Time
}

func (s *stubReservationReadStore) FindByID(context.Context, int64) (*queries.ReservationView, error) {
	return nil, nil
}

func (s *stubReservationReadStore) FindByRoomWithinRange(_ context.Context, _ int64, from, to time.Time) ([]*queries.ReservationView, error) {
	s.gotFrom = from
	s.gotTo = to
	return s.views, nil
}

func (s *stubReservationReadStore) FindUpcomingByUser(context.Context, int64, time.Time) ([]*queries.ReservationView, error) {
	return nil, nil
}

func TestListByRoomAndDate(t *testing.T) {
	ctx := context.Background()

	t.Run("不正な日付形式はエラー", func(t *testing.T) {
		q := queries.NewReservationQueries(&stubReservationReadStore{}, clock.NewRealClock())

		for _, date := range []string{"", "2025/06/10", "2025-6-1", "10-06-2025"} {
			_, err := q.ListByRoomAndDate(ctx, 1, date)
			assert.ErrorIs(t, err, queries.ErrInvalidDate, "input: %q", date)
		}
	})

	t.Run("日付はUTC日の全範囲に展開される", func(t *testing.T) {
		store := &stubReservationReadStore{}
		q := queries.NewReservationQueries(store, clock.NewRealClock())

		_, err := q.ListByRoomAndDate(ctx, 1, "2025-06-10")
		require.NoError(t, err)

		assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), store.gotFrom)
		assert.Equal(t, time.Date(2025, 6, 10, 23, 59, 59, 999_000_000, time.UTC), store.gotTo)
	})
}
