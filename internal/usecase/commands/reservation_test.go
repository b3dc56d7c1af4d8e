//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"room-booking-api/internal/domain/reservation"
	"room-booking-api/internal/infra"
	"room-booking-api/internal/infra/db"
	"room-booking-api/internal/pkg/timeutil"
	"room-booking-api/internal/usecase/commands"
	"room-booking-api/internal/usecase/queries"
	"room-booking-api/internal/usecase/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory stand-in for the Postgres unit of work. Write paths and command
// reads share one state map so the validation chain sees its own writes.
type fakeStore struct {
	rooms        map[int64]*shared.RoomSnapshot
	reservations map[int64]*shared.ReservationSnapshot
	nextID       int64

	// When true, Create fails the way a violated exclusion constraint does,
	// regardless of what the conflict scan saw.
	raceOnCreate bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rooms:        make(map[int64]*shared.RoomSnapshot),
		reservations: make(map[int64]*shared.ReservationSnapshot),
		nextID:       1,
	}
}

func (s *fakeStore) addRoom(id int64, openHour, closeHour int) {
	s.rooms[id] = &shared.RoomSnapshot{
		ID:                id,
		Capacity:          10,
		WorkingHoursStart: time.Date(2025, 1, 1, openHour, 0, 0, 0, time.UTC),
		WorkingHoursEnd:   time.Date(2025, 1, 1, closeHour, 0, 0, 0, time.UTC),
	}
}

func (s *fakeStore) addReservation(roomID, userID int64, start, end time.Time) int64 {
	id := s.nextID
	s.nextID++
	s.reservations[id] = &shared.ReservationSnapshot{
		ID: id, RoomID: roomID, UserID: userID, StartTime: start, EndTime: end,
	}
	return id
}

type fakeUoW struct {
	store *fakeStore
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{store: u.store}
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Reservations() shared.ReservationRepository { return &fakeReservationRepo{t.store} }
func (t *fakeTx) Rooms() shared.RoomRepository               { return nil }
func (t *fakeTx) Buildings() shared.BuildingRepository       { return nil }
func (t *fakeTx) RoomTypes() shared.RoomTypeRepository       { return nil }
func (t *fakeTx) Users() shared.UserRepository               { return nil }
func (t *fakeTx) Reads() shared.CommandReads                 { return &fakeReads{store: t.store} }
func (t *fakeTx) DB() db.DBTX                                { return nil }

type fakeReads struct {
	store *fakeStore
}

func (r *fakeReads) RoomByID(_ context.Context, id int64) (*shared.RoomSnapshot, error) {
	room, ok := r.store.rooms[id]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return room, nil
}

func (r *fakeReads) ReservationByID(_ context.Context, id int64) (*shared.ReservationSnapshot, error) {
	res, ok := r.store.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return res, nil
}

func (r *fakeReads) BuildingByID(_ context.Context, _ int64) (*shared.BuildingSnapshot, error) {
	return nil, infra.WrapRepoErr("building not found", nil, infra.KindNotFound)
}

func (r *fakeReads) RoomTypeByID(_ context.Context, _ int64) (*shared.RoomTypeSnapshot, error) {
	return nil, infra.WrapRepoErr("room type not found", nil, infra.KindNotFound)
}

type fakeReservationRepo struct {
	store *fakeStore
}

func (f *fakeReservationRepo) Create(_ context.Context, _ db.DBTX, res *reservation.Reservation) (int64, error) {
	if f.store.raceOnCreate {
		return 0, infra.WrapRepoErr("failed to create reservation", nil, infra.KindConflict)
	}
	id := f.store.addReservation(res.RoomID(), res.UserID(), res.TimeSlot().Start(), res.TimeSlot().End())
	return id, nil
}

func (f *fakeReservationRepo) UpdateTimeSlot(_ context.Context, _ db.DBTX, id int64, slot reservation.TimeSlot) error {
	res, ok := f.store.reservations[id]
	if !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	res.StartTime = slot.Start()
	res.EndTime = slot.End()
	return nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, _ db.DBTX, id int64) error {
	if _, ok := f.store.reservations[id]; !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	delete(f.store.reservations, id)
	return nil
}

func (f *fakeReservationRepo) FindOverlapping(_ context.Context, _ db.DBTX, roomID int64, slot reservation.TimeSlot, excludeID *int64) (*shared.ReservationSnapshot, error) {
	for _, res := range f.store.reservations {
		if res.RoomID != roomID {
			continue
		}
		if excludeID != nil && res.ID == *excludeID {
			continue
		}
		if timeutil.Overlaps(res.StartTime, res.EndTime, slot.Start(), slot.End()) {
			return res, nil
		}
	}
	return nil, nil
}

type fakeReservationReadStore struct {
	store *fakeStore
}

func (f *fakeReservationReadStore) FindByID(_ context.Context, id int64) (*queries.ReservationView, error) {
	res, ok := f.store.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return &queries.ReservationView{
		ID:        res.ID,
		RoomID:    res.RoomID,
		UserID:    res.UserID,
		StartTime: res.StartTime,
		EndTime:   res.EndTime,
	}, nil
}

func (f *fakeReservationReadStore) FindByRoomWithinRange(_ context.Context, roomID int64, from, to time.Time) ([]*queries.ReservationView, error) {
	return nil, nil
}

func (f *fakeReservationReadStore) FindUpcomingByUser(_ context.Context, userID int64, now time.Time) ([]*queries.ReservationView, error) {
	return nil, nil
}

func newCommands(store *fakeStore) commands.ReservationCommands {
	return commands.NewReservationCommands(&fakeUoW{store: store}, &fakeReservationReadStore{store: store})
}

func at(h, m int) time.Time {
	return time.Date(2025, 6, 10, h, m, 0, 0, time.UTC)
}

const (
	roomID  = int64(1)
	ownerID = int64(100)
	otherID = int64(200)
)

func TestReservationCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("営業時間内で衝突がなければ作成できる", func(t *testing.T) {
		store := newFakeStore()
		store.addRoom(roomID, 9, 18)

		view, err := newCommands(store).Create(ctx, commands.CreateReservationParams{
			RoomID: roomID, UserID: ownerID, StartTime: at(10, 0), EndTime: at(11, 0),
		})
		require.NoError(t, err)

		want := &queries.ReservationView{
			ID:        1,
			RoomID:    roomID,
			UserID:    ownerID,
			StartTime: at(10, 0),
			EndTime:   at(11, 0),
		}
		assert.Empty(t, cmp.Diff(want, view))
		assert.Len(t, store.reservations, 1)
	})

	t.Run("営業時間の全幅を占有する予約は作成できる", func(t *testing.T) {
		store := newFakeStore()
		store.addRoom(roomID, 9, 18)

		_, err := newCommands(store).Create(ctx, commands.CreateReservationParams{
			RoomID: roomID, UserID: ownerID, StartTime: at(9, 0), EndTime: at(18, 0),
		})
		assert.NoError(t, err)
	})

	t.Run("存在しない部屋はエラー", func(t *testing.T) {
		store := newFakeStore()

		_, err := newCommands(store).Create(ctx, commands.CreateReservationParams{
			RoomID: 999, UserID: ownerID, StartTime: at(10, 0), EndTime: at(11, 0),
		})
		assert.ErrorIs(t, err, commands.ErrRoomNotFound)
	})

	t.Run("開始が終了以降はエラー", func(t *testing.T) {
		store := newFakeStore()
		store.addRoom(roomID, 9, 18)

		_, err := newCommands(store).Create(ctx, commands.CreateReservationParams{
			RoomID: roomID, UserID: ownerID, StartTime: at(11, 0), EndTime: at(10, 0),
		})
		assert.ErrorIs(t, err, commands.ErrInvalidTimeRange)
	})

	t.Run("UTC日をまたぐ範囲はエラー", func(t *testing.T) {
		store := newFakeStore()
		store.addRoom(roomID, 0, 23)

		_, err := newCommands(store).Create(ctx, commands.CreateReservationParams{
			RoomID: roomID, UserID: ownerID,
			StartTime: time.Date(2025, 6, 10, 23, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2025, 6, 11, 1, 0, 0, 0, time.UTC),
		})
		assert.ErrorIs(t, err, commands.ErrInvalidTimeRange)
	})

	t.Run("営業時間外はエラー", func(t *testing.T) {
		store := newFakeStore()
		store.addRoom(roomID, 9, 18)

		cases := []struct {
			name  string
			start time.Time
			end   time.Time
		}{
			{"開店前に開始", at(8, 30), at(10, 0)},
			{"閉店後に終了", at(17, 30), at(18, 30)},
			{"完全に時間外", at(19, 0), at(20, 0)},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := newCommands(store).Create(ctx, commands.CreateReservationParams{
					RoomID: roomID, UserID: ownerID, StartTime: c.start, EndTime: c.end,
				})
				assert.ErrorIs(t, err, commands.ErrOutsideWorkingHours)
			})
		}
	})

	t.Run("既存予約と重複する場合はエラー", func(t *testing.T) {
		store := newFakeStore()
		store.addRoom(roomID, 9, 18)
		store.addReservation(roomID, otherID, at(10, 0), at(11, 0))

		_, err := newCommands(store).Create(ctx, commands.CreateReservationParams{
			RoomID: roomID, UserID: ownerID, StartTime: at(10, 30), EndTime: at(11, 30),
		})
		assert.ErrorIs(t, err, commands.ErrReservationConflict)
	})

	t.Run("既存予約の直後に隣接する予約は作成できる", func(t *testing.T) {
		store := newFakeStore()
		store.addRoom(roomID, 9, 18)
		store.addReservation(roomID, otherID, at(10, 0), at(11, 0))

		_, err := newCommands(store).Create(ctx, commands.CreateReservationParams{
			RoomID: roomID, UserID: ownerID, StartTime: at(11, 0), EndTime: at(12, 0),
		})
		assert.NoError(t, err)
	})

	t.Run("別の部屋の予約とは衝突しない", func(t *testing.T) {
		store := newFakeStore()
		store.addRoom(roomID, 9, 18)
		store.addRoom(2, 9, 18)
		store.addReservation(2, otherID, at(10, 0), at(11, 0))

		_, err := newCommands(store).Create(ctx, commands.CreateReservationParams{
			RoomID: roomID, UserID: ownerID, StartTime: at(10, 0), EndTime: at(11, 0),
		})
		assert.NoError(t, err)
	})

	t.Run("ストレージ層の排他制約違反も衝突エラーになる", func(t *testing.T) {
		store := newFakeStore()
		store.addRoom(roomID, 9, 18)
		store.raceOnCreate = true

		_, err := newCommands(store).Create(ctx, commands.CreateReservationParams{
			RoomID: roomID, UserID: ownerID, StartTime: at(10, 0), EndTime: at(11, 0),
		})
		assert.ErrorIs(t, err, commands.ErrReservationConflict)
	})
}

func TestReservationCommands_UpdateTime(t *testing.T) {
	ctx := context.Background()

	t.Run("所有者は時間を変更できる", func(t *testing.T) {
		store := newFakeStore()
		store.addRoom(roomID, 9, 18)
		id := store.addReservation(roomID, ownerID, at(10, 0), at(11, 0))

		view, err := newCommands(store).UpdateTime(ctx, commands.UpdateReservationParams{
			ReservationID: id, RequesterID: ownerID, StartTime: at(14, 0), EndTime: at(15, 0),
		})
		require.NoError(t, err)

		assert.Equal(t, at(14, 0), view.StartTime)
		assert.Equal(t, at(15, 0), view.EndTime)
	})

	t.Run("存在しない予約はエラー", func(t *testing.T) {
		store := newFakeStore()
		store.addRoom(roomID, 9, 18)

		_, err := newCommands(store).UpdateTime(ctx, commands.UpdateReservationParams{
			ReservationID: 999, RequesterID: ownerID, StartTime: at(14, 0), EndTime: at(15, 0),
		})
		assert.ErrorIs(t, err, commands.ErrReservationNotFound)
	})

	t.Run("他人の予約は変更できない", func(t *testing.T) {
		store := newFakeStore()
		store.addRoom(roomID, 9, 18)
		id := store.addReservation(roomID, ownerID, at(10, 0), at(11, 0))

		_, err := newCommands(store).UpdateTime(ctx, commands.UpdateReservationParams{
			ReservationID: id, RequesterID: otherID, StartTime: at(14, 0), EndTime: at(15, 0),
		})
		assert.ErrorIs(t, err, commands.ErrNotOwner)
	})

	t.Run("所有権チェックは時間検証より先", func(t *testing.T) {
		store := newFakeStore()
		store.addRoom(roomID, 9, 18)
		id := store.addReservation(roomID, ownerID, at(10, 0), at(11, 0))

		// Invalid range AND wrong owner: the owner error must win
		_, err := newCommands(store).UpdateTime(ctx, commands.UpdateReservationParams{
			ReservationID: id, RequesterID: otherID, StartTime: at(15, 0), EndTime: at(14, 0),
		})
		assert.ErrorIs(t, err, commands.ErrNotOwner)
	})

	t.Run("所有者でも不正な時間範囲はエラー", func(t *testing.T) {
		store := newFakeStore()
		store.addRoom(roomID, 9, 18)
		id := store.addReservation(roomID, ownerID, at(10, 0), at(11, 0))

		_, err := newCommands(store).UpdateTime(ctx, commands.UpdateReservationParams{
			ReservationID: id, RequesterID: ownerID, StartTime: at(15, 0), EndTime: at(14, 0),
		})
		assert.ErrorIs(t, err, commands.ErrInvalidTimeRange)
	})

	t.Run("自分自身の現在の時間帯とは衝突しない", func(t *testing.T) {
		store := newFakeStore()
		store.addRoom(roomID, 9, 18)
		id := store.addReservation(roomID, ownerID, at(10, 0), at(12, 0))

		// Shrink within the original window; the conflict scan must exclude self
		_, err := newCommands(store).UpdateTime(ctx, commands.UpdateReservationParams{
			ReservationID: id, RequesterID: ownerID, StartTime: at(10, 30), EndTime: at(11, 30),
		})
		assert.NoError(t, err)
	})

	t.Run("他の予約と重複する変更はエラー", func(t *testing.T) {
		store := newFakeStore()
		store.addRoom(roomID, 9, 18)
		id := store.addReservation(roomID, ownerID, at(10, 0), at(11, 0))
		store.addReservation(roomID, otherID, at(14, 0), at(15, 0))

		_, err := newCommands(store).UpdateTime(ctx, commands.UpdateReservationParams{
			ReservationID: id, RequesterID: ownerID, StartTime: at(14, 30), EndTime: at(15, 30),
		})
		assert.ErrorIs(t, err, commands.ErrReservationConflict)
	})

	t.Run("営業時間外への変更はエラー", func(t *testing.T) {
		store := newFakeStore()
		store.addRoom(roomID, 9, 18)
		id := store.addReservation(roomID, ownerID, at(10, 0), at(11, 0))

		_, err := newCommands(store).UpdateTime(ctx, commands.UpdateReservationParams{
			ReservationID: id, RequesterID: ownerID, StartTime: at(18, 0), EndTime: at(19, 0),
		})
		assert.ErrorIs(t, err, commands.ErrOutsideWorkingHours)
	})
}

func TestReservationCommands_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("所有者は削除できる", func(t *testing.T) {
		store := newFakeStore()
		store.addRoom(roomID, 9, 18)
		id := store.addReservation(roomID, ownerID, at(10, 0), at(11, 0))

		err := newCommands(store).Delete(ctx, id, ownerID)
		require.NoError(t, err)
		assert.Empty(t, store.reservations)
	})

	t.Run("存在しない予約はエラー", func(t *testing.T) {
		store := newFakeStore()

		err := newCommands(store).Delete(ctx, 999, ownerID)
		assert.ErrorIs(t, err, commands.ErrReservationNotFound)
	})

	t.Run("他人の予約は削除できない", func(t *testing.T) {
		store := newFakeStore()
		store.addRoom(roomID, 9, 18)
		id := store.addReservation(roomID, ownerID, at(10, 0), at(11, 0))

		err := newCommands(store).Delete(ctx, id, otherID)
		assert.ErrorIs(t, err, commands.ErrNotOwner)
		assert.Len(t, store.reservations, 1)
	})
}
