//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"room-booking-api/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
)

// Invalid input is rejected before any storage access, so the commands are
// constructed without their dependencies here.

func TestRoomCommands_InvalidInput(t *testing.T) {
	ctx := context.Background()
	opensAt := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	closesAt := time.Date(2025, 1, 1, 18, 0, 0, 0, time.UTC)

	t.Run("空の部屋名はエラー", func(t *testing.T) {
		_, err := commands.NewRoomCommands(nil, nil).Create(ctx, commands.RoomParams{
			Name: "", Capacity: 10, BuildingID: 1, RoomTypeID: 1,
			WorkingHoursStart: opensAt, WorkingHoursEnd: closesAt,
		})
		assert.ErrorIs(t, err, commands.ErrInvalidRoomInput)
	})

	t.Run("ゼロ以下の定員はエラー", func(t *testing.T) {
		_, err := commands.NewRoomCommands(nil, nil).Create(ctx, commands.RoomParams{
			Name: "Conference Room A", Capacity: 0, BuildingID: 1, RoomTypeID: 1,
			WorkingHoursStart: opensAt, WorkingHoursEnd: closesAt,
		})
		assert.ErrorIs(t, err, commands.ErrInvalidRoomInput)
	})

	t.Run("逆転した営業時間はエラー", func(t *testing.T) {
		_, err := commands.NewRoomCommands(nil, nil).Update(ctx, 1, commands.RoomParams{
			Name: "Conference Room A", Capacity: 10, BuildingID: 1, RoomTypeID: 1,
			WorkingHoursStart: closesAt, WorkingHoursEnd: opensAt,
		})
		assert.ErrorIs(t, err, commands.ErrInvalidRoomInput)
	})
}

func TestBuildingCommands_InvalidInput(t *testing.T) {
	ctx := context.Background()

	t.Run("空の建物名はエラー", func(t *testing.T) {
		_, err := commands.NewBuildingCommands(nil, nil).Create(ctx, commands.BuildingParams{
			Name: "", Address: "1-1-1 Chiyoda",
		})
		assert.ErrorIs(t, err, commands.ErrInvalidBuildingInput)
	})
}

func TestRoomTypeCommands_InvalidInput(t *testing.T) {
	ctx := context.Background()

	t.Run("空の部屋タイプ名はエラー", func(t *testing.T) {
		_, err := commands.NewRoomTypeCommands(nil, nil).Create(ctx, "")
		assert.ErrorIs(t, err, commands.ErrInvalidRoomTypeInput)
	})
}

func TestAuthCommands_InvalidInput(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name   string
		params commands.RegisterParams
	}{
		{"不正なメールアドレス", commands.RegisterParams{FullName: "Taro Yamada", Email: "not-an-email", Password: "password123"}},
		{"短すぎるパスワード", commands.RegisterParams{FullName: "Taro Yamada", Email: "taro@example.com", Password: "12345"}},
		{"空の氏名", commands.RegisterParams{FullName: "", Email: "taro@example.com", Password: "password123"}},
	}

	for _, c := range cases {
		t.Run(c.name+"はエラー", func(t *testing.T) {
			_, err := commands.NewAuthCommands(nil, nil, nil).Register(ctx, c.params)
			assert.ErrorIs(t, err, commands.ErrInvalidUserInput)
		})
	}
}
