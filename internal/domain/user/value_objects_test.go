//go:build unit

package user_test

import (
	"testing"

	"room-booking-api/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		errIs error
	}{
		{name: "有効なメールアドレスOK", in: "valid@example.com"},
		{name: "前後の空白は除去される", in: "  valid@example.com  "},
		{name: "空のメールアドレスNG", errIs: user.ErrInvalidEmail},
		{name: "無効な形式NG", in: "invalid-email", errIs: user.ErrInvalidEmail},
		{name: "@なしNG", in: "invalidemail.com", errIs: user.ErrInvalidEmail},
		{name: "ドメインのドットなしNG", in: "user@example", errIs: user.ErrInvalidEmail},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			email, err := user.NewEmail(c.in)
			if c.errIs != nil {
				assert.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "valid@example.com", email.Value())
		})
	}
}

func TestNewPassword(t *testing.T) {
	t.Run("6文字以上OK", func(t *testing.T) {
		_, err := user.NewPassword("secret")
		assert.NoError(t, err)
	})

	t.Run("5文字以下NG", func(t *testing.T) {
		_, err := user.NewPassword("12345")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func TestNewFullName(t *testing.T) {
	t.Run("空でなければOK", func(t *testing.T) {
		name, err := user.NewFullName("Taro Yamada")
		require.NoError(t, err)
		assert.Equal(t, "Taro Yamada", name.Value())
	})

	t.Run("空白のみNG", func(t *testing.T) {
		_, err := user.NewFullName("   ")
		assert.ErrorIs(t, err, user.ErrInvalidFullName)
	})
}

func TestNewRole(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		errIs error
	}{
		{name: "USER ロールOK", in: "USER"},
		{name: "ADMIN ロールOK", in: "ADMIN"},
		{name: "小文字NG", in: "user", errIs: user.ErrInvalidRole},
		{name: "無効なロールNG", in: "SUPERUSER", errIs: user.ErrInvalidRole},
		{name: "空のロールNG", in: "", errIs: user.ErrInvalidRole},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			role, err := user.NewRole(c.in)
			if c.errIs != nil {
				assert.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.in, role.String())
		})
	}
}
