//go:build unit || e2e

package builder

import (
	"time"

	"room-booking-api/internal/domain/user"
	reqdto "room-booking-api/internal/handler/dto/request"
	"room-booking-api/internal/usecase/queries"
)

type UserBuilder struct {
	ID           int64
	FullName     string
	Email        string
	Password     string
	PasswordHash string
	Role         string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           100,
		FullName:     "Taro Yamada",
		Email:        "taro@example.com",
		Password:     "password123",
		PasswordHash: "hashed_password",
		Role:         "USER",
	}
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	fullName, err := user.NewFullName(u.FullName)
	if err != nil {
		return nil, err
	}

	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(fullName, email, u.PasswordHash, role), nil
}

func (u *UserBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		FullName: u.FullName,
		Email:    u.Email,
		Password: u.Password,
	}
}

func (u *UserBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    u.Email,
		Password: u.Password,
	}
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: time.Now().UTC(),
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = "ADMIN"
	return u
}
