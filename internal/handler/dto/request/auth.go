package request

import (
	"room-booking-api/internal/usecase/commands"
)

type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r RegisterRequest) ToParams() commands.RegisterParams {
	return commands.RegisterParams{
		FullName: r.FullName,
		Email:    r.Email,
		Password: r.Password,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) ToParams() commands.LoginParams {
	return commands.LoginParams{
		Email:    r.Email,
		Password: r.Password,
	}
}
