package response

import (
	"time"

	"room-booking-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResponse struct {
	User *UserResponse `json:"user"`
}

func FromAuthorizedUserView(view *queries.AuthorizedUserView) *UserResponse {
	var resp UserResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
