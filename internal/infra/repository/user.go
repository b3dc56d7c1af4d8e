package repository

import (
	"context"

	"room-booking-api/internal/domain/user"
	"room-booking-api/internal/infra"
	"room-booking-api/internal/infra/db"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, dbtx db.DBTX, entity *user.User) (int64, error) {
	const query = `
		INSERT INTO users (full_name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := dbtx.QueryRow(ctx, query,
		entity.FullName().Value(), entity.Email().Value(), entity.PasswordHash(), entity.Role().String(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create user", err)
	}

	return id, nil
}
