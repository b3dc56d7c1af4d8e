package readstore

import (
	"context"
	"errors"

	"room-booking-api/internal/infra"
	"room-booking-api/internal/infra/db"
	"room-booking-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type UserReadStore struct {
	dbtx db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{dbtx: dbtx}
}

func (s *UserReadStore) FindByID(ctx context.Context, id int64) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, full_name, email, role, created_at
		FROM users
		WHERE id = $1`

	var v queries.AuthorizedUserView
	err := s.dbtx.QueryRow(ctx, query, id).Scan(&v.ID, &v.FullName, &v.Email, &v.Role, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	return &v, nil
}

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	const query = `
		SELECT id, full_name, email, role, created_at, password_hash
		FROM users
		WHERE email = $1`

	var v queries.AuthorizedUserView
	var passwordHash string
	err := s.dbtx.QueryRow(ctx, query, email).Scan(&v.ID, &v.FullName, &v.Email, &v.Role, &v.CreatedAt, &passwordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &v, passwordHash, nil
}
