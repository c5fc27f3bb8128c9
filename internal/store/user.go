package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const sqlGetUserByID = `
SELECT id, name, email, credits, is_admin, created_at, updated_at
FROM users
WHERE id = $1
`

func (s *Store) GetUserByID(ctx context.Context, userID uuid.UUID) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

const sqlGetUserByEmail = `
SELECT id, name, email, credits, is_admin, created_at, updated_at
FROM users
WHERE email = $1
`

func (s *Store) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByEmail, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}
