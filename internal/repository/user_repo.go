package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/herfando/core-api/internal/db"
	"github.com/herfando/core-api/internal/model"
)

type UserRepo struct {
	db db.Querier
}

func NewUserRepo(q db.Querier) *UserRepo {
	return &UserRepo{db: q}
}

// Create inserts the user and fills in the store-assigned id and
// timestamps. A duplicate email surfaces as ErrDuplicateEmail; the UNIQUE
// constraint on users.email is the source of truth under concurrent
// registration.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	err := r.db.QueryRow(ctx,
		"INSERT INTO users (email, password_hash, role, created_at, updated_at) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		u.Email, u.PasswordHash, u.Role, u.CreatedAt, u.UpdatedAt,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *UserRepo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.db.QueryRow(ctx,
		"SELECT id, email, password_hash, role, created_at, updated_at FROM users WHERE email = $1",
		email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &u, nil
}

func (r *UserRepo) ByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	err := r.db.QueryRow(ctx,
		"SELECT id, email, password_hash, role, created_at, updated_at FROM users WHERE id = $1",
		id,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &u, nil
}

// RoleByID reads the subject's current role. The middleware calls this on
// every privileged request rather than trusting a role baked into a token.
func (r *UserRepo) RoleByID(ctx context.Context, id int64) (model.Role, error) {
	var role model.Role
	err := r.db.QueryRow(ctx, "SELECT role FROM users WHERE id = $1", id).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get user role: %w", err)
	}
	return role, nil
}
