package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/herfando/core-api/internal/model"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	ByEmail(ctx context.Context, email string) (*model.User, error)
	ByID(ctx context.Context, id int64) (*model.User, error)
	RoleByID(ctx context.Context, id int64) (model.Role, error)
}

type BookRepository interface {
	List(ctx context.Context, page, limit int) ([]model.Book, int, error)
	Recommend(ctx context.Context, limit int) ([]model.Book, error)
	ByID(ctx context.Context, id int64) (*model.Book, error)
	Create(ctx context.Context, b *model.Book) error
	Update(ctx context.Context, b *model.Book) error
	Delete(ctx context.Context, id int64) error
}

type AuthorRepository interface {
	List(ctx context.Context) ([]model.Author, error)
	Create(ctx context.Context, a *model.Author) error
	Update(ctx context.Context, a *model.Author) error
	Delete(ctx context.Context, id int64) error
}

type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	Create(ctx context.Context, cat *model.Category) error
	Update(ctx context.Context, cat *model.Category) error
	Delete(ctx context.Context, id int64) error
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
