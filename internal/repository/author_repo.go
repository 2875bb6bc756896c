package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/herfando/core-api/internal/db"
	"github.com/herfando/core-api/internal/model"
)

type AuthorRepo struct {
	db db.Querier
}

func NewAuthorRepo(q db.Querier) *AuthorRepo {
	return &AuthorRepo{db: q}
}

// List returns all authors with their book counts, most-published first.
func (r *AuthorRepo) List(ctx context.Context) ([]model.Author, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.name, a.bio, COUNT(b.id), a.created_at, a.updated_at
		FROM authors a
		LEFT JOIN books b ON b.author_id = a.id
		GROUP BY a.id
		ORDER BY COUNT(b.id) DESC, a.id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	authors := []model.Author{}
	for rows.Next() {
		var a model.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Bio, &a.BookCount, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan author row: %w", err)
		}
		authors = append(authors, a)
	}
	return authors, rows.Err()
}

func (r *AuthorRepo) Create(ctx context.Context, a *model.Author) error {
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	err := r.db.QueryRow(ctx,
		"INSERT INTO authors (name, bio, created_at, updated_at) VALUES ($1, $2, $3, $4) RETURNING id",
		a.Name, a.Bio, a.CreatedAt, a.UpdatedAt,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("failed to create author: %w", err)
	}
	return nil
}

func (r *AuthorRepo) Update(ctx context.Context, a *model.Author) error {
	a.UpdatedAt = time.Now().UTC()

	tag, err := r.db.Exec(ctx,
		"UPDATE authors SET name = $1, bio = $2, updated_at = $3 WHERE id = $4",
		a.Name, a.Bio, a.UpdatedAt, a.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update author: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AuthorRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM authors WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
