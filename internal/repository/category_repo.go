package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/herfando/core-api/internal/db"
	"github.com/herfando/core-api/internal/model"
)

type CategoryRepo struct {
	db db.Querier
}

func NewCategoryRepo(q db.Querier) *CategoryRepo {
	return &CategoryRepo{db: q}
}

func (r *CategoryRepo) List(ctx context.Context) ([]model.Category, error) {
	rows, err := r.db.Query(ctx,
		"SELECT id, name, created_at, updated_at FROM categories ORDER BY id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// ListBooks fetches every book with author and category names in a single
// query so the service can group them per category.
func (r *CategoryRepo) ListBooks(ctx context.Context) ([]model.Book, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+bookColumns+`
		FROM books b
		JOIN authors a ON b.author_id = a.id
		JOIN categories c ON b.category_id = c.id
		ORDER BY b.id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list category books: %w", err)
	}
	defer rows.Close()

	books := []model.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book row: %w", err)
		}
		books = append(books, *b)
	}
	return books, rows.Err()
}

func (r *CategoryRepo) Create(ctx context.Context, cat *model.Category) error {
	now := time.Now().UTC()
	cat.CreatedAt = now
	cat.UpdatedAt = now

	err := r.db.QueryRow(ctx,
		"INSERT INTO categories (name, created_at, updated_at) VALUES ($1, $2, $3) RETURNING id",
		cat.Name, cat.CreatedAt, cat.UpdatedAt,
	).Scan(&cat.ID)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) Update(ctx context.Context, cat *model.Category) error {
	cat.UpdatedAt = time.Now().UTC()

	tag, err := r.db.Exec(ctx,
		"UPDATE categories SET name = $1, updated_at = $2 WHERE id = $3",
		cat.Name, cat.UpdatedAt, cat.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
