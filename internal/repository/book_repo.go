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

type BookRepo struct {
	db db.Querier
}

func NewBookRepo(q db.Querier) *BookRepo {
	return &BookRepo{db: q}
}

const bookColumns = `
	b.id, b.title, b.description, b.isbn, b.published_year, b.cover_image,
	b.price, b.ratings, b.review_count, b.total_copies, b.available_copies,
	b.borrow_count, b.author_id, a.name, b.category_id, c.name,
	b.created_at, b.updated_at`

func scanBook(row pgx.Row) (*model.Book, error) {
	var b model.Book
	err := row.Scan(
		&b.ID, &b.Title, &b.Description, &b.ISBN, &b.PublishedYear, &b.CoverImage,
		&b.Price, &b.Rating, &b.ReviewCount, &b.TotalCopies, &b.AvailableCopies,
		&b.BorrowCount, &b.AuthorID, &b.AuthorName, &b.CategoryID, &b.CategoryName,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookRepo) collect(rows pgx.Rows) ([]model.Book, error) {
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

// List returns one page of books, newest first, along with the total row
// count for pagination. The count is taken from the same statement via a
// window function so it cannot drift from the page under concurrent writes.
func (r *BookRepo) List(ctx context.Context, page, limit int) ([]model.Book, int, error) {
	offset := (page - 1) * limit

	rows, err := r.db.Query(ctx, `
		SELECT `+bookColumns+`, COUNT(*) OVER () AS total
		FROM books b
		JOIN authors a ON b.author_id = a.id
		JOIN categories c ON b.category_id = c.id
		ORDER BY b.created_at DESC
		LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := []model.Book{}
	var total int
	for rows.Next() {
		var b model.Book
		err := rows.Scan(
			&b.ID, &b.Title, &b.Description, &b.ISBN, &b.PublishedYear, &b.CoverImage,
			&b.Price, &b.Rating, &b.ReviewCount, &b.TotalCopies, &b.AvailableCopies,
			&b.BorrowCount, &b.AuthorID, &b.AuthorName, &b.CategoryID, &b.CategoryName,
			&b.CreatedAt, &b.UpdatedAt, &total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan book row: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to list books: %w", err)
	}

	// The window yields no rows for a page past the end; count separately so
	// pagination metadata stays meaningful.
	if len(books) == 0 {
		if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM books").Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("failed to count books: %w", err)
		}
	}

	return books, total, nil
}

func (r *BookRepo) Recommend(ctx context.Context, limit int) ([]model.Book, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+bookColumns+`
		FROM books b
		JOIN authors a ON b.author_id = a.id
		JOIN categories c ON b.category_id = c.id
		ORDER BY RANDOM()
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to recommend books: %w", err)
	}
	return r.collect(rows)
}

func (r *BookRepo) ByID(ctx context.Context, id int64) (*model.Book, error) {
	b, err := scanBook(r.db.QueryRow(ctx, `
		SELECT `+bookColumns+`
		FROM books b
		JOIN authors a ON b.author_id = a.id
		JOIN categories c ON b.category_id = c.id
		WHERE b.id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return b, nil
}

func (r *BookRepo) Create(ctx context.Context, b *model.Book) error {
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now

	err := r.db.QueryRow(ctx, `
		INSERT INTO books (
			title, description, isbn, published_year, cover_image, price,
			ratings, review_count, total_copies, available_copies,
			borrow_count, author_id, category_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`,
		b.Title, b.Description, b.ISBN, b.PublishedYear, b.CoverImage, b.Price,
		b.Rating, b.ReviewCount, b.TotalCopies, b.AvailableCopies,
		b.BorrowCount, b.AuthorID, b.CategoryID, b.CreatedAt, b.UpdatedAt,
	).Scan(&b.ID)
	if err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}
	return nil
}

func (r *BookRepo) Update(ctx context.Context, b *model.Book) error {
	b.UpdatedAt = time.Now().UTC()

	tag, err := r.db.Exec(ctx, `
		UPDATE books SET
			title = $1, description = $2, isbn = $3, published_year = $4,
			cover_image = $5, price = $6, author_id = $7, category_id = $8,
			total_copies = $9, available_copies = $10, updated_at = $11
		WHERE id = $12`,
		b.Title, b.Description, b.ISBN, b.PublishedYear,
		b.CoverImage, b.Price, b.AuthorID, b.CategoryID,
		b.TotalCopies, b.AvailableCopies, b.UpdatedAt, b.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BookRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM books WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
