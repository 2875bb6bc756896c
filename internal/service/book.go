package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/herfando/core-api/internal/model"
	"github.com/herfando/core-api/internal/repository"
)

const (
	DefaultPageLimit  = 50
	MaxPageLimit      = 100
	RecommendLimit    = 10
	importSheetName   = "Books"
	importColumnCount = 8
)

type BookService struct {
	books repository.BookRepository
}

func NewBookService(books repository.BookRepository) *BookService {
	return &BookService{books: books}
}

func (s *BookService) List(ctx context.Context, page, limit int) ([]model.Book, model.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > MaxPageLimit {
		limit = DefaultPageLimit
	}

	books, total, err := s.books.List(ctx, page, limit)
	if err != nil {
		return nil, model.Pagination{}, err
	}

	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	return books, model.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

func (s *BookService) Recommend(ctx context.Context, limit int) ([]model.Book, error) {
	if limit < 1 || limit > MaxPageLimit {
		limit = RecommendLimit
	}
	return s.books.Recommend(ctx, limit)
}

func (s *BookService) Get(ctx context.Context, id int64) (*model.Book, error) {
	b, err := s.books.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *BookService) Create(ctx context.Context, b *model.Book) error {
	return s.books.Create(ctx, b)
}

func (s *BookService) Update(ctx context.Context, b *model.Book) error {
	err := s.books.Update(ctx, b)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *BookService) Delete(ctx context.Context, id int64) error {
	err := s.books.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

type ImportReport struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}

// Import reads an xlsx workbook and inserts one book per row of the Books
// sheet. Columns: title, description, isbn, published_year, price,
// total_copies, author_id, category_id. Rows that fail to parse or insert
// are skipped, not fatal.
func (s *BookService) Import(ctx context.Context, r io.Reader) (*ImportReport, error) {
	xlsx, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse workbook: %w", err)
	}
	defer xlsx.Close()

	rows, err := xlsx.GetRows(importSheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", importSheetName, err)
	}

	report := &ImportReport{}
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) < importColumnCount {
			report.Skipped++
			continue
		}

		year, err := strconv.Atoi(row[3])
		if err != nil {
			report.Skipped++
			continue
		}
		price, err := strconv.ParseFloat(row[4], 64)
		if err != nil {
			report.Skipped++
			continue
		}
		copies, err := strconv.Atoi(row[5])
		if err != nil {
			report.Skipped++
			continue
		}
		authorID, err := strconv.ParseInt(row[6], 10, 64)
		if err != nil {
			report.Skipped++
			continue
		}
		categoryID, err := strconv.ParseInt(row[7], 10, 64)
		if err != nil {
			report.Skipped++
			continue
		}

		book := &model.Book{
			Title:           row[0],
			Description:     row[1],
			ISBN:            row[2],
			PublishedYear:   year,
			Price:           price,
			TotalCopies:     copies,
			AvailableCopies: copies,
			AuthorID:        authorID,
			CategoryID:      categoryID,
		}
		if err := s.books.Create(ctx, book); err != nil {
			report.Skipped++
			continue
		}
		report.Inserted++
	}
	return report, nil
}
