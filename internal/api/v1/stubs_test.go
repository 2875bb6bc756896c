package v1

import (
	"context"

	"github.com/herfando/core-api/internal/model"
	"github.com/herfando/core-api/internal/repository"
)

// In-memory repository stubs for handler tests.

type stubBookRepo struct {
	nextID int64
	books  []model.Book
}

func (s *stubBookRepo) List(ctx context.Context, page, limit int) ([]model.Book, int, error) {
	start := (page - 1) * limit
	if start >= len(s.books) {
		return []model.Book{}, len(s.books), nil
	}
	end := start + limit
	if end > len(s.books) {
		end = len(s.books)
	}
	return s.books[start:end], len(s.books), nil
}

func (s *stubBookRepo) Recommend(ctx context.Context, limit int) ([]model.Book, error) {
	if limit > len(s.books) {
		limit = len(s.books)
	}
	return s.books[:limit], nil
}

func (s *stubBookRepo) ByID(ctx context.Context, id int64) (*model.Book, error) {
	for i := range s.books {
		if s.books[i].ID == id {
			return &s.books[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *stubBookRepo) Create(ctx context.Context, b *model.Book) error {
	s.nextID++
	b.ID = s.nextID
	s.books = append(s.books, *b)
	return nil
}

func (s *stubBookRepo) Update(ctx context.Context, b *model.Book) error {
	for i := range s.books {
		if s.books[i].ID == b.ID {
			s.books[i] = *b
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *stubBookRepo) Delete(ctx context.Context, id int64) error {
	for i := range s.books {
		if s.books[i].ID == id {
			s.books = append(s.books[:i], s.books[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type stubAuthorRepo struct {
	nextID  int64
	authors []model.Author
}

func (s *stubAuthorRepo) List(ctx context.Context) ([]model.Author, error) {
	return s.authors, nil
}

func (s *stubAuthorRepo) Create(ctx context.Context, a *model.Author) error {
	s.nextID++
	a.ID = s.nextID
	s.authors = append(s.authors, *a)
	return nil
}

func (s *stubAuthorRepo) Update(ctx context.Context, a *model.Author) error {
	for i := range s.authors {
		if s.authors[i].ID == a.ID {
			s.authors[i] = *a
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *stubAuthorRepo) Delete(ctx context.Context, id int64) error {
	for i := range s.authors {
		if s.authors[i].ID == id {
			s.authors = append(s.authors[:i], s.authors[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type stubCategoryRepo struct {
	nextID     int64
	categories []model.Category
	books      []model.Book
}

func (s *stubCategoryRepo) List(ctx context.Context) ([]model.Category, error) {
	return s.categories, nil
}

func (s *stubCategoryRepo) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.books, nil
}

func (s *stubCategoryRepo) Create(ctx context.Context, cat *model.Category) error {
	s.nextID++
	cat.ID = s.nextID
	s.categories = append(s.categories, *cat)
	return nil
}

func (s *stubCategoryRepo) Update(ctx context.Context, cat *model.Category) error {
	for i := range s.categories {
		if s.categories[i].ID == cat.ID {
			s.categories[i] = *cat
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *stubCategoryRepo) Delete(ctx context.Context, id int64) error {
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
