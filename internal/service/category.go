package service

import (
	"context"
	"errors"

	"github.com/herfando/core-api/internal/model"
	"github.com/herfando/core-api/internal/repository"
)

type CategoryService struct {
	categories repository.CategoryRepository
}

func NewCategoryService(categories repository.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// List returns all categories, each carrying its books.
func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	books, err := s.categories.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[int64][]model.Book, len(categories))
	for _, b := range books {
		byCategory[b.CategoryID] = append(byCategory[b.CategoryID], b)
	}
	for i := range categories {
		categories[i].Books = byCategory[categories[i].ID]
		if categories[i].Books == nil {
			categories[i].Books = []model.Book{}
		}
	}
	return categories, nil
}

func (s *CategoryService) Create(ctx context.Context, cat *model.Category) error {
	return s.categories.Create(ctx, cat)
}

func (s *CategoryService) Update(ctx context.Context, cat *model.Category) error {
	err := s.categories.Update(ctx, cat)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	err := s.categories.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
