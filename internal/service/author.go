package service

import (
	"context"
	"errors"

	"github.com/herfando/core-api/internal/model"
	"github.com/herfando/core-api/internal/repository"
)

type AuthorService struct {
	authors repository.AuthorRepository
}

func NewAuthorService(authors repository.AuthorRepository) *AuthorService {
	return &AuthorService{authors: authors}
}

func (s *AuthorService) List(ctx context.Context) ([]model.Author, error) {
	return s.authors.List(ctx)
}

func (s *AuthorService) Create(ctx context.Context, a *model.Author) error {
	return s.authors.Create(ctx, a)
}

func (s *AuthorService) Update(ctx context.Context, a *model.Author) error {
	err := s.authors.Update(ctx, a)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *AuthorService) Delete(ctx context.Context, id int64) error {
	err := s.authors.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
