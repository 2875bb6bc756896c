package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/herfando/core-api/internal/model"
	"github.com/herfando/core-api/internal/repository"
	"github.com/herfando/core-api/pkg/auth"
)

type AuthService struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenManager

	// issueOnRegister makes Register hand out a token immediately, like a
	// login. Off by default.
	issueOnRegister bool
}

func NewAuthService(users repository.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenManager, issueOnRegister bool) *AuthService {
	return &AuthService{
		users:           users,
		hasher:          hasher,
		tokens:          tokens,
		issueOnRegister: issueOnRegister,
	}
}

type RegisterResult struct {
	User  model.UserSummary
	Token string
}

// Register creates a user with role USER. The existence pre-check is an
// early exit only; the users.email UNIQUE constraint decides races, and a
// duplicate insert is reported the same way as a failed pre-check.
func (s *AuthService) Register(ctx context.Context, email, password, name, phone string) (*RegisterResult, error) {
	_, err := s.users.ByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, err
	}

	summary := user.Summary()
	summary.Name = name
	summary.PhoneNumber = phone

	result := &RegisterResult{User: summary}
	if s.issueOnRegister {
		token, err := s.tokens.Issue(user.ID, user.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to issue token: %w", err)
		}
		result.Token = token
	}
	return result, nil
}

type LoginResult struct {
	Token string
	User  model.UserSummary
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEmailNotRegistered
		}
		return nil, err
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return nil, ErrInvalidPassword
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResult{Token: token, User: user.Summary()}, nil
}
