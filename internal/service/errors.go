package service

import "errors"

// Domain errors. Handlers map these to HTTP statuses; anything else is an
// internal error.
var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrEmailNotRegistered     = errors.New("email not registered")
	ErrInvalidPassword        = errors.New("invalid password")
	ErrNotFound               = errors.New("not found")
)
