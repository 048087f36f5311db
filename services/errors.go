package services

import "errors"

// Error taxonomy shared by every service. Handlers match these with
// errors.Is to pick a response status; store errors pass through
// untouched and are never retried.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidRole        = errors.New("invalid role: must be customer, manager, or driver")
	ErrInvalidPrice       = errors.New("invalid price: must be a non-negative number")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrNotFound           = errors.New("not found")
	ErrPermissionDenied   = errors.New("not permitted")
	ErrAlreadyExists      = errors.New("already exists")
)
