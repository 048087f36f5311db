package handlers

import (
	"errors"
	"net/http"

	"pizzastore/services"
)

// statusFor maps the service error taxonomy onto HTTP status codes.
// Anything unmatched is a backend failure: reported, never retried.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrInvalidPrice):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
