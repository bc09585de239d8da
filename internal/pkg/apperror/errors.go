// Package apperror holds the error taxonomy shared by services and the HTTP layer.
// Services wrap these sentinels with fmt.Errorf("...: %w", ...) and the fiber
// error handler maps them to status codes with errors.Is.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingToken       = errors.New("missing bearer token")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("access denied")
	ErrNotFound           = errors.New("resource not found")
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("resource already exists")
	ErrUpstream           = errors.New("upstream failure")
)

// Validation builds an ErrValidation carrying a caller-facing reason.
func Validation(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Upstream wraps a store/driver failure so it maps to 500 without leaking the cause.
func Upstream(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrUpstream, err)
}

// StatusCode maps an error from the taxonomy to an HTTP status.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrMissingToken):
		return http.StatusUnauthorized
	case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is the message safe to send back to a client.
// Upstream and unknown failures collapse into a generic text.
func PublicMessage(err error) string {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrConflict):
		return err.Error()
	case errors.Is(err, ErrInvalidCredentials):
		return ErrInvalidCredentials.Error()
	case errors.Is(err, ErrMissingToken):
		return ErrMissingToken.Error()
	case errors.Is(err, ErrInvalidToken):
		return ErrInvalidToken.Error()
	case errors.Is(err, ErrForbidden):
		return err.Error()
	case errors.Is(err, ErrNotFound):
		return err.Error()
	default:
		return "internal server error"
	}
}
