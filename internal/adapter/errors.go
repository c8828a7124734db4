package adapter

import (
	"errors"
	"fmt"
)

// Status sentinels. Every *APIError unwraps to one of them.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrEmptyToken is returned by authenticated calls made before a token
	// was set.
	ErrEmptyToken = errors.New("no session token set")
)

// APIError is a failed API call. Code is the server's machine-readable
// error code, e.g. "invalid_count".
type APIError struct {
	StatusCode int
	Code       string

	status error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.status, e.StatusCode, e.Code)
}

func (e *APIError) Unwrap() error {
	return e.status
}
