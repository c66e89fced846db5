// Package errs classifies failures of the remote API. Callers match the
// sentinels with errors.Is and, when they need the raw status or the
// server-provided message, unwrap *APIError with errors.As. Presentation
// of these errors belongs to the caller.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNetwork means the request never produced a response.
	ErrNetwork = errors.New("network failure")
	// ErrAuth covers 401: invalid credentials or an invalid/expired token.
	ErrAuth = errors.New("authentication failed")
	// ErrValidation covers 400-class server-side validation failures.
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	// ErrConflict covers 409, e.g. reserving an unavailable book.
	ErrConflict = errors.New("conflict")
	// ErrServer covers any other non-2xx response.
	ErrServer = errors.New("server error")
)

// APIError is a non-2xx response from the remote service.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("http status %d", e.Status)
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return ErrAuth
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusBadRequest:
		return ErrValidation
	default:
		return ErrServer
	}
}

// FromStatus builds an APIError from a response status and the message
// parsed from the body, if any.
func FromStatus(status int, message string) error {
	return &APIError{Status: status, Message: message}
}
