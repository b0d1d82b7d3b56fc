// Package apperr holds the error kinds shared by services and handlers.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrInvalidReference = errors.New("invalid reference")
	ErrConflict         = errors.New("conflict")
	ErrForbidden        = errors.New("forbidden")
	ErrUnavailable      = errors.New("service unavailable")
	ErrUpstream         = errors.New("upstream failure")
)

// FieldError reports a rejected input field. It matches ErrInvalidInput.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidInput
}

// Invalid returns a FieldError for field.
func Invalid(field, reason string) error {
	return &FieldError{Field: field, Reason: reason}
}

// NotFound wraps ErrNotFound with a client-facing message.
func NotFound(message string) error {
	return &kindError{kind: ErrNotFound, message: message}
}

// Conflict wraps ErrConflict with a client-facing message.
func Conflict(message string) error {
	return &kindError{kind: ErrConflict, message: message}
}

// Forbidden wraps ErrForbidden with a client-facing message.
func Forbidden(message string) error {
	return &kindError{kind: ErrForbidden, message: message}
}

// Reference wraps ErrInvalidReference with a client-facing message.
func Reference(message string) error {
	return &kindError{kind: ErrInvalidReference, message: message}
}

// Unauthenticated wraps ErrUnauthenticated with a client-facing message.
func Unauthenticated(message string) error {
	return &kindError{kind: ErrUnauthenticated, message: message}
}

type kindError struct {
	kind    error
	message string
}

func (e *kindError) Error() string { return e.message }

func (e *kindError) Unwrap() error { return e.kind }

// Status maps an error to its HTTP status and the message safe to show the
// client. Anything unrecognised is an internal failure.
func Status(err error) (int, string) {
	var status int
	var kind error
	switch {
	case errors.Is(err, ErrUnauthenticated):
		status, kind = http.StatusUnauthorized, ErrUnauthenticated
	case errors.Is(err, ErrInvalidInput):
		status, kind = http.StatusBadRequest, ErrInvalidInput
	case errors.Is(err, ErrInvalidReference):
		status, kind = http.StatusBadRequest, ErrInvalidReference
	case errors.Is(err, ErrForbidden):
		status, kind = http.StatusForbidden, ErrForbidden
	case errors.Is(err, ErrNotFound):
		status, kind = http.StatusNotFound, ErrNotFound
	case errors.Is(err, ErrConflict):
		status, kind = http.StatusConflict, ErrConflict
	case errors.Is(err, ErrUpstream):
		status, kind = http.StatusBadGateway, ErrUpstream
	case errors.Is(err, ErrUnavailable):
		status, kind = http.StatusServiceUnavailable, ErrUnavailable
	default:
		return http.StatusInternalServerError, "internal server error"
	}
	return status, publicMessage(err, kind)
}

// publicMessage never echoes wrapped driver or transport text.
func publicMessage(err, kind error) string {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Error()
	}
	var ke *kindError
	if errors.As(err, &ke) {
		return ke.message
	}
	return kind.Error()
}
