package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for the transport boundary.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalid
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

// Error carries a client-facing message alongside its kind. The message is
// exactly what the HTTP envelope returns, so services attach the literal
// per-operation texts here.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a client-facing message to a cause so callers can still test
// the cause with errors.Is.
func Wrap(kind Kind, cause error, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// Common errors
var (
	ErrUnauthorized  = New(KindUnauthorized, "unauthorized")
	ErrForbidden     = New(KindForbidden, "forbidden")
	ErrNotFound      = New(KindNotFound, "not found")
	ErrConflict      = New(KindConflict, "conflict")
	ErrInvalidInput  = New(KindInvalid, "invalid input")
	ErrAlreadyExists = New(KindConflict, "already exists")
)

// KindOf extracts the kind from an error chain, defaulting to KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// ClientMessage returns the message safe to surface to callers. Unclassified
// errors get a generic text so internals never leak.
func ClientMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal server error"
}

// HTTPStatus maps an error kind to the status the original API reported.
// Conflicts (duplicate title, attach/detach misuse) surface as plain 400s.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindInvalid, KindConflict:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
