// Package apperr defines the error kinds shared by the store, the flows and the HTTP layer.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an error by how it must be reported to a caller.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindNotFound
	KindInvalidCredentials
	KindConflict
	KindUnavailable
	KindTooManyRequests
)

// String returns a readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindNotFound:
		return "not_found"
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindConflict:
		return "conflict"
	case KindUnavailable:
		return "unavailable"
	case KindTooManyRequests:
		return "too_many_requests"
	default:
		return "internal"
	}
}

// Default client-facing messages.
const (
	MsgInternal           = "Internal Server Error"
	MsgMissingFields      = "Missing required fields"
	MsgUserNotFound       = "User not found"
	MsgInvalidCredentials = "Invalid credentials"
	MsgEmailTaken         = "User with this email already exists"
	MsgTooManyRequests    = "Too many requests, please try again later"
)

// Error is a classified error. Message is safe to show to a client,
// Err keeps the underlying cause for operators.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// New returns an *Error without an underlying cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap classifies err under kind. A nil err still yields a non-nil *Error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the kind of the first *Error in err's chain.
// Unclassified errors are KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// HTTPStatus maps a kind to its response status code.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidCredentials:
		return http.StatusUnauthorized
	case KindConflict:
		return http.StatusConflict
	case KindTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the message a client may see for err.
// Internal and unavailable errors never expose their detail.
func PublicMessage(err error) string {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return MsgInternal
	}
	switch appErr.Kind {
	case KindInternal, KindUnavailable:
		return MsgInternal
	}
	if appErr.Message == "" {
		return MsgInternal
	}
	return appErr.Message
}
