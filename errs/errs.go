// Package errs defines the error taxonomy surfaced to API clients. Every
// failure a resolver can produce carries one of these codes; the transport
// layer maps the code into the GraphQL error extensions so clients can
// branch without parsing messages.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Code is a machine-readable failure class.
type Code string

const (
	NotFound          Code = "NOT_FOUND"
	AlreadyExists     Code = "ALREADY_EXISTS"
	Unauthenticated   Code = "UNAUTHENTICATED"
	InvalidCredential Code = "INVALID_CREDENTIAL"
	InvalidInput      Code = "INVALID_INPUT"
	StoreUnavailable  Code = "STORE_UNAVAILABLE"

	// Internal is the fallback for errors that carry no code of their own.
	Internal Code = "INTERNAL"
)

// Error pairs a client-facing message with a Code. It wraps an optional
// cause so call sites can keep store-level detail out of the wire message.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// New returns an Error with the given code and message.
func New(code Code, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

// Newf is New with formatting.
func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error. Returns nil if
// err is nil, so store calls can wrap unconditionally.
func Wrap(err error, code Code, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: msg, cause: err}
}

// CodeOf extracts the Code from err, walking the wrap chain. Errors
// produced outside the taxonomy report Internal.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return Internal
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return CodeOf(err) == code
}

// MessageOf returns the client-facing message for err: the taxonomy message
// when one exists, otherwise a generic string that leaks no internals.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal error"
}
