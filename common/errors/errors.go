package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error so the HTTP boundary can pick a
// status code without inspecting messages.
type Kind string

const (
	KindMalformedInput    Kind = "malformed_input"
	KindValidationFailed  Kind = "validation_failed"
	KindSignatureMismatch Kind = "signature_mismatch"
	KindUnauthorized      Kind = "unauthorized"
	KindNotFound          Kind = "not_found"
	KindStorage           Kind = "storage_error"
	KindUpstream          Kind = "upstream_error"
)

// Error represents an application error with a client-safe message.
// The wrapped Err carries internal detail for logs only.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func MalformedInput(message string) *Error {
	return &Error{Kind: KindMalformedInput, Message: message}
}

func ValidationFailed(message string) *Error {
	return &Error{Kind: KindValidationFailed, Message: message}
}

func SignatureMismatch(message string) *Error {
	return &Error{Kind: KindSignatureMismatch, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Storage(err error) *Error {
	return &Error{Kind: KindStorage, Message: "Server error occurred. Please try again.", Err: err}
}

func Upstream(message string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Err: err}
}

// StatusCode maps an error to the HTTP status the client should see.
// Caller-fault kinds map to 400, everything unexpected to 500.
func StatusCode(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindMalformedInput, KindValidationFailed, KindSignatureMismatch:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ClientMessage returns the message safe to echo to the client. Raw
// non-application errors never leak their detail.
func ClientMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Server error occurred. Please try again."
}
