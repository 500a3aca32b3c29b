// Package domainerrors defines the coded error type shared by all modules.
//
// Services return coded errors; the HTTP layer translates codes to status
// codes and decides which descriptions are safe to expose. Wrapping keeps the
// underlying cause available to errors.Is/errors.As without leaking it to
// clients.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code identifies the class of a domain error.
type Code string

const (
	// CodeValidation marks malformed input; the caller can correct and resubmit.
	CodeValidation Code = "validation_error"
	// CodeBadRequest marks a request the transport layer could not interpret.
	CodeBadRequest Code = "bad_request"
	// CodeModelUnavailable marks a terminal scoring failure: the classifier
	// artifact never loaded, so no retry can succeed.
	CodeModelUnavailable Code = "model_unavailable"
	// CodeExternalService marks a failed outbound call. Sentiment absorbs
	// these internally; they never cross the presentation boundary.
	CodeExternalService Code = "external_service_error"
	// CodeNotFound marks a missing resource.
	CodeNotFound Code = "not_found"
	// CodeInternal marks an unexpected failure whose detail must not be exposed.
	CodeInternal Code = "internal_error"
)

// Error is a coded domain error, optionally wrapping a cause.
type Error struct {
	code  Code
	msg   string
	cause error
}

// New creates a coded error with the given message.
func New(code Code, msg string) *Error {
	return &Error{code: code, msg: msg}
}

// Newf creates a coded error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{code: code, msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying cause.
func Wrap(cause error, code Code, msg string) *Error {
	return &Error{code: code, msg: msg, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

// Unwrap exposes the cause for errors.Is/errors.As chains.
func (e *Error) Unwrap() error {
	return e.cause
}

// Code returns the error's code.
func (e *Error) Code() Code {
	return e.code
}

// Message returns the client-safe description without the wrapped cause.
func (e *Error) Message() string {
	return e.msg
}

// CodeOf extracts the code from an error chain.
// Non-domain errors report CodeInternal.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.code
	}
	return CodeInternal
}

// HasCode reports whether the error chain carries the given code.
func HasCode(err error, code Code) bool {
	return CodeOf(err) == code
}
