// Package errors holds the typed failures the API hands back to clients.
package errors

import (
	"errors"
	"net/http"
)

// Codes written to the error envelope.
const (
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeValidation         = "VALIDATION_ERROR"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodePreconditionFailed = "PRECONDITION_FAILED"
	CodeUnsupportedMedia   = "UNSUPPORTED_MEDIA_TYPE"
	CodeInternal           = "INTERNAL_ERROR"
)

// Error pairs a stable code and HTTP status with a client-safe message. Err
// keeps the cause for logs and is never serialised.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.Err == nil:
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	if e != nil {
		return e.Err
	}
	return nil
}

// New builds an Error without a cause.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap builds an Error around cause.
func Wrap(cause error, code string, status int, message string) *Error {
	e := New(code, status, message)
	e.Err = cause
	return e
}

// Shared defaults. Callers that need a specific message Clone them.
var (
	ErrInvalidCredentials = New(CodeInvalidCredentials, http.StatusUnauthorized, "invalid email or password")
	ErrUnauthorized       = New(CodeUnauthorized, http.StatusUnauthorized, "unauthorized")
	ErrForbidden          = New(CodeForbidden, http.StatusForbidden, "forbidden")
	ErrValidation         = New(CodeValidation, http.StatusBadRequest, "validation failed")
	ErrNotFound           = New(CodeNotFound, http.StatusNotFound, "resource not found")
	ErrConflict           = New(CodeConflict, http.StatusConflict, "conflict")
	ErrPreconditionFailed = New(CodePreconditionFailed, http.StatusPreconditionFailed, "precondition failed")
	ErrUnsupportedMedia   = New(CodeUnsupportedMedia, http.StatusUnsupportedMediaType, "unsupported media type")
	ErrInternal           = New(CodeInternal, http.StatusInternalServerError, "internal server error")
)

// ErrCacheMiss signals that a cache key is absent. It never reaches clients.
var ErrCacheMiss = errors.New("cache miss")

// ErrSessionNotFound is returned by session stores for unknown keys.
var ErrSessionNotFound = errors.New("session not found")

// Is reports whether any Error in err's chain carries code.
func Is(err error, code string) bool {
	var typed *Error
	return errors.As(err, &typed) && typed.Code == code
}

// FromError returns the first Error in err's chain. Anything untyped becomes
// INTERNAL_ERROR with err kept as the cause.
func FromError(err error) *Error {
	var typed *Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &typed):
		return typed
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone copies a shared default so its message can change without touching the
// original. An empty message keeps the default text.
func Clone(base *Error, message string) *Error {
	if base == nil {
		return nil
	}
	out := &Error{Code: base.Code, Status: base.Status, Message: base.Message, Err: base.Err}
	if message != "" {
		out.Message = message
	}
	return out
}
