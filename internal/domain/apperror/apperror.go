// Package apperror defines the service error taxonomy. Ownership and
// existence checks are resolved locally and surfaced as typed failures;
// store transport errors are wrapped, never retried.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	// NotFound means the referenced record or key is absent.
	NotFound Code = "NOT_FOUND"
	// Unauthorized means the acting identity is not the owner/author.
	Unauthorized Code = "UNAUTHORIZED"
	// ValidationFailed means malformed input reached the core boundary.
	ValidationFailed Code = "VALIDATION_FAILED"
	// StoreUnavailable means a transport or backend failure on a store call.
	StoreUnavailable Code = "STORE_UNAVAILABLE"
	// PartialFailure means a multi-step operation completed some steps only.
	PartialFailure Code = "PARTIAL_FAILURE"
)

type Error struct {
	Code    Code
	Message string
	Cause   error
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// HTTPStatus maps the error code to its presentation-layer status.
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case NotFound:
		return http.StatusNotFound
	case Unauthorized:
		return http.StatusForbidden
	case ValidationFailed:
		return http.StatusBadRequest
	case StoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// CodeOf extracts the taxonomy code from err, or StoreUnavailable when err is
// not a typed service error.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	return StoreUnavailable
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}

	return false
}
