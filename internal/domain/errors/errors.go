// Package errors holds the errors the service renders to its HTTP callers.
package errors

import (
	"net/http"

	"bazaar/internal/errors"
)

// AppError is an error that knows how it should be rendered.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

// StatusError is a fixed AppError with no cause attached.
type StatusError struct {
	status  int
	code    string
	message string
}

func newStatusError(status int, code, message string) *StatusError {
	return &StatusError{status: status, code: code, message: message}
}

func (e *StatusError) Error() string { return e.message }
func (e *StatusError) HTTPCode() int { return e.status }
func (e *StatusError) ErrorCode() string { return e.code }
func (e *StatusError) Message() string { return e.message }
func (e *StatusError) Details() string { return "" }

// WrapMessage annotates e with reason while keeping it matchable with errors.Is.
func (e *StatusError) WrapMessage(reason string) error {
	return errors.Wrap(e, reason)
}

//nolint:gochecknoglobals
var (
	ErrNotLoggedIn      = newStatusError(http.StatusUnauthorized, "NOT_LOGGED_IN", "You must be logged in to do that")
	ErrRoleNotPermitted = newStatusError(http.StatusForbidden, "ROLE_NOT_PERMITTED", "You cannot act as that role")
	ErrAdminRequired    = newStatusError(http.StatusForbidden, "ADMIN_REQUIRED", "Only admin accounts can perform demo actions")
	ErrUnknownDialog    = newStatusError(http.StatusNotFound, "UNKNOWN_DIALOG", "No such dialog")

	ErrValidationFailed  = newStatusError(http.StatusBadRequest, "VALIDATION_FAILED", "Invalid input")
	ErrCookieStoreFailed = newStatusError(http.StatusInternalServerError, "COOKIE_STORE_FAILED", "Failed to save session")
	ErrInternalError     = newStatusError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal error")
)

// StorageError reports a failed statement against the session store.
type StorageError struct {
	err error
	op  string
}

// NewStorageError wraps a driver error raised while performing op.
func NewStorageError(err error, op string) AppError {
	return &StorageError{err: err, op: op}
}

func (e *StorageError) Error() string {
	return errors.Wrap(e.err, e.op).Error()
}

func (e *StorageError) Unwrap() error { return e.err }

func (e *StorageError) HTTPCode() int { return http.StatusInternalServerError }

func (e *StorageError) ErrorCode() string { return "SESSION_STORE_FAILED" }

func (e *StorageError) Message() string { return "Failed to access session storage" }

// Details names the failed operation.
func (e *StorageError) Details() string { return e.op }
