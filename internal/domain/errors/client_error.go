package errors

import (
	"fmt"
	"net/http"

	"bazaar/internal/errors"
)

// Kind classifies why a backend call failed.
type Kind int

const (
	// KindTransport means no response was received: network error or timeout.
	KindTransport Kind = iota + 1
	// KindMappedStatus means the backend answered with a status the operation documents.
	KindMappedStatus
	// KindUnmappedStatus means the backend answered with any other non-success status.
	KindUnmappedStatus
	// KindMalformedResponse means a success body failed the structural check.
	KindMalformedResponse
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindMappedStatus:
		return "mapped_status"
	case KindUnmappedStatus:
		return "unmapped_status"
	case KindMalformedResponse:
		return "malformed_response"
	default:
		return "unknown"
	}
}

// ClientError is the single failure type of the typed API clients.
// Error() is the human-presentable message and is safe to show to the user.
type ClientError struct {
	kind    Kind
	status  int
	message string
	cause   error
}

// NewTransportError reports that target could not be reached.
func NewTransportError(message string, cause error) *ClientError {
	return &ClientError{kind: KindTransport, message: message, cause: cause}
}

// NewMappedStatusError reports a documented backend status.
func NewMappedStatusError(status int, message string) *ClientError {
	return &ClientError{kind: KindMappedStatus, status: status, message: message}
}

// NewUnmappedStatusError reports a status the operation has no message for.
func NewUnmappedStatusError(status int) *ClientError {
	return &ClientError{
		kind:    KindUnmappedStatus,
		status:  status,
		message: fmt.Sprintf("Request failed: %d", status),
	}
}

// NewMalformedResponseError reports a success body with the wrong shape.
func NewMalformedResponseError(message string, cause error) *ClientError {
	return &ClientError{kind: KindMalformedResponse, status: http.StatusOK, message: message, cause: cause}
}

// Error implements the error interface
func (e *ClientError) Error() string {
	return e.message
}

// Unwrap exposes the transport or schema error behind the message.
func (e *ClientError) Unwrap() error {
	return e.cause
}

// Kind returns the failure class.
func (e *ClientError) Kind() Kind {
	return e.kind
}

// Status returns the backend status code, or 0 when no response was received.
func (e *ClientError) Status() int {
	return e.status
}

// HTTPCode maps the failure to the status the companion service answers with.
// Backend client errors pass through, everything else is a bad gateway.
func (e *ClientError) HTTPCode() int {
	if (e.kind == KindMappedStatus || e.kind == KindUnmappedStatus) &&
		e.status >= http.StatusBadRequest && e.status < http.StatusInternalServerError {
		return e.status
	}

	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *ClientError) ErrorCode() string {
	switch e.kind {
	case KindTransport:
		return "BACKEND_UNREACHABLE"
	case KindMappedStatus:
		return "BACKEND_REJECTED"
	case KindUnmappedStatus:
		return "BACKEND_UNEXPECTED_STATUS"
	case KindMalformedResponse:
		return "BACKEND_MALFORMED_RESPONSE"
	default:
		return "BACKEND_ERROR"
	}
}

// Message returns the user-friendly error message
func (e *ClientError) Message() string {
	return e.message
}

// Details returns the underlying cause, if any.
func (e *ClientError) Details() string {
	if e.cause == nil {
		return ""
	}

	return e.cause.Error()
}

// AsClientError finds a ClientError in err's tree.
func AsClientError(err error) (*ClientError, bool) {
	return errors.Find[*ClientError](err)
}
