// Package response writes the JSON envelope every companion API route answers with:
// {data, meta} on success and {error, meta} on failure.
package response

import (
	"net/http"

	deliverycontext "bazaar/internal/delivery/context"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/validation"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Envelope is the body of every response. Error is set only on failure.
type Envelope struct {
	Data  any        `json:"data"`
	Error *ErrorBody `json:"error,omitempty"`
	Meta  Meta       `json:"meta"`
}

// ErrorBody describes a failure in a form the client can show as is.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Meta carries the request id for support lookups.
type Meta struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) Meta {
	return Meta{RequestID: deliverycontext.GetRequestID(c)}
}

// Success writes data with status.
func Success(c echo.Context, status int, data any) error {
	return c.JSON(status, Envelope{Data: data, Meta: meta(c)})
}

// Error writes an error envelope. Details are dropped for 401, 403 and 5xx answers.
func Error(c echo.Context, status int, code, message string, details any) error {
	if status >= http.StatusInternalServerError || status == http.StatusUnauthorized || status == http.StatusForbidden {
		details = nil
	}

	return c.JSON(status, Envelope{
		Error: &ErrorBody{Code: code, Message: message, Details: details},
		Meta:  meta(c),
	})
}

// BadRequest writes a 400 without details.
func BadRequest(c echo.Context, code, message string) error {
	return Error(c, http.StatusBadRequest, code, message, nil)
}

// BindingError reports a body or query that could not be decoded.
func BindingError(c echo.Context, code, message string) error {
	return BadRequest(c, code, message)
}

// ValidationError reports the failed validator rule of each field.
func ValidationError(c echo.Context, err error) error {
	failed := domainerrors.ErrValidationFailed

	return Error(c, failed.HTTPCode(), failed.ErrorCode(), failed.Message(), validation.FieldErrors(err))
}

// HandleAppError writes err when it is an AppError and hands anything else back to echo.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return errors.WithStack(err)
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)
}
