// Package middleware holds the API's echo error handler.
package middleware

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/api/response"
	deliverycontext "bazaar/internal/delivery/context"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/validation"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders handler errors as the error envelope
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is the echo HTTPErrorHandler. Backend failures keep their
// user-facing message, echo errors keep their status, and anything else is a 500.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.RequestLogger(c, m.logger)

	var (
		appErr  domainerrors.AppError
		httpErr *echo.HTTPError
	)

	switch {
	case errors.As(err, &appErr):
		if clientErr, ok := domainerrors.AsClientError(err); ok {
			logger.Debug("Backend call failed",
				slog.String("kind", clientErr.Kind().String()),
				slog.Int("backend_status", clientErr.Status()),
				slog.String("path", c.Request().URL.Path),
			)
		} else if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.String("error", err.Error()))
		}

		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)

	case validation.FieldErrors(err) != nil:
		_ = response.ValidationError(c, err)

	case errors.As(err, &httpErr):
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

	default:
		logger.Error("Unhandled error",
			slog.Any("error", err),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		)

		internal := domainerrors.ErrInternalError
		_ = response.Error(c, internal.HTTPCode(), internal.ErrorCode(), "Internal server error, please try again later", nil)
	}
}
