package middleware

import (
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestID reuses the client's X-Request-Id or mints one. The id is echoed in the
// response and stored, along with a logger carrying it, on the request context.
func RequestID(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := deliverycontext.NewRequestID(c.Request().Header.Get(deliverycontext.HeaderXRequestID))

			deliverycontext.SetRequestID(c, id)
			c.Response().Header().Set(deliverycontext.HeaderXRequestID, id)

			ctx := deliverycontext.WithRequestID(c.Request().Context(), id)
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("request_id", id)))
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
