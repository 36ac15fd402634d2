package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// AccessLog logs one line per request when env.debug is set, and is a no-op otherwise.
// Bodies are never logged since login requests carry passwords.
func AccessLog(logger *slog.Logger, cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if !cfg.Env.Debug {
			return next
		}

		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			req, res := c.Request(), c.Response()
			attrs := []slog.Attr{
				slog.String("request_id", deliverycontext.GetRequestID(c)),
				slog.String("method", req.Method),
				slog.String("route", c.Path()),
				slog.String("uri", req.URL.Path),
				slog.Int("status", res.Status),
				slog.Int64("bytes_out", res.Size),
				slog.Duration("latency", time.Since(start)),
				slog.String("remote_ip", c.RealIP()),
			}
			if req.URL.RawQuery != "" {
				attrs = append(attrs, slog.String("query", req.URL.RawQuery))
			}
			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
			}

			logger.LogAttrs(req.Context(), levelForStatus(res.Status), "HTTP Request", attrs...)

			return err
		}
	}
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
