package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bazaar_http_requests_total",
			Help: "Total number of HTTP requests by route, method and status",
		},
		[]string{"route", "method", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bazaar_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
)

// Metrics records request counts and latencies per route template.
func Metrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}

		// Render the error now so the recorded status is the one sent.
		if err != nil {
			c.Error(err)
		}

		httpRequestsTotal.WithLabelValues(route, c.Request().Method, strconv.Itoa(c.Response().Status)).Inc()
		httpRequestDuration.WithLabelValues(route, c.Request().Method).Observe(time.Since(start).Seconds())

		return err
	}
}
