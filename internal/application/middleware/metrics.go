package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"go-web/pkg/metrics"
)

// SetupMetrics records every request in m and exposes m on path.
func SetupMetrics(e *echo.Echo, m *metrics.Metrics, path string) {
	e.Use(RequestMetrics(m))
	e.GET(path, echo.WrapHandler(m.Handler()))
}

// RequestMetrics observes count and latency per route template, so path parameters do not explode cardinality.
func RequestMetrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				var httpErr *echo.HTTPError
				if errors.As(err, &httpErr) {
					status = httpErr.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			m.RecordRequest(c.Request().Method, route, status, time.Since(start))
			return err
		}
	}
}
