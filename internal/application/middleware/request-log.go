package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"go-web/pkg/log"
	"go-web/pkg/msg"
)

// SetupRequestLogger registers request id propagation and the request logging middleware.
func SetupRequestLogger(e *echo.Echo) {
	e.Use(echomw.RequestID())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		HandleError:  true,
		Skipper: func(c echo.Context) bool {
			return skipRequestLog(c.Request().URL.Path)
		},
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}

			if v.Error == nil {
				log.Info(msg.GetMessage("app.req-end", v.Method, v.URI, v.Status, v.Latency), fields...)
				return nil
			}

			log.Error(msg.GetMessage("app.req-fail", v.Method, v.URI, v.Status, v.Latency, v.Error),
				append(fields, zap.Error(v.Error))...)
			return nil
		},
	}))
}

// skipRequestLog keeps health probes, metrics scrapes and swagger assets out of the request log
func skipRequestLog(path string) bool {
	return strings.HasSuffix(path, "/health") ||
		strings.HasPrefix(path, "/metrics") ||
		strings.Contains(path, "/swagger/")
}
