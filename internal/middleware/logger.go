// Package middleware provides the echo middleware used by the HTTP
// boundary: request logging and Redis-backed rate limiting.
package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs one structured line per request with method,
// path, status, latency and client IP.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			latency := time.Since(start)

			logrus.WithFields(logrus.Fields{
				"method":     c.Request().Method,
				"path":       c.Request().URL.Path,
				"status":     c.Response().Status,
				"latency_ms": float64(latency.Microseconds()) / 1000.0,
				"ip":         c.RealIP(),
			}).Info("request")
			return err
		}
	}
}
