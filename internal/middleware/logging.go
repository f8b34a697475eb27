package middleware

import (
	"time"

	"github.com/grachmannico95/hexboard-api/pkg/logger"
	"github.com/labstack/echo/v4"
)

func Logging(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// Let echo write the error response so the logged status is final.
				c.Error(err)
			}

			req := c.Request()
			fields := []interface{}{
				"method", req.Method,
				"path", req.URL.Path,
				"status", c.Response().Status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_addr", c.RealIP(),
			}
			if err != nil {
				fields = append(fields, "error", err)
				log.Warn(req.Context(), "HTTP request failed", fields...)
				return nil
			}

			log.Info(req.Context(), "HTTP request", fields...)
			return nil
		}
	}
}
