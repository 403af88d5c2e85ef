package controller

import (
	"log/slog"
	"time"

	"github.com/labstack/echo"
)

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req, res := c.Request(), c.Response()
			attrs := []any{
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
				slog.Int("status", res.Status),
				slog.Duration("latency", time.Since(start)),
			}
			if err != nil {
				logger.Error("request failed", append(attrs, slog.String("error", err.Error()))...)
			} else {
				logger.Debug("request served", attrs...)
			}

			return nil
		}
	}
}
