package logger

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"ukmfilm_backend/internals/configs"
)

// LoggerMiddleware untuk mencatat semua request (zap, structured)
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		fields := []interface{}{
			"reqid", c.Locals("reqid"),
			"ip", c.IP(),
			"method", c.Method(),
			"path", c.OriginalURL(),
			"status", status,
			"latency", time.Since(start).String(),
		}
		switch {
		case err != nil || status >= 500:
			configs.Log.Errorw("[REQ]", append(fields, "err", err)...)
		case status >= 400:
			configs.Log.Warnw("[REQ]", fields...)
		default:
			configs.Log.Infow("[REQ]", fields...)
		}
		return err
	}
}
