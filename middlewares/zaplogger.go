package middlewares

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/vitoraqdev/SalesOrderManagement/configs/logconfig"
)

// ZapLogger logs each request once it completes, picking the level from the
// response status.
func ZapLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if shouldSkipLog(path) {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		latency := time.Since(start)
		status := c.Response().StatusCode()
		method := c.Method()

		fields := []zap.Field{
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("ip", c.IP()),
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
		}

		logByStatus(fields, status, latency, method)

		return err
	}
}

func shouldSkipLog(path string) bool {
	return strings.HasPrefix(path, "/health") ||
		path == "/favicon.ico" ||
		strings.HasPrefix(path, "/.well-known/")
}

func logByStatus(fields []zap.Field, status int, latency time.Duration, method string) {
	msg := "request"
	switch {
	case status >= 500:
		msg = "server_error"
	case status >= 400 && status != 404:
		msg = "client_error"
	case latency > time.Second:
		msg = "slow_request"
		fields = append(fields, zap.Bool("slow", true))
	}

	switch {
	case status >= 500:
		logconfig.Log.Error(msg, fields...)
	case status == 404:
		// keep expected misses out of the warn stream
		logconfig.Log.Info(msg, fields...)
	case status >= 400:
		logconfig.Log.Warn(msg, fields...)
	default:
		if method != "GET" || latency > 500*time.Millisecond {
			logconfig.Log.Info(msg, fields...)
		} else {
			logconfig.Log.Debug(msg, fields...)
		}
	}
}
