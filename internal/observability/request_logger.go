package observability

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// UnmatchedRoute labels requests that did not reach a registered route.
const UnmatchedRoute = "unmatched"

// RouteLabel names the route template that served c, such as "/pet/:id". The
// raw path is never used, so metric keys stay bounded by the route table.
func RouteLabel(c *fiber.Ctx) string {
	route := c.Route()
	if route == nil || route.Path == "" || len(route.Handlers) == 0 {
		return UnmatchedRoute
	}
	return route.Path
}

// RequestLogger logs each request once it completes and records it in metrics.
// It keeps an incoming X-Request-ID or assigns a new one.
func RequestLogger(logger *zap.Logger, metrics *Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDHeader, requestID)

		err := c.Next()

		status := c.Response().StatusCode()
		latency := time.Since(start)
		metrics.RecordRequest(RouteLabel(c), c.Method(), status, latency)

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", latency),
		}
		switch {
		case status >= fiber.StatusInternalServerError:
			logger.Error("request completed", fields...)
		case status >= fiber.StatusBadRequest:
			logger.Warn("request completed", fields...)
		default:
			logger.Info("request completed", fields...)
		}
		return err
	}
}
