package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"next-target-mock/internal/metrics"
)

// Metrics counts requests and observes latency per matched route.
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		settle(c, c.Next())

		route := c.Route().Path
		method := c.Method()
		m.Requests.WithLabelValues(method, route, strconv.Itoa(c.Response().StatusCode())).Inc()
		m.Latency.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		return nil
	}
}
