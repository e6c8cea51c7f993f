package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/vportella/textgate/pkg/infra/prometheus"
)

type metricsMiddleware struct {
	logger *logrus.Logger
}

func NewMetricsMiddleware(logger *logrus.Logger) Middleware {
	return &metricsMiddleware{logger: logger}
}

func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		started := time.Now()

		err := c.Next()

		endpoint := c.Route().Path
		status := statusClass(c.Response().StatusCode())
		prometheus.RequestTotal.WithLabelValues(endpoint, c.Method(), status).Inc()
		prometheus.RequestLatency.WithLabelValues(endpoint).
			Observe(float64(time.Since(started).Milliseconds()))

		return err
	}
}

// statusClass collapses codes into their class ("2xx") to keep label
// cardinality down.
func statusClass(code int) string {
	return fmt.Sprintf("%dxx", code/100)
}
