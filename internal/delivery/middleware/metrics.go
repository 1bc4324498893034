package middleware

import (
	"strconv"
	"time"

	"tracker/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// unmatchedRoute labels requests that hit no registered route.
const unmatchedRoute = "unknown"

// MetricsMiddleware instruments request counts and latency per route.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates the middleware; a nil *metrics.Metrics disables it.
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle records the request once the error handler has written the response.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	if m.metrics == nil {
		return next
	}

	return func(c echo.Context) error {
		start := time.Now()
		m.metrics.InflightInc()
		defer m.metrics.InflightDec()

		err := next(c)
		if err != nil {
			// Commit the error response now so the status below is final.
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = unmatchedRoute
		}
		m.metrics.ObserveRequest(c.Request().Method, route, strconv.Itoa(c.Response().Status), time.Since(start))

		return nil
	}
}
