// Package middleware holds echo middleware shared across routes.
package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/swimapi/telemetry"
)

// Metrics returns an Echo middleware that records request counts and
// latency. The route path (not the raw URI) is used as the label so
// cardinality stays bounded.
func Metrics(m *telemetry.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			path := c.Path()
			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			m.HTTPRequests.WithLabelValues(
				c.Request().Method, path, strconv.Itoa(status),
			).Inc()
			m.HTTPDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
