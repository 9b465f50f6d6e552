package middleware

import (
	"strconv"
	"time"

	"github.com/KailasVS666/Inventory-Management-System/prometheus"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records the request count and duration per route
func MetricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			// let the error handler write the response so the status is final
			c.Error(err)
		}

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}
		code := c.Response().Status
		status := strconv.Itoa(code)
		method := c.Request().Method

		prometheus.HttpRequestsTotal.WithLabelValues(method, path, status).Inc()
		prometheus.HttpRequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
		prometheus.HttpStatusCategoryCounter.WithLabelValues(prometheus.StatusCategory(code), method, path).Inc()

		return nil
	}
}
