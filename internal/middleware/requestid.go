package middleware

import (
	"github.com/KailasVS666/Inventory-Management-System/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware tags each request with an id and a logger carrying it.
// An id supplied by the client is kept.
func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
			c.Request().Header.Set(RequestIDHeader, requestID)
		}
		c.Response().Header().Set(RequestIDHeader, requestID)
		c.Set("request_id", requestID)

		log := logger.GetLogger().With(
			zap.String("request_id", requestID),
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI))
		logger.SetEcho(c, log)

		return next(c)
	}
}
