package logger

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// contextKey is a private type for context keys to prevent collisions
type contextKey int

const loggerKey contextKey = iota

// echoKey is where the request-id middleware stores the request logger
const echoKey = "logger"

// WithLogger returns a copy of the context with the logger included
func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// SetEcho stores a request-scoped logger on the echo context
func SetEcho(c echo.Context, l *zap.Logger) {
	c.Set(echoKey, l)
	c.SetRequest(c.Request().WithContext(WithLogger(c.Request().Context(), l)))
}

// FromContext retrieves the logger from the echo context
func FromContext(c echo.Context) *zap.Logger {
	if l, ok := c.Get(echoKey).(*zap.Logger); ok {
		return l
	}
	return Ctx(c.Request().Context())
}

// Ctx retrieves the logger from a plain context
func Ctx(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return l
	}
	return GetLogger()
}
