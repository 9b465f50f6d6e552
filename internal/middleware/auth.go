package middleware

import (
	"net/http"
	"strings"

	"github.com/KailasVS666/Inventory-Management-System/internal/model"
	"github.com/KailasVS666/Inventory-Management-System/pkg/jwtutil"
	"github.com/KailasVS666/Inventory-Management-System/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	sessionKey = "session"
	claimsKey  = "claims"
)

// AuthMiddleware validates the bearer token and puts the session on the context
func AuthMiddleware(jwt *jwtutil.JWTUtil) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromContext(c)

			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				log.Warn("Missing Authorization header")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing authorization token"})
			}

			scheme, token, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
				log.Warn("Invalid Authorization header format")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid authorization format, expected Bearer token"})
			}

			claims, err := jwt.ValidateToken(token)
			if err != nil {
				log.Warn("Invalid JWT token", zap.Error(err))
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
			}

			c.Set(claimsKey, claims)
			c.Set(sessionKey, claims.Session())
			logger.SetEcho(c, log.With(zap.String("username", claims.Username)))

			return next(c)
		}
	}
}

// RequireAdmin rejects sessions that do not hold the ADMIN role. It must run after AuthMiddleware.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, ok := SessionFromContext(c)
		if !ok || !sess.IsAdmin() {
			logger.FromContext(c).Warn("Admin role required", zap.String("role", sess.Role))
			return c.JSON(http.StatusForbidden, echo.Map{"error": "admin role required"})
		}
		return next(c)
	}
}

// SessionFromContext returns the session set by AuthMiddleware
func SessionFromContext(c echo.Context) (model.Session, bool) {
	sess, ok := c.Get(sessionKey).(model.Session)
	return sess, ok
}

// ClaimsFromContext returns the validated token claims set by AuthMiddleware
func ClaimsFromContext(c echo.Context) (*jwtutil.UserClaims, bool) {
	claims, ok := c.Get(claimsKey).(*jwtutil.UserClaims)
	return claims, ok
}
