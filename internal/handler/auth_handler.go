package handler

import (
	"net/http"
	"time"

	mid "github.com/KailasVS666/Inventory-Management-System/internal/middleware"
	"github.com/KailasVS666/Inventory-Management-System/internal/model"
	"github.com/KailasVS666/Inventory-Management-System/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// LoginRequest holds the login credentials
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued session token
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
}

// Login exchanges credentials for a bearer token. Every API client holds its
// own token, so the console's single session slot is not used here.
func (h *Handler) Login(c echo.Context) error {
	log := logger.FromContext(c)

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, log, err)
	}

	user, ok := h.inv.Users.Authenticate(req.Username, req.Password)
	if !ok {
		log.Warn("Login failed", zap.String("username", req.Username))
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid username or password"})
	}

	sess := model.Session{Username: user.Username, Role: user.Role}
	token, expiresAt, err := h.jwt.GenerateToken(sess)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to generate token"})
	}

	log.Info("User logged in", zap.String("username", user.Username), zap.String("role", user.Role))
	return c.JSON(http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Username:  user.Username,
		Role:      user.Role,
	})
}

// Logout revokes the caller's token
func (h *Handler) Logout(c echo.Context) error {
	log := logger.FromContext(c)
	if claims, ok := mid.ClaimsFromContext(c); ok {
		h.jwt.Revoke(claims)
		log.Info("User logged out", zap.String("username", claims.Username))
	}
	return c.NoContent(http.StatusNoContent)
}
