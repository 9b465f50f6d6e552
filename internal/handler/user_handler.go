package handler

import (
	"net/http"

	"github.com/KailasVS666/Inventory-Management-System/internal/model"
	"github.com/KailasVS666/Inventory-Management-System/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// UserRequest creates an account
type UserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// PasswordRequest changes the caller's password
type PasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// UserView hides the password hash
type UserView struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

func userView(u model.User) UserView {
	return UserView{Username: u.Username, Role: u.Role}
}

// ListUsers returns every account
func (h *Handler) ListUsers(c echo.Context) error {
	log := logger.FromContext(c)

	users, err := h.inv.Users.List(session(c).Role)
	if err != nil {
		return fail(c, log, "Failed to list users", err)
	}
	views := make([]UserView, len(users))
	for i, u := range users {
		views[i] = userView(u)
	}
	return c.JSON(http.StatusOK, views)
}

// CreateUser adds an account
func (h *Handler) CreateUser(c echo.Context) error {
	log := logger.FromContext(c)

	var req UserRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, log, err)
	}

	u, err := h.inv.Users.CreateUser(session(c).Role, req.Username, req.Password, req.Role)
	if err != nil {
		return fail(c, log, "Failed to create user", err)
	}
	if err := h.inv.Users.Save(c.Request().Context()); err != nil {
		return fail(c, log, "Failed to save users", err)
	}

	log.Info("User created successfully", zap.String("new_user", u.Username), zap.String("role", u.Role))
	return c.JSON(http.StatusCreated, userView(u))
}

// ChangePassword replaces the caller's password
func (h *Handler) ChangePassword(c echo.Context) error {
	log := logger.FromContext(c)

	var req PasswordRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, log, err)
	}

	if err := h.inv.Users.ChangePassword(session(c), req.OldPassword, req.NewPassword); err != nil {
		return fail(c, log, "Failed to change password", err)
	}
	if err := h.inv.Users.Save(c.Request().Context()); err != nil {
		return fail(c, log, "Failed to save users", err)
	}
	return c.NoContent(http.StatusNoContent)
}
