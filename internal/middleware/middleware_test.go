package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KailasVS666/Inventory-Management-System/internal/model"
	"github.com/KailasVS666/Inventory-Management-System/pkg/config"
	"github.com/KailasVS666/Inventory-Management-System/pkg/jwtutil"
	"github.com/KailasVS666/Inventory-Management-System/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*echo.Echo, *jwtutil.JWTUtil) {
	t.Helper()
	jwt := jwtutil.NewJWTUtil(&config.JWTConfig{SigningKey: "test-key", ExpirationHours: 1})

	e := echo.New()
	e.Use(RequestIDMiddleware, MetricsMiddleware)
	api := e.Group("/api", AuthMiddleware(jwt))
	api.GET("/whoami", func(c echo.Context) error {
		sess, _ := SessionFromContext(c)
		return c.JSON(http.StatusOK, sess)
	})
	api.GET("/admin", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}, RequireAdmin)
	return e, jwt
}

func token(t *testing.T, jwt *jwtutil.JWTUtil, role string) string {
	t.Helper()
	tok, _, err := jwt.GenerateToken(model.Session{Username: "u-" + role, Role: role})
	require.NoError(t, err)
	return tok
}

func do(e *echo.Echo, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware(t *testing.T) {
	e, jwt := newTestServer(t)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer abc", http.StatusUnauthorized},
		{"valid token", "Bearer " + token(t, jwt, model.RoleStaff), http.StatusOK},
		{"lower case scheme", "bearer " + token(t, jwt, model.RoleStaff), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, "/api/whoami", tt.header)
			assert.Equal(t, tt.want, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
		})
	}

	rec := do(e, "/api/whoami", "Bearer "+token(t, jwt, model.RoleStaff))
	assert.JSONEq(t, `{"username":"u-STAFF","role":"STAFF"}`, rec.Body.String())
}

func TestRequireAdmin(t *testing.T) {
	e, jwt := newTestServer(t)

	assert.Equal(t, http.StatusForbidden, do(e, "/api/admin", "Bearer "+token(t, jwt, model.RoleStaff)).Code)
	assert.Equal(t, http.StatusNoContent, do(e, "/api/admin", "Bearer "+token(t, jwt, model.RoleAdmin)).Code)
}

func TestRequestIDIsKept(t *testing.T) {
	e, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestMetricsMiddlewareCountsFinalStatus(t *testing.T) {
	e, _ := newTestServer(t)
	counter := prometheus.HttpRequestsTotal.WithLabelValues(http.MethodGet, "/api/whoami", "401")
	before := testutil.ToFloat64(counter)

	do(e, "/api/whoami", "")

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
