package handler

import (
	"errors"
	"net/http"

	mid "github.com/KailasVS666/Inventory-Management-System/internal/middleware"
	"github.com/KailasVS666/Inventory-Management-System/internal/model"
	"github.com/KailasVS666/Inventory-Management-System/internal/report"
	"github.com/KailasVS666/Inventory-Management-System/internal/store"
	"github.com/KailasVS666/Inventory-Management-System/pkg/jwtutil"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Handler serves the inventory API over the shared stores
type Handler struct {
	inv       *store.Inventory
	reports   *report.Engine
	jwt       *jwtutil.JWTUtil
	exportDir string
}

// New returns a handler. Reports are exported under exportDir.
func New(inv *store.Inventory, reports *report.Engine, jwt *jwtutil.JWTUtil, exportDir string) *Handler {
	return &Handler{inv: inv, reports: reports, jwt: jwt, exportDir: exportDir}
}

// Register mounts every route on e
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/health", Health)

	e.POST("/api/login", h.Login)

	api := e.Group("/api", mid.AuthMiddleware(h.jwt))
	api.POST("/logout", h.Logout)

	products := api.Group("/products")
	products.GET("", h.ListProducts)
	products.POST("", h.CreateProduct)
	products.GET("/:id", h.GetProduct)
	products.PUT("/:id", h.UpdateProduct)
	products.DELETE("/:id", h.DeleteProduct, mid.RequireAdmin)
	products.POST("/:id/stock", h.AdjustStock)
	products.PUT("/:id/reorder-level", h.SetReorderLevel)
	api.GET("/stock-levels", h.StockLevels)

	suppliers := api.Group("/suppliers")
	suppliers.GET("", h.ListSuppliers)
	suppliers.POST("", h.CreateSupplier)
	suppliers.GET("/:id", h.GetSupplier)
	suppliers.PUT("/:id", h.UpdateSupplier)
	suppliers.DELETE("/:id", h.DeleteSupplier)
	suppliers.GET("/:id/products", h.SupplierProducts)

	api.GET("/orders", h.ListOrders)
	api.POST("/orders", h.CreateOrder)
	api.POST("/sales", h.DirectSale)

	users := api.Group("/users")
	users.GET("", h.ListUsers, mid.RequireAdmin)
	users.POST("", h.CreateUser, mid.RequireAdmin)
	users.PUT("/me/password", h.ChangePassword)

	reports := api.Group("/reports")
	reports.GET("/low-stock", h.LowStockReport)
	reports.GET("/inventory-value", h.InventoryValueReport)
	reports.GET("/sales-summary", h.SalesSummaryReport)
	reports.POST("/:kind/export", h.ExportReport)

	data := api.Group("/data")
	data.GET("", h.DataInfo)
	data.POST("/save", h.SaveAll)
	data.DELETE("/:name", h.DeleteData, mid.RequireAdmin)
}

// Health answers liveness probes
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// statusFor maps the store error taxonomy onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrInsufficientStock), errors.Is(err, store.ErrOutOfStock):
		return http.StatusConflict
	case errors.Is(err, store.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, store.ErrPermission):
		return http.StatusForbidden
	case errors.Is(err, report.ErrEmptyReport):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// fail logs err and answers with its mapped status. Internal errors are not echoed to the client.
func fail(c echo.Context, log *zap.Logger, msg string, err error) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error(msg, zap.Error(err))
		return c.JSON(status, echo.Map{"error": msg})
	}
	log.Warn(msg, zap.Error(err), zap.Int("status", status))
	return c.JSON(status, echo.Map{"error": err.Error()})
}

func badRequest(c echo.Context, log *zap.Logger, err error) error {
	log.Warn("Invalid request data", zap.Error(err))
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
}

func session(c echo.Context) model.Session {
	sess, _ := mid.SessionFromContext(c)
	return sess
}
