package handler

import (
	"net/http"

	"github.com/KailasVS666/Inventory-Management-System/internal/model"
	"github.com/KailasVS666/Inventory-Management-System/internal/store"
	"github.com/KailasVS666/Inventory-Management-System/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// OrderRequest places an order
type OrderRequest struct {
	ProductID    string `json:"product_id"`
	Quantity     int    `json:"quantity"`
	CustomerName string `json:"customer_name"`
}

// SaleRequest takes stock out without recording an order
type SaleRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// OrderView is an order with its product name resolved
type OrderView struct {
	model.Order
	ProductName string `json:"product_name"`
}

// unsavedWarning tells the client the change happened but is not on disk yet.
// Retrying would repeat it.
const unsavedWarning = "Change applied but not saved; it will be written on the next successful save"

// OrderResponse is a created order with the stock state it left behind
type OrderResponse struct {
	Order    model.Order `json:"order"`
	LowStock bool        `json:"low_stock"`
	Warning  string      `json:"warning,omitempty"`
}

// SaleResponse is a processed direct sale
type SaleResponse struct {
	store.Sale
	Warning string `json:"warning,omitempty"`
}

// ListOrders returns the order log in creation order
func (h *Handler) ListOrders(c echo.Context) error {
	orders := h.inv.Orders.List()
	views := make([]OrderView, len(orders))
	for i, o := range orders {
		views[i] = OrderView{Order: o, ProductName: h.inv.Products.ProductName(o.ProductID)}
	}
	return c.JSON(http.StatusOK, views)
}

// CreateOrder places an order and persists orders and products
func (h *Handler) CreateOrder(c echo.Context) error {
	log := logger.FromContext(c)

	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, log, err)
	}

	order, err := h.inv.PlaceOrder(c.Request().Context(), req.ProductID, req.Quantity, req.CustomerName)
	if err != nil && order.ID == "" {
		return fail(c, log, "Failed to place order", err)
	}

	resp := OrderResponse{Order: order}
	if err != nil {
		log.Error("Order placed but not saved", zap.String("order_id", order.ID), zap.Error(err))
		resp.Warning = unsavedWarning
	}
	if p, ok := h.inv.Products.FindByID(order.ProductID); ok {
		resp.LowStock = p.IsLowStock()
	}
	log.Info("Order placed successfully",
		zap.String("order_id", order.ID),
		zap.Float64("total_amount", order.TotalAmount),
		zap.Bool("low_stock", resp.LowStock))
	return c.JSON(http.StatusCreated, resp)
}

// DirectSale processes a sale without an order record
func (h *Handler) DirectSale(c echo.Context) error {
	log := logger.FromContext(c)

	var req SaleRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, log, err)
	}

	sale, err := h.inv.DirectSale(c.Request().Context(), req.ProductID, req.Quantity)
	if err != nil && sale.Quantity == 0 {
		return fail(c, log, "Failed to process sale", err)
	}

	resp := SaleResponse{Sale: sale}
	if err != nil {
		log.Error("Sale processed but not saved", zap.String("product_id", sale.Product.ID), zap.Error(err))
		resp.Warning = unsavedWarning
	}
	return c.JSON(http.StatusOK, resp)
}
