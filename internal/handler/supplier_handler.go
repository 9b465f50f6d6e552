package handler

import (
	"net/http"

	"github.com/KailasVS666/Inventory-Management-System/internal/model"
	"github.com/KailasVS666/Inventory-Management-System/internal/store"
	"github.com/KailasVS666/Inventory-Management-System/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SupplierRequest defines the structure for supplier creation requests
type SupplierRequest struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
}

// ListSuppliers returns every supplier
func (h *Handler) ListSuppliers(c echo.Context) error {
	return c.JSON(http.StatusOK, h.inv.Suppliers.List())
}

// GetSupplier returns one supplier
func (h *Handler) GetSupplier(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	s, ok := h.inv.Suppliers.FindByID(id)
	if !ok {
		return fail(c, log, "Supplier not found", &store.NotFoundError{Kind: "supplier", ID: id})
	}
	return c.JSON(http.StatusOK, s)
}

// CreateSupplier adds a supplier
func (h *Handler) CreateSupplier(c echo.Context) error {
	log := logger.FromContext(c)

	var req SupplierRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, log, err)
	}

	s, err := h.inv.Suppliers.Add(req.Name, req.ContactInfo)
	if err != nil {
		return fail(c, log, "Failed to create supplier", err)
	}
	if err := h.inv.Suppliers.Save(c.Request().Context()); err != nil {
		return fail(c, log, "Failed to save suppliers", err)
	}

	log.Info("Supplier created successfully", zap.String("supplier_id", s.ID))
	return c.JSON(http.StatusCreated, s)
}

// UpdateSupplier applies a partial update
func (h *Handler) UpdateSupplier(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var patch model.SupplierPatch
	if err := c.Bind(&patch); err != nil {
		return badRequest(c, log, err)
	}

	s, err := h.inv.Suppliers.Update(id, patch)
	if err != nil {
		return fail(c, log, "Failed to update supplier", err)
	}
	if err := h.inv.Suppliers.Save(c.Request().Context()); err != nil {
		return fail(c, log, "Failed to save suppliers", err)
	}
	return c.JSON(http.StatusOK, s)
}

// DeleteSupplier removes a supplier. Products keep the dangling supplier id.
func (h *Handler) DeleteSupplier(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	if err := h.inv.Suppliers.Delete(id); err != nil {
		return fail(c, log, "Failed to delete supplier", err)
	}
	if err := h.inv.Suppliers.Save(c.Request().Context()); err != nil {
		return fail(c, log, "Failed to save suppliers", err)
	}

	log.Info("Supplier deleted successfully", zap.String("supplier_id", id))
	return c.NoContent(http.StatusNoContent)
}

// SupplierProducts lists the products that reference the supplier
func (h *Handler) SupplierProducts(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	if _, ok := h.inv.Suppliers.FindByID(id); !ok {
		return fail(c, log, "Supplier not found", &store.NotFoundError{Kind: "supplier", ID: id})
	}
	return c.JSON(http.StatusOK, h.inv.Products.BySupplier(id))
}
