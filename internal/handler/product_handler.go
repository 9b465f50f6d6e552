package handler

import (
	"math"
	"net/http"
	"strconv"

	"github.com/KailasVS666/Inventory-Management-System/internal/model"
	"github.com/KailasVS666/Inventory-Management-System/internal/store"
	"github.com/KailasVS666/Inventory-Management-System/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ProductRequest defines the structure for product creation requests
type ProductRequest struct {
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	ReorderLevel int     `json:"reorder_level"`
	SupplierID   string  `json:"supplier_id"`
}

// StockRequest adjusts a quantity; negative deltas remove stock
type StockRequest struct {
	Delta int `json:"delta"`
}

// ReorderLevelRequest sets a reorder threshold
type ReorderLevelRequest struct {
	ReorderLevel *int `json:"reorder_level"`
}

// ProductView is a product with its supplier resolved
type ProductView struct {
	model.Product
	SupplierName string `json:"supplier_name"`
	Status       string `json:"status"`
}

func (h *Handler) productView(p model.Product) ProductView {
	name := store.UnknownName
	if p.SupplierID != "" {
		name = h.inv.Suppliers.SupplierName(p.SupplierID)
	}
	return ProductView{Product: p, SupplierName: name, Status: p.StockStatus()}
}

// ListProducts handles retrieving products. The name, min_price/max_price
// and supplier_id filters combine.
func (h *Handler) ListProducts(c echo.Context) error {
	log := logger.FromContext(c)
	products := h.inv.Products.List()

	if name := c.QueryParam("name"); name != "" {
		products = intersect(products, h.inv.Products.SearchByName(name))
		log.Debug("Filtering products by name", zap.String("name", name))
	}

	minParam, maxParam := c.QueryParam("min_price"), c.QueryParam("max_price")
	if minParam != "" || maxParam != "" {
		minPrice, maxPrice := 0.0, math.MaxFloat64
		var err error
		if minParam != "" {
			if minPrice, err = strconv.ParseFloat(minParam, 64); err != nil {
				return badRequest(c, log, err)
			}
		}
		if maxParam != "" {
			if maxPrice, err = strconv.ParseFloat(maxParam, 64); err != nil {
				return badRequest(c, log, err)
			}
		}
		inRange, err := h.inv.Products.SearchByPriceRange(minPrice, maxPrice)
		if err != nil {
			return fail(c, log, "Invalid price range", err)
		}
		products = intersect(products, inRange)
	}

	if supplierID := c.QueryParam("supplier_id"); supplierID != "" {
		products = intersect(products, h.inv.Products.BySupplier(supplierID))
	}

	log.Info("Products retrieved successfully", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, products)
}

// intersect keeps the products of a that also appear in b
func intersect(a, b []model.Product) []model.Product {
	keep := make(map[string]bool, len(b))
	for _, p := range b {
		keep[p.ID] = true
	}
	out := []model.Product{}
	for _, p := range a {
		if keep[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

// GetProduct handles retrieving a single product by ID
func (h *Handler) GetProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	p, ok := h.inv.Products.FindByID(id)
	if !ok {
		return fail(c, log, "Product not found", &store.NotFoundError{Kind: "product", ID: id})
	}
	return c.JSON(http.StatusOK, h.productView(p))
}

// CreateProduct handles creating a new product
func (h *Handler) CreateProduct(c echo.Context) error {
	log := logger.FromContext(c)

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, log, err)
	}

	p, err := h.inv.Products.Add(req.Name, req.Price, req.Quantity, req.ReorderLevel, req.SupplierID)
	if err != nil {
		return fail(c, log, "Failed to create product", err)
	}
	if err := h.inv.Products.Save(c.Request().Context()); err != nil {
		return fail(c, log, "Failed to save products", err)
	}

	log.Info("Product created successfully", zap.String("product_id", p.ID), zap.String("name", p.Name))
	return c.JSON(http.StatusCreated, p)
}

// UpdateProduct applies a partial update
func (h *Handler) UpdateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var patch model.ProductPatch
	if err := c.Bind(&patch); err != nil {
		return badRequest(c, log, err)
	}

	p, err := h.inv.Products.Update(id, patch)
	if err != nil {
		return fail(c, log, "Failed to update product", err)
	}
	if err := h.inv.Products.Save(c.Request().Context()); err != nil {
		return fail(c, log, "Failed to save products", err)
	}

	log.Info("Product updated successfully", zap.String("product_id", id))
	return c.JSON(http.StatusOK, p)
}

// DeleteProduct removes a product. Orders for it keep their product id.
func (h *Handler) DeleteProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	if err := h.inv.Products.Delete(id); err != nil {
		return fail(c, log, "Failed to delete product", err)
	}
	if err := h.inv.Products.Save(c.Request().Context()); err != nil {
		return fail(c, log, "Failed to save products", err)
	}

	log.Info("Product deleted successfully", zap.String("product_id", id))
	return c.NoContent(http.StatusNoContent)
}

// AdjustStock adds or removes units
func (h *Handler) AdjustStock(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req StockRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, log, err)
	}

	p, err := h.inv.Products.AdjustStock(id, req.Delta)
	if err != nil {
		return fail(c, log, "Failed to adjust stock", err)
	}
	if err := h.inv.Products.Save(c.Request().Context()); err != nil {
		return fail(c, log, "Failed to save products", err)
	}
	return c.JSON(http.StatusOK, h.productView(p))
}

// SetReorderLevel changes the reorder threshold
func (h *Handler) SetReorderLevel(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req ReorderLevelRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, log, err)
	}
	if req.ReorderLevel == nil {
		return fail(c, log, "Failed to set reorder level", &store.ValidationError{Field: "reorder_level", Message: "is required"})
	}

	p, err := h.inv.Products.SetReorderLevel(id, *req.ReorderLevel)
	if err != nil {
		return fail(c, log, "Failed to set reorder level", err)
	}
	if err := h.inv.Products.Save(c.Request().Context()); err != nil {
		return fail(c, log, "Failed to save products", err)
	}
	return c.JSON(http.StatusOK, h.productView(p))
}

// StockLevels lists every product with its stock status
func (h *Handler) StockLevels(c echo.Context) error {
	return c.JSON(http.StatusOK, h.inv.Products.StockLevels())
}
