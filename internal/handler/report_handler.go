package handler

import (
	"net/http"

	"github.com/KailasVS666/Inventory-Management-System/internal/model"
	"github.com/KailasVS666/Inventory-Management-System/internal/report"
	"github.com/KailasVS666/Inventory-Management-System/pkg/logger"

	"github.com/labstack/echo/v4"
)

// LowStockResponse is the low stock report
type LowStockResponse struct {
	Count    int             `json:"count"`
	Products []model.Product `json:"products"`
}

// ExportResponse names the written file
type ExportResponse struct {
	Kind report.Kind `json:"kind"`
	Path string      `json:"path"`
	Rows int         `json:"rows"`
}

// LowStockReport lists products at or below their reorder level
func (h *Handler) LowStockReport(c echo.Context) error {
	low := h.reports.LowStock()
	return c.JSON(http.StatusOK, LowStockResponse{Count: len(low), Products: low})
}

// InventoryValueReport values the stock on hand
func (h *Handler) InventoryValueReport(c echo.Context) error {
	return c.JSON(http.StatusOK, h.reports.InventoryValue())
}

// SalesSummaryReport totals the order log
func (h *Handler) SalesSummaryReport(c echo.Context) error {
	return c.JSON(http.StatusOK, h.reports.SalesSummary())
}

// ExportReport writes a report to a CSV file under the export directory
func (h *Handler) ExportReport(c echo.Context) error {
	log := logger.FromContext(c)

	kind, err := report.ParseKind(c.Param("kind"))
	if err != nil {
		return fail(c, log, "Unknown report", err)
	}
	path, rows, err := h.reports.Export(kind, h.exportDir)
	if err != nil {
		return fail(c, log, "Failed to export report", err)
	}
	return c.JSON(http.StatusCreated, ExportResponse{Kind: kind, Path: path, Rows: rows})
}
