package report

import (
	"fmt"
	"time"

	"github.com/KailasVS666/Inventory-Management-System/internal/model"
	"github.com/KailasVS666/Inventory-Management-System/internal/store"
	"github.com/KailasVS666/Inventory-Management-System/prometheus"

	"go.uber.org/zap"
)

// ProductLister is satisfied by store.ProductStore
type ProductLister interface {
	List() []model.Product
}

// OrderLister is satisfied by store.OrderStore
type OrderLister interface {
	List() []model.Order
}

// Engine runs reports against the live stores
type Engine struct {
	products ProductLister
	orders   OrderLister
	now      func() time.Time
	log      *zap.Logger
}

// NewEngine returns an engine reading from products and orders. A nil now means time.Now.
func NewEngine(products ProductLister, orders OrderLister, now func() time.Time, log *zap.Logger) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{products: products, orders: orders, now: now, log: log.With(zap.String("component", "report"))}
}

// LowStock runs the low stock report and updates the low stock gauge
func (e *Engine) LowStock() []model.Product {
	low := LowStock(e.products.List())
	prometheus.UpdateLowStockProducts(len(low))
	return low
}

// InventoryValue runs the inventory value report
func (e *Engine) InventoryValue() ValueReport {
	return InventoryValue(e.products.List())
}

// SalesSummary runs the sales summary as of now
func (e *Engine) SalesSummary() SalesReport {
	return SalesSummary(e.orders.List(), e.now())
}

// Export writes the current content of the report to a fresh timestamped
// file under dir and returns its path and the number of rows written.
// ErrEmptyReport is returned, and nothing is written, when there are no rows.
func (e *Engine) Export(kind Kind, dir string) (string, int, error) {
	var records any
	var count int
	switch kind {
	case KindLowStock:
		low := e.LowStock()
		records, count = low, len(low)
	case KindInventoryValue:
		products := e.products.List()
		records, count = products, len(products)
	case KindSales:
		orders := e.orders.List()
		records, count = orders, len(orders)
	default:
		return "", 0, &store.ValidationError{Field: "kind", Message: fmt.Sprintf("unknown report %q", kind)}
	}
	if count == 0 {
		return "", 0, ErrEmptyReport
	}

	path := ExportPath(dir, kind, e.now())
	if err := ExportCSV(kind, records, path); err != nil {
		e.log.Error("Report export failed", zap.String("kind", string(kind)), zap.Error(err))
		return "", 0, err
	}
	e.log.Info("Report exported", zap.String("kind", string(kind)), zap.String("path", path), zap.Int("rows", count))
	return path, count, nil
}
