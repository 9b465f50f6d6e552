package report

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/KailasVS666/Inventory-Management-System/internal/model"
	"github.com/KailasVS666/Inventory-Management-System/internal/persistence"
	"github.com/KailasVS666/Inventory-Management-System/internal/store"
)

// Kind names an exportable report
type Kind string

const (
	KindLowStock       Kind = "low_stock"
	KindInventoryValue Kind = "inventory_value"
	KindSales          Kind = "sales"
)

// Kinds lists the exportable reports
var Kinds = []Kind{KindLowStock, KindInventoryValue, KindSales}

// ErrEmptyReport is returned when a report has no rows to export
var ErrEmptyReport = errors.New("nothing to export")

const notAvailable = "N/A"

// ParseKind accepts a report kind in either snake or kebab case
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", &store.ValidationError{Field: "kind", Message: fmt.Sprintf("unknown report %q", s)}
}

// ExportPath builds dir/<kind>_report_<yyyyMMdd_HHmmss>.csv
func ExportPath(dir string, kind Kind, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s_report_%s.csv", kind, now.Format("20060102_150405")))
}

// ExportCSV writes records as CSV to dest. Low stock and inventory value
// reports take []model.Product, the sales report takes []model.Order. The
// directory is created when missing and an existing file at dest is only
// replaced once the new content is fully written.
func ExportCSV(kind Kind, records any, dest string) error {
	rows, err := csvRows(kind, records)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return &store.IoError{Op: "export", Name: dest, Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return &store.IoError{Op: "export", Name: dest, Err: err}
	}
	if err := persistence.WriteFileAtomic(dest, buf.Bytes(), 0o644); err != nil {
		return &store.IoError{Op: "export", Name: dest, Err: err}
	}
	return nil
}

func csvRows(kind Kind, records any) ([][]string, error) {
	switch kind {
	case KindLowStock:
		products, ok := records.([]model.Product)
		if !ok {
			return nil, recordsMismatch(kind, records)
		}
		rows := [][]string{{"ID", "Name", "Quantity", "Reorder Level", "Status", "Supplier ID"}}
		for _, p := range products {
			rows = append(rows, []string{
				p.ID,
				p.Name,
				strconv.Itoa(p.Quantity),
				strconv.Itoa(p.ReorderLevel),
				p.StockStatus(),
				supplierOrNA(p.SupplierID),
			})
		}
		return rows, nil

	case KindInventoryValue:
		products, ok := records.([]model.Product)
		if !ok {
			return nil, recordsMismatch(kind, records)
		}
		rows := [][]string{{"ID", "Name", "Price", "Quantity", "Item Value", "Supplier ID"}}
		for _, p := range products {
			rows = append(rows, []string{
				p.ID,
				p.Name,
				money(p.Price),
				strconv.Itoa(p.Quantity),
				p.Value().StringFixed(2),
				supplierOrNA(p.SupplierID),
			})
		}
		return rows, nil

	case KindSales:
		orders, ok := records.([]model.Order)
		if !ok {
			return nil, recordsMismatch(kind, records)
		}
		rows := [][]string{{"Order ID", "Product ID", "Quantity", "Total Amount", "Customer", "Created At"}}
		for _, o := range orders {
			created := ""
			if !o.CreatedAt.IsZero() {
				created = o.CreatedAt.UTC().Format(time.RFC3339)
			}
			rows = append(rows, []string{
				o.ID,
				o.ProductID,
				strconv.Itoa(o.Quantity),
				money(o.TotalAmount),
				o.CustomerName,
				created,
			})
		}
		return rows, nil
	}
	return nil, &store.ValidationError{Field: "kind", Message: fmt.Sprintf("unknown report %q", kind)}
}

func recordsMismatch(kind Kind, records any) error {
	return &store.ValidationError{Field: "records", Message: fmt.Sprintf("%s report cannot export %T", kind, records)}
}

func supplierOrNA(id string) string {
	if id == "" {
		return notAvailable
	}
	return id
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
