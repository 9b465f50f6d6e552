package model

import "github.com/shopspring/decimal"

// Product is a stocked item
type Product struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	ReorderLevel int     `json:"reorder_level"`
	SupplierID   string  `json:"supplier_id,omitempty"` // soft reference, may dangle
}

// Stock status labels
const (
	StockStatusLow = "LOW STOCK"
	StockStatusOK  = "OK"
)

// IsLowStock reports whether the quantity is at or below the reorder level
func (p Product) IsLowStock() bool {
	return p.Quantity <= p.ReorderLevel
}

// StockStatus returns the label shown in stock level listings
func (p Product) StockStatus() string {
	if p.IsLowStock() {
		return StockStatusLow
	}
	return StockStatusOK
}

// Value is price times quantity, rounded to cents
func (p Product) Value() decimal.Decimal {
	return decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(p.Quantity))).Round(2)
}

// ProductPatch carries the fields of a partial product update; nil fields are left unchanged
type ProductPatch struct {
	Name         *string  `json:"name,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	Quantity     *int     `json:"quantity,omitempty"`
	ReorderLevel *int     `json:"reorder_level,omitempty"`
	SupplierID   *string  `json:"supplier_id,omitempty"`
}

// Apply returns a copy of p with the patch applied
func (pp ProductPatch) Apply(p Product) Product {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Price != nil {
		p.Price = *pp.Price
	}
	if pp.Quantity != nil {
		p.Quantity = *pp.Quantity
	}
	if pp.ReorderLevel != nil {
		p.ReorderLevel = *pp.ReorderLevel
	}
	if pp.SupplierID != nil {
		p.SupplierID = *pp.SupplierID
	}
	return p
}
