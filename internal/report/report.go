// Package report computes the low stock, inventory value and sales reports
// and exports them as CSV.
package report

import (
	"sort"
	"time"

	"github.com/KailasVS666/Inventory-Management-System/internal/model"

	"github.com/shopspring/decimal"
)

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
)

// LowStock returns the products at or below their reorder level, in store order
func LowStock(products []model.Product) []model.Product {
	out := []model.Product{}
	for _, p := range products {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out
}

// ValueItem is one row of the inventory value report
type ValueItem struct {
	Product model.Product `json:"product"`
	Value   float64       `json:"value"`
}

// ValueReport is the inventory value report
type ValueReport struct {
	Items               []ValueItem `json:"items"`
	TotalProducts       int         `json:"total_products"`
	TotalItems          int         `json:"total_items"`
	TotalValue          float64     `json:"total_value"`
	AverageItemValue    float64     `json:"average_item_value"`
	AverageProductValue float64     `json:"average_product_value"`
}

// InventoryValue values every product at price times quantity. The averages
// are zero when there is nothing to divide by.
func InventoryValue(products []model.Product) ValueReport {
	r := ValueReport{Items: make([]ValueItem, 0, len(products)), TotalProducts: len(products)}
	total := decimal.Zero
	for _, p := range products {
		v := p.Value()
		total = total.Add(v)
		r.TotalItems += p.Quantity
		r.Items = append(r.Items, ValueItem{Product: p, Value: v.InexactFloat64()})
	}
	r.TotalValue = total.InexactFloat64()
	if r.TotalItems > 0 {
		r.AverageItemValue = total.Div(decimal.NewFromInt(int64(r.TotalItems))).Round(2).InexactFloat64()
	}
	if r.TotalProducts > 0 {
		r.AverageProductValue = total.Div(decimal.NewFromInt(int64(r.TotalProducts))).Round(2).InexactFloat64()
	}
	return r
}

// Period aggregates the orders of one day or month
type Period struct {
	Period  string  `json:"period"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// SalesReport is the sales summary
type SalesReport struct {
	TotalOrders       int      `json:"total_orders"`
	TotalItemsSold    int      `json:"total_items_sold"`
	TotalRevenue      float64  `json:"total_revenue"`
	AverageOrderValue float64  `json:"average_order_value"`
	Today             Period   `json:"today"`
	ThisMonth         Period   `json:"this_month"`
	Daily             []Period `json:"daily"`
	Monthly           []Period `json:"monthly"`
}

// SalesSummary totals the orders and buckets them by the UTC day and month of
// their creation time. Today and ThisMonth are taken relative to now. Orders
// without a creation time count towards the totals only.
func SalesSummary(orders []model.Order, now time.Time) SalesReport {
	r := SalesReport{TotalOrders: len(orders)}
	revenue := decimal.Zero
	daily := map[string]*bucket{}
	monthly := map[string]*bucket{}

	for _, o := range orders {
		amount := decimal.NewFromFloat(o.TotalAmount)
		revenue = revenue.Add(amount)
		r.TotalItemsSold += o.Quantity
		if o.CreatedAt.IsZero() {
			continue
		}
		at := o.CreatedAt.UTC()
		add(daily, at.Format(dayLayout), amount)
		add(monthly, at.Format(monthLayout), amount)
	}

	r.TotalRevenue = revenue.Round(2).InexactFloat64()
	if r.TotalOrders > 0 {
		r.AverageOrderValue = revenue.Div(decimal.NewFromInt(int64(r.TotalOrders))).Round(2).InexactFloat64()
	}
	r.Daily = periods(daily)
	r.Monthly = periods(monthly)

	today := now.UTC().Format(dayLayout)
	month := now.UTC().Format(monthLayout)
	r.Today = Period{Period: today}
	r.ThisMonth = Period{Period: month}
	if b, ok := daily[today]; ok {
		r.Today = b.period(today)
	}
	if b, ok := monthly[month]; ok {
		r.ThisMonth = b.period(month)
	}
	return r
}

type bucket struct {
	orders  int
	revenue decimal.Decimal
}

func (b *bucket) period(key string) Period {
	return Period{Period: key, Orders: b.orders, Revenue: b.revenue.Round(2).InexactFloat64()}
}

func add(buckets map[string]*bucket, key string, amount decimal.Decimal) {
	b, ok := buckets[key]
	if !ok {
		b = &bucket{revenue: decimal.Zero}
		buckets[key] = b
	}
	b.orders++
	b.revenue = b.revenue.Add(amount)
}

func periods(buckets map[string]*bucket) []Period {
	out := make([]Period, 0, len(buckets))
	for key, b := range buckets {
		out = append(out, b.period(key))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}
