package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/KailasVS666/Inventory-Management-System/internal/model"
	"github.com/KailasVS666/Inventory-Management-System/internal/persistence"
	"github.com/KailasVS666/Inventory-Management-System/prometheus"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// LowStockListener is told about a product whose quantity fell to or below
// its reorder level after a sale.
type LowStockListener func(model.Product)

// OrderOption configures an OrderStore
type OrderOption func(*OrderStore)

// WithClock overrides the time source used to stamp orders
func WithClock(now func() time.Time) OrderOption {
	return func(s *OrderStore) { s.now = now }
}

// WithLowStockListener registers a low-stock listener
func WithLowStockListener(l LowStockListener) OrderOption {
	return func(s *OrderStore) { s.listeners = append(s.listeners, l) }
}

// OrderStore is an append-only order log
type OrderStore struct {
	mu     sync.RWMutex
	orders []model.Order
	ids    idSequence

	now       func() time.Time
	listeners []LowStockListener

	gw  persistence.Gateway
	log *zap.Logger
}

// NewOrderStore returns an empty order log persisting through gw
func NewOrderStore(gw persistence.Gateway, log *zap.Logger, opts ...OrderOption) *OrderStore {
	s := &OrderStore{
		ids: newIDSequence("O"),
		now: time.Now,
		gw:  gw,
		log: log.With(zap.String("store", "orders")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory log with the persisted one
func (s *OrderStore) Load(ctx context.Context) error {
	orders, err := loadCollection[model.Order](ctx, s.gw, s.log, persistence.OrdersFile)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = orders
	ids := make([]string, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
	}
	s.ids.seed(ids)
	return nil
}

// Save writes the whole log
func (s *OrderStore) Save(ctx context.Context) error {
	return saveCollection(ctx, s.gw, s.log, persistence.OrdersFile, s.List())
}

// Create records a sale of quantity units of productID and takes the units
// out of stock. When any check fails neither the order log nor the product
// quantity changes.
func (s *OrderStore) Create(products *ProductStore, productID string, quantity int, customerName string) (model.Order, error) {
	prometheus.RecordStoreOperation("orders", "create")

	productID = strings.TrimSpace(productID)
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		customerName = model.DefaultCustomer
	}

	s.mu.Lock()
	product, err := products.Withdraw(productID, quantity)
	if err != nil {
		s.mu.Unlock()
		s.log.Info("Order rejected",
			zap.String("product_id", productID),
			zap.Int("quantity", quantity),
			zap.Error(err))
		return model.Order{}, err
	}

	order := model.Order{
		ProductID:    productID,
		Quantity:     quantity,
		TotalAmount:  LineTotal(product.Price, quantity),
		CustomerName: customerName,
		CreatedAt:    s.now().UTC(),
	}
	for {
		order.ID = s.ids.mint()
		if s.indexLocked(order.ID) < 0 {
			break
		}
	}
	s.orders = append(s.orders, order)
	s.mu.Unlock()

	prometheus.OrdersCreatedCounter.Inc()
	prometheus.RecordSale(quantity)
	s.log.Info("Order created",
		zap.String("order_id", order.ID),
		zap.String("product_id", productID),
		zap.Int("quantity", quantity),
		zap.Float64("total_amount", order.TotalAmount),
		zap.Int("remaining_stock", product.Quantity))

	if product.IsLowStock() {
		s.notifyLowStock(product)
	}
	return order, nil
}

func (s *OrderStore) notifyLowStock(p model.Product) {
	prometheus.LowStockAlertsCounter.Inc()
	s.log.Warn("Stock is low, consider reordering",
		zap.String("product_id", p.ID),
		zap.Int("quantity", p.Quantity),
		zap.Int("reorder_level", p.ReorderLevel))
	for _, l := range s.listeners {
		l(p)
	}
}

// List returns the orders in insertion order
func (s *OrderStore) List() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *OrderStore) indexLocked(id string) int {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return i
		}
	}
	return -1
}

// LineTotal is unit price times quantity rounded to cents
func LineTotal(price float64, quantity int) float64 {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity))).Round(2).InexactFloat64()
}
