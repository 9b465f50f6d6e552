package store

import (
	"context"
	"math"
	"strings"
	"sync"

	"github.com/KailasVS666/Inventory-Management-System/internal/model"
	"github.com/KailasVS666/Inventory-Management-System/internal/persistence"
	"github.com/KailasVS666/Inventory-Management-System/prometheus"

	"go.uber.org/zap"
)

// UnknownName is returned by name lookups that miss
const UnknownName = "Unknown"

// ProductStore owns the product list. Insertion order is display order.
type ProductStore struct {
	mu       sync.RWMutex
	products []model.Product
	ids      idSequence

	gw  persistence.Gateway
	log *zap.Logger
}

// NewProductStore returns an empty store persisting through gw
func NewProductStore(gw persistence.Gateway, log *zap.Logger) *ProductStore {
	return &ProductStore{
		ids: newIDSequence("P"),
		gw:  gw,
		log: log.With(zap.String("store", "products")),
	}
}

// Load replaces the in-memory list with the persisted one and reseeds the id counter
func (s *ProductStore) Load(ctx context.Context) error {
	products, err := loadCollection[model.Product](ctx, s.gw, s.log, persistence.ProductsFile)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
	ids := make([]string, len(products))
	for i := range products {
		ids[i] = products[i].ID
	}
	s.ids.seed(ids)
	return nil
}

// Save writes the whole list
func (s *ProductStore) Save(ctx context.Context) error {
	return saveCollection(ctx, s.gw, s.log, persistence.ProductsFile, s.List())
}

// Add validates and appends a new product with a freshly minted id
func (s *ProductStore) Add(name string, price float64, quantity, reorderLevel int, supplierID string) (model.Product, error) {
	prometheus.RecordStoreOperation("products", "add")

	p := model.Product{
		Name:         strings.TrimSpace(name),
		Price:        price,
		Quantity:     quantity,
		ReorderLevel: reorderLevel,
		SupplierID:   strings.TrimSpace(supplierID),
	}
	if err := validateProduct(p); err != nil {
		return model.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.mintLocked()
	s.products = append(s.products, p)

	s.log.Info("Product added", zap.String("product_id", p.ID), zap.String("name", p.Name))
	return p, nil
}

func (s *ProductStore) mintLocked() string {
	for {
		id := s.ids.mint()
		if s.indexLocked(id) < 0 {
			return id
		}
	}
}

// Update applies the supplied fields and re-validates the merged record
func (s *ProductStore) Update(id string, patch model.ProductPatch) (model.Product, error) {
	prometheus.RecordStoreOperation("products", "update")

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return model.Product{}, &NotFoundError{Kind: "product", ID: id}
	}

	merged := patch.Apply(s.products[i])
	merged.Name = strings.TrimSpace(merged.Name)
	merged.SupplierID = strings.TrimSpace(merged.SupplierID)
	if err := validateProduct(merged); err != nil {
		return model.Product{}, err
	}
	s.products[i] = merged

	s.log.Info("Product updated", zap.String("product_id", id))
	return merged, nil
}

// Delete removes the product. Orders referencing it are left untouched.
func (s *ProductStore) Delete(id string) error {
	prometheus.RecordStoreOperation("products", "delete")

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return &NotFoundError{Kind: "product", ID: id}
	}
	s.products = append(s.products[:i], s.products[i+1:]...)

	s.log.Info("Product deleted", zap.String("product_id", id))
	return nil
}

// FindByID returns the product with exactly this id
func (s *ProductStore) FindByID(id string) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexLocked(id); i >= 0 {
		return s.products[i], true
	}
	return model.Product{}, false
}

// ProductName resolves an id to a name, or UnknownName
func (s *ProductStore) ProductName(id string) string {
	if p, ok := s.FindByID(id); ok {
		return p.Name
	}
	return UnknownName
}

// List returns a snapshot copy of all products
func (s *ProductStore) List() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Len returns the number of products
func (s *ProductStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// AdjustStock adds delta (negative for removals) to the quantity
func (s *ProductStore) AdjustStock(id string, delta int) (model.Product, error) {
	prometheus.RecordStoreOperation("products", "adjust_stock")

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return model.Product{}, &NotFoundError{Kind: "product", ID: id}
	}
	p := &s.products[i]
	if delta > 0 && p.Quantity > math.MaxInt-delta {
		return model.Product{}, invalid("delta", "would overflow the quantity of %s", id)
	}
	if p.Quantity+delta < 0 {
		return model.Product{}, &InsufficientStockError{ProductID: id, Requested: -delta, Available: p.Quantity}
	}
	p.Quantity += delta

	s.log.Info("Stock adjusted",
		zap.String("product_id", id),
		zap.Int("delta", delta),
		zap.Int("quantity", p.Quantity))
	return *p, nil
}

// Withdraw removes quantity units for a sale. The stock checks and the
// decrement happen under one lock.
func (s *ProductStore) Withdraw(id string, quantity int) (model.Product, error) {
	prometheus.RecordStoreOperation("products", "withdraw")

	if quantity <= 0 {
		return model.Product{}, invalid("quantity", "must be greater than 0")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return model.Product{}, &NotFoundError{Kind: "product", ID: id}
	}
	p := &s.products[i]
	if p.Quantity <= 0 {
		return model.Product{}, &OutOfStockError{ProductID: id}
	}
	if quantity > p.Quantity {
		return model.Product{}, &InsufficientStockError{ProductID: id, Requested: quantity, Available: p.Quantity}
	}
	p.Quantity -= quantity
	return *p, nil
}

// SetReorderLevel changes only the reorder threshold
func (s *ProductStore) SetReorderLevel(id string, level int) (model.Product, error) {
	return s.Update(id, model.ProductPatch{ReorderLevel: &level})
}

// StockLevel pairs a product with its stock status label
type StockLevel struct {
	Product model.Product `json:"product"`
	Status  string        `json:"status"`
}

// StockLevels lists every product with its LOW STOCK / OK status
func (s *ProductStore) StockLevels() []StockLevel {
	products := s.List()
	levels := make([]StockLevel, len(products))
	for i, p := range products {
		levels[i] = StockLevel{Product: p, Status: p.StockStatus()}
	}
	return levels
}

// SearchByName matches a case-insensitive substring of the name
func (s *ProductStore) SearchByName(term string) []model.Product {
	term = strings.ToLower(strings.TrimSpace(term))
	return s.filter(func(p model.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), term)
	})
}

// SearchByPriceRange returns products priced within [minPrice, maxPrice]
func (s *ProductStore) SearchByPriceRange(minPrice, maxPrice float64) ([]model.Product, error) {
	if math.IsNaN(minPrice) || math.IsNaN(maxPrice) {
		return nil, invalid("price", "must be a number")
	}
	if minPrice < 0 {
		return nil, invalid("min_price", "must be 0 or greater")
	}
	if maxPrice < minPrice {
		return nil, invalid("max_price", "must not be below the minimum price")
	}
	return s.filter(func(p model.Product) bool {
		return p.Price >= minPrice && p.Price <= maxPrice
	}), nil
}

// BySupplier returns the products referencing supplierID
func (s *ProductStore) BySupplier(supplierID string) []model.Product {
	supplierID = strings.TrimSpace(supplierID)
	return s.filter(func(p model.Product) bool {
		return p.SupplierID == supplierID
	})
}

func (s *ProductStore) filter(keep func(model.Product) bool) []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []model.Product{}
	for _, p := range s.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func (s *ProductStore) indexLocked(id string) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

func validateProduct(p model.Product) error {
	switch {
	case p.Name == "":
		return invalid("name", "must not be empty")
	case math.IsNaN(p.Price) || math.IsInf(p.Price, 0):
		return invalid("price", "must be a finite number")
	case p.Price <= 0:
		return invalid("price", "must be greater than 0")
	case p.Quantity < 0:
		return invalid("quantity", "must be 0 or greater")
	case p.ReorderLevel < 0:
		return invalid("reorder_level", "must be 0 or greater")
	}
	return nil
}
