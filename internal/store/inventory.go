package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/KailasVS666/Inventory-Management-System/internal/model"
	"github.com/KailasVS666/Inventory-Management-System/internal/persistence"
	"github.com/KailasVS666/Inventory-Management-System/prometheus"

	"go.uber.org/zap"
)

// Options configures an Inventory
type Options struct {
	// DefaultAdminPassword seeds the admin account of an empty user store
	DefaultAdminPassword string
	// HashCost overrides the bcrypt cost; zero keeps the default
	HashCost int
	// Clock stamps orders; nil means time.Now
	Clock func() time.Time
	// LowStock is called after a sale leaves a product at or below its reorder level
	LowStock LowStockListener
}

// Inventory wires the four stores to one persistence gateway. Stores never
// write by themselves: each front-end action ends by saving the collections
// it touched, and the action helpers below do that for multi-store actions.
type Inventory struct {
	Products  *ProductStore
	Suppliers *SupplierStore
	Orders    *OrderStore
	Users     *UserStore

	gw   persistence.Gateway
	log  *zap.Logger
	opts Options
}

// New builds empty stores over gw. Call Load and then Bootstrap.
func New(gw persistence.Gateway, log *zap.Logger, opts Options) *Inventory {
	orderOpts := []OrderOption{}
	if opts.Clock != nil {
		orderOpts = append(orderOpts, WithClock(opts.Clock))
	}
	if opts.LowStock != nil {
		orderOpts = append(orderOpts, WithLowStockListener(opts.LowStock))
	}
	userOpts := []UserOption{}
	if opts.HashCost != 0 {
		userOpts = append(userOpts, WithHashCost(opts.HashCost))
	}

	return &Inventory{
		Products:  NewProductStore(gw, log),
		Suppliers: NewSupplierStore(gw, log),
		Orders:    NewOrderStore(gw, log, orderOpts...),
		Users:     NewUserStore(gw, log, userOpts...),
		gw:        gw,
		log:       log,
		opts:      opts,
	}
}

// Load reads every collection. A collection that fails to load leaves its
// store empty; the returned error joins all failures so the caller can
// inspect them with errors.Is(err, persistence.ErrCorruptData).
func (inv *Inventory) Load(ctx context.Context) error {
	return errors.Join(
		inv.Products.Load(ctx),
		inv.Suppliers.Load(ctx),
		inv.Orders.Load(ctx),
		inv.Users.Load(ctx),
	)
}

// Quarantine copies every corrupt collection named in err to
// "<name>.corrupt" so that acknowledging the damage and carrying on with an
// empty store does not destroy the original bytes.
func (inv *Inventory) Quarantine(ctx context.Context, err error) ([]string, error) {
	var moved []string
	for _, name := range CorruptCollections(err) {
		data, readErr := inv.gw.Read(ctx, name)
		if readErr != nil {
			return moved, &IoError{Op: "quarantine", Name: name, Err: readErr}
		}
		backup := name + ".corrupt"
		if writeErr := inv.gw.Write(ctx, backup, data); writeErr != nil {
			return moved, &IoError{Op: "quarantine", Name: backup, Err: writeErr}
		}
		inv.log.Warn("Corrupt collection quarantined", zap.String("collection", name), zap.String("backup", backup))
		moved = append(moved, backup)
	}
	return moved, nil
}

// CorruptCollections lists the collection names of every CorruptDataError in err
func CorruptCollections(err error) []string {
	var names []string
	var walk func(error)
	walk = func(e error) {
		switch v := e.(type) {
		case nil:
		case *persistence.CorruptDataError:
			names = append(names, v.Name)
		case interface{ Unwrap() []error }:
			for _, inner := range v.Unwrap() {
				walk(inner)
			}
		default:
			walk(errors.Unwrap(e))
		}
	}
	walk(err)
	return names
}

// OnlyCorrupt reports whether every failure joined in err is corrupt data,
// which an operator may acknowledge, as opposed to an I/O failure.
func OnlyCorrupt(err error) bool {
	switch v := err.(type) {
	case nil:
		return false
	case *persistence.CorruptDataError:
		return true
	case interface{ Unwrap() []error }:
		for _, inner := range v.Unwrap() {
			if !OnlyCorrupt(inner) {
				return false
			}
		}
		return len(v.Unwrap()) > 0
	default:
		return errors.Is(err, persistence.ErrCorruptData)
	}
}

// Bootstrap seeds the default admin into an empty user store
func (inv *Inventory) Bootstrap(ctx context.Context) error {
	created, err := inv.Users.EnsureDefaultAdmin(ctx, inv.opts.DefaultAdminPassword)
	if err != nil {
		return fmt.Errorf("seed default admin: %w", err)
	}
	if created {
		inv.log.Info("Seeded default admin account", zap.String("username", DefaultAdminUsername))
	}
	return nil
}

// SaveAll writes every collection and reports all failures together
func (inv *Inventory) SaveAll(ctx context.Context) error {
	err := errors.Join(
		inv.Products.Save(ctx),
		inv.Suppliers.Save(ctx),
		inv.Orders.Save(ctx),
		inv.Users.Save(ctx),
	)
	if err == nil {
		inv.log.Info("All collections saved")
	}
	return err
}

// PlaceOrder creates an order and persists the order log and the products.
// On a save failure the order is still returned together with the error.
func (inv *Inventory) PlaceOrder(ctx context.Context, productID string, quantity int, customerName string) (model.Order, error) {
	order, err := inv.Orders.Create(inv.Products, productID, quantity, customerName)
	if err != nil {
		return model.Order{}, err
	}
	return order, errors.Join(inv.Orders.Save(ctx), inv.Products.Save(ctx))
}

// Sale is the outcome of a direct sale, which takes stock without recording an order
type Sale struct {
	Product     model.Product `json:"product"`
	Quantity    int           `json:"quantity"`
	UnitPrice   float64       `json:"unit_price"`
	TotalAmount float64       `json:"total_amount"`
	LowStock    bool          `json:"low_stock"`
}

// DirectSale takes quantity units out of stock and persists the products.
// On a save failure the sale is still returned together with the error.
func (inv *Inventory) DirectSale(ctx context.Context, productID string, quantity int) (Sale, error) {
	product, err := inv.Products.Withdraw(productID, quantity)
	if err != nil {
		return Sale{}, err
	}
	prometheus.RecordSale(quantity)

	sale := Sale{
		Product:     product,
		Quantity:    quantity,
		UnitPrice:   product.Price,
		TotalAmount: LineTotal(product.Price, quantity),
		LowStock:    product.IsLowStock(),
	}
	inv.log.Info("Direct sale processed",
		zap.String("product_id", product.ID),
		zap.Int("quantity", quantity),
		zap.Float64("total_amount", sale.TotalAmount),
		zap.Bool("low_stock", sale.LowStock))
	if sale.LowStock {
		prometheus.LowStockAlertsCounter.Inc()
		if inv.opts.LowStock != nil {
			inv.opts.LowStock(product)
		}
	}
	return sale, inv.Products.Save(ctx)
}

// DataInfo describes every collection file
func (inv *Inventory) DataInfo(ctx context.Context) ([]persistence.Info, error) {
	return persistence.Describe(ctx, inv.gw, persistence.DataFiles...)
}

// DeleteData removes one persisted collection. The in-memory store is untouched.
func (inv *Inventory) DeleteData(ctx context.Context, name string) error {
	if !slices.Contains(persistence.DataFiles, name) {
		return &NotFoundError{Kind: "data file", ID: name}
	}
	if err := inv.gw.Delete(ctx, name); err != nil {
		return &IoError{Op: "delete", Name: name, Err: err}
	}
	inv.log.Info("Data file deleted", zap.String("collection", name))
	return nil
}
