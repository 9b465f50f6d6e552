// Package app wires configuration, persistence and the stores together for
// both front ends.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/KailasVS666/Inventory-Management-System/internal/model"
	"github.com/KailasVS666/Inventory-Management-System/internal/persistence"
	"github.com/KailasVS666/Inventory-Management-System/internal/report"
	"github.com/KailasVS666/Inventory-Management-System/internal/store"
	"github.com/KailasVS666/Inventory-Management-System/pkg/config"
	"github.com/KailasVS666/Inventory-Management-System/pkg/database"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrCorruptNotAcknowledged stops startup when the operator declines to
// continue past unreadable collections.
var ErrCorruptNotAcknowledged = errors.New("corrupt data was not acknowledged")

// Acknowledger decides whether startup may continue with the named
// collections treated as empty.
type Acknowledger func(corrupt []string) (bool, error)

// App holds the shared inventory and its collaborators
type App struct {
	Config    *config.Config
	Inventory *store.Inventory
	Reports   *report.Engine

	log *zap.Logger
	db  *gorm.DB
}

// New opens the configured gateway and builds empty stores. Call Start next.
func New(cfg *config.Config, log *zap.Logger, opts store.Options) (*App, error) {
	a := &App{Config: cfg, log: log}

	gw, err := a.openGateway()
	if err != nil {
		return nil, err
	}

	if opts.DefaultAdminPassword == "" {
		opts.DefaultAdminPassword = cfg.Auth.DefaultAdminPassword
	}
	if opts.LowStock == nil {
		opts.LowStock = func(p model.Product) {
			log.Warn("Low stock alert",
				zap.String("product_id", p.ID),
				zap.String("name", p.Name),
				zap.Int("quantity", p.Quantity),
				zap.Int("reorder_level", p.ReorderLevel))
		}
	}
	a.Inventory = store.New(gw, log, opts)
	a.Reports = report.NewEngine(a.Inventory.Products, a.Inventory.Orders, opts.Clock, log)
	return a, nil
}

func (a *App) openGateway() (persistence.Gateway, error) {
	if a.Config.Storage.Driver == config.DriverFile {
		a.log.Info("Using file storage", zap.String("data_dir", a.Config.Storage.DataDir))
		return persistence.NewFileGateway(a.Config.Storage.DataDir), nil
	}

	db, err := database.InitDB(a.Config, a.log)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	gw, err := persistence.NewDBGateway(db)
	if err != nil {
		_ = database.Close(db)
		return nil, err
	}
	a.db = db
	return gw, nil
}

// Start loads every collection and seeds the default admin. Corrupt
// collections are only discarded when ack agrees, after a copy of each has
// been quarantined. Any other load failure is returned as is.
func (a *App) Start(ctx context.Context, ack Acknowledger) error {
	err := a.Inventory.Load(ctx)
	if err != nil {
		if !store.OnlyCorrupt(err) {
			return fmt.Errorf("load data: %w", err)
		}
		names := store.CorruptCollections(err)
		a.log.Error("Corrupt data found", zap.Strings("collections", names), zap.Error(err))

		ok, ackErr := ack(names)
		if ackErr != nil {
			return ackErr
		}
		if !ok {
			return fmt.Errorf("%w: %v", ErrCorruptNotAcknowledged, names)
		}
		moved, qErr := a.Inventory.Quarantine(ctx, err)
		if qErr != nil {
			return qErr
		}
		a.log.Warn("Continuing with empty collections", zap.Strings("quarantined", moved))
	}

	if err := a.Inventory.Bootstrap(ctx); err != nil {
		return err
	}
	a.log.Info("Inventory loaded",
		zap.Int("products", a.Inventory.Products.Len()),
		zap.Int("suppliers", len(a.Inventory.Suppliers.List())),
		zap.Int("orders", len(a.Inventory.Orders.List())),
		zap.Int("users", a.Inventory.Users.Len()))
	return nil
}

// Close releases the database connection, if any
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return database.Close(a.db)
}

// DiscardFromConfig acknowledges corrupt data only when DISCARD_CORRUPT_DATA is set
func DiscardFromConfig(cfg *config.Config) Acknowledger {
	return func([]string) (bool, error) {
		return cfg.Storage.DiscardCorrupt, nil
	}
}
