package store

import (
	"context"
	"strings"
	"sync"

	"github.com/KailasVS666/Inventory-Management-System/internal/model"
	"github.com/KailasVS666/Inventory-Management-System/internal/persistence"
	"github.com/KailasVS666/Inventory-Management-System/prometheus"

	"go.uber.org/zap"
)

// SupplierStore owns the supplier list. Products may reference suppliers
// that no longer exist.
type SupplierStore struct {
	mu        sync.RWMutex
	suppliers []model.Supplier
	ids       idSequence

	gw  persistence.Gateway
	log *zap.Logger
}

// NewSupplierStore returns an empty store persisting through gw
func NewSupplierStore(gw persistence.Gateway, log *zap.Logger) *SupplierStore {
	return &SupplierStore{
		ids: newIDSequence("S"),
		gw:  gw,
		log: log.With(zap.String("store", "suppliers")),
	}
}

// Load replaces the in-memory list with the persisted one
func (s *SupplierStore) Load(ctx context.Context) error {
	suppliers, err := loadCollection[model.Supplier](ctx, s.gw, s.log, persistence.SuppliersFile)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.suppliers = suppliers
	ids := make([]string, len(suppliers))
	for i := range suppliers {
		ids[i] = suppliers[i].ID
	}
	s.ids.seed(ids)
	return nil
}

// Save writes the whole list
func (s *SupplierStore) Save(ctx context.Context) error {
	return saveCollection(ctx, s.gw, s.log, persistence.SuppliersFile, s.List())
}

// Add validates and appends a new supplier
func (s *SupplierStore) Add(name, contactInfo string) (model.Supplier, error) {
	prometheus.RecordStoreOperation("suppliers", "add")

	sup := model.Supplier{
		Name:        strings.TrimSpace(name),
		ContactInfo: strings.TrimSpace(contactInfo),
	}
	if err := validateSupplier(sup); err != nil {
		return model.Supplier{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		sup.ID = s.ids.mint()
		if s.indexLocked(sup.ID) < 0 {
			break
		}
	}
	s.suppliers = append(s.suppliers, sup)

	s.log.Info("Supplier added", zap.String("supplier_id", sup.ID), zap.String("name", sup.Name))
	return sup, nil
}

// Update applies the supplied fields and re-validates
func (s *SupplierStore) Update(id string, patch model.SupplierPatch) (model.Supplier, error) {
	prometheus.RecordStoreOperation("suppliers", "update")

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return model.Supplier{}, &NotFoundError{Kind: "supplier", ID: id}
	}
	merged := patch.Apply(s.suppliers[i])
	merged.Name = strings.TrimSpace(merged.Name)
	merged.ContactInfo = strings.TrimSpace(merged.ContactInfo)
	if err := validateSupplier(merged); err != nil {
		return model.Supplier{}, err
	}
	s.suppliers[i] = merged

	s.log.Info("Supplier updated", zap.String("supplier_id", id))
	return merged, nil
}

// Delete removes the supplier without touching products that reference it
func (s *SupplierStore) Delete(id string) error {
	prometheus.RecordStoreOperation("suppliers", "delete")

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return &NotFoundError{Kind: "supplier", ID: id}
	}
	s.suppliers = append(s.suppliers[:i], s.suppliers[i+1:]...)

	s.log.Info("Supplier deleted", zap.String("supplier_id", id))
	return nil
}

// FindByID returns the supplier with exactly this id
func (s *SupplierStore) FindByID(id string) (model.Supplier, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexLocked(id); i >= 0 {
		return s.suppliers[i], true
	}
	return model.Supplier{}, false
}

// SupplierName resolves an id to a name, or UnknownName
func (s *SupplierStore) SupplierName(id string) string {
	if sup, ok := s.FindByID(id); ok {
		return sup.Name
	}
	return UnknownName
}

// List returns a snapshot copy of all suppliers
func (s *SupplierStore) List() []model.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Supplier, len(s.suppliers))
	copy(out, s.suppliers)
	return out
}

func (s *SupplierStore) indexLocked(id string) int {
	for i := range s.suppliers {
		if s.suppliers[i].ID == id {
			return i
		}
	}
	return -1
}

func validateSupplier(s model.Supplier) error {
	if s.Name == "" {
		return invalid("name", "must not be empty")
	}
	if s.ContactInfo == "" {
		return invalid("contact_info", "must not be empty")
	}
	return nil
}
