package store

import (
	"context"
	"testing"

	"github.com/KailasVS666/Inventory-Management-System/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupplierLifecycle(t *testing.T) {
	ctx := context.Background()
	inv, gw := newTestInventory(t, Options{})

	_, err := inv.Suppliers.Add("", "acme@example.com")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = inv.Suppliers.Add("Acme", " ")
	assert.ErrorIs(t, err, ErrValidation)

	acme, err := inv.Suppliers.Add(" Acme ", "acme@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.Supplier{ID: "S001", Name: "Acme", ContactInfo: "acme@example.com"}, acme)

	contact := "555-0100"
	updated, err := inv.Suppliers.Update(acme.ID, model.SupplierPatch{ContactInfo: &contact})
	require.NoError(t, err)
	assert.Equal(t, "555-0100", updated.ContactInfo)

	empty := ""
	_, err = inv.Suppliers.Update(acme.ID, model.SupplierPatch{Name: &empty})
	assert.ErrorIs(t, err, ErrValidation)

	require.NoError(t, inv.Suppliers.Save(ctx))
	reloaded := NewSupplierStore(gw, inv.log)
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, []model.Supplier{updated}, reloaded.List())

	assert.Equal(t, "Acme", inv.Suppliers.SupplierName(acme.ID))
	require.NoError(t, inv.Suppliers.Delete(acme.ID))
	assert.Equal(t, UnknownName, inv.Suppliers.SupplierName(acme.ID))
	assert.ErrorIs(t, inv.Suppliers.Delete(acme.ID), ErrNotFound)
}

func TestDeletingSupplierKeepsProducts(t *testing.T) {
	inv, _ := newTestInventory(t, Options{})
	sup, _ := inv.Suppliers.Add("Acme", "acme@example.com")
	p, _ := inv.Products.Add("Widget", 1, 1, 0, sup.ID)

	require.NoError(t, inv.Suppliers.Delete(sup.ID))

	got, ok := inv.Products.FindByID(p.ID)
	require.True(t, ok)
	assert.Equal(t, sup.ID, got.SupplierID)
	assert.Equal(t, UnknownName, inv.Suppliers.SupplierName(got.SupplierID))
}
