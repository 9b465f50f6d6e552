package store

import (
	"context"
	"errors"
	"testing"

	"github.com/KailasVS666/Inventory-Management-System/internal/persistence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmptyDirectory(t *testing.T) {
	inv, _ := newTestInventory(t, Options{})

	require.NoError(t, inv.Load(context.Background()))
	assert.Zero(t, inv.Products.Len())
	assert.Empty(t, inv.Orders.List())
}

func TestLoadCorruptCollections(t *testing.T) {
	ctx := context.Background()
	inv, gw := newTestInventory(t, Options{})

	_, err := inv.Suppliers.Add("Acme", "acme@example.com")
	require.NoError(t, err)
	require.NoError(t, inv.Suppliers.Save(ctx))
	require.NoError(t, gw.Write(ctx, persistence.ProductsFile, []byte("garbage")))
	require.NoError(t, gw.Write(ctx, persistence.OrdersFile, []byte("{}")))

	fresh := New(gw, inv.log, Options{})
	err = fresh.Load(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, persistence.ErrCorruptData)
	assert.True(t, OnlyCorrupt(err))
	assert.ElementsMatch(t, []string{persistence.ProductsFile, persistence.OrdersFile}, CorruptCollections(err))

	assert.Zero(t, fresh.Products.Len())
	assert.Len(t, fresh.Suppliers.List(), 1, "healthy collections still load")

	moved, err := fresh.Quarantine(ctx, err)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"products.dat.corrupt", "orders.dat.corrupt"}, moved)

	data, err := gw.Read(ctx, "products.dat.corrupt")
	require.NoError(t, err)
	assert.Equal(t, "garbage", string(data))
}

func TestOnlyCorrupt(t *testing.T) {
	corrupt := &persistence.CorruptDataError{Name: persistence.UsersFile, Err: errors.New("bad")}
	ioErr := &IoError{Op: "read", Name: persistence.UsersFile, Err: errors.New("denied")}

	assert.False(t, OnlyCorrupt(nil))
	assert.True(t, OnlyCorrupt(corrupt))
	assert.True(t, OnlyCorrupt(errors.Join(corrupt, nil, corrupt)))
	assert.False(t, OnlyCorrupt(errors.Join(corrupt, ioErr)))
	assert.False(t, OnlyCorrupt(ioErr))
}

func TestDirectSale(t *testing.T) {
	ctx := context.Background()
	inv, _ := newTestInventory(t, Options{})
	p, _ := inv.Products.Add("Widget", 9.99, 12, 10, "")

	sale, err := inv.DirectSale(ctx, p.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 29.97, sale.TotalAmount)
	assert.Equal(t, 9, sale.Product.Quantity)
	assert.True(t, sale.LowStock)
	assert.Empty(t, inv.Orders.List(), "direct sales do not create orders")

	_, err = inv.DirectSale(ctx, p.ID, 10)
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestSaveAllAndDataFiles(t *testing.T) {
	ctx := context.Background()
	inv, _ := newTestInventory(t, Options{})
	_, err := inv.Products.Add("Widget", 1, 1, 0, "")
	require.NoError(t, err)

	infos, err := inv.DataInfo(ctx)
	require.NoError(t, err)
	require.Len(t, infos, len(persistence.DataFiles))
	for _, info := range infos {
		assert.False(t, info.Exists, info.Name)
	}

	require.NoError(t, inv.SaveAll(ctx))
	infos, err = inv.DataInfo(ctx)
	require.NoError(t, err)
	for _, info := range infos {
		assert.True(t, info.Exists, info.Name)
		assert.Positive(t, info.Size, info.Name)
	}

	require.NoError(t, inv.DeleteData(ctx, persistence.ProductsFile))
	assert.Equal(t, 1, inv.Products.Len(), "deleting the file keeps memory intact")
	assert.ErrorIs(t, inv.DeleteData(ctx, "passwd"), ErrNotFound)
}
