package persistence

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/KailasVS666/Inventory-Management-System/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	gw := NewFileGateway(t.TempDir())

	products := []model.Product{
		{ID: "P001", Name: "Widget", Price: 9.99, Quantity: 50, ReorderLevel: 10, SupplierID: "S001"},
		{ID: "P002", Name: "Bolt, hex", Price: 0.25, Quantity: 0, ReorderLevel: 100},
	}
	suppliers := []model.Supplier{{ID: "S001", Name: "Acme", ContactInfo: "555-0100\nsecond line"}}
	orders := []model.Order{{
		ID: "O001", ProductID: "P001", Quantity: 5, TotalAmount: 49.95, CustomerName: "Guest",
		CreatedAt: time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC),
	}}
	users := []model.User{{Username: "admin", PasswordHash: "$2a$10$abc", Role: model.RoleAdmin}}

	require.NoError(t, Save(ctx, gw, ProductsFile, products))
	require.NoError(t, Save(ctx, gw, SuppliersFile, suppliers))
	require.NoError(t, Save(ctx, gw, OrdersFile, orders))
	require.NoError(t, Save(ctx, gw, UsersFile, users))

	gotProducts, err := Load[model.Product](ctx, gw, ProductsFile)
	require.NoError(t, err)
	assert.Equal(t, products, gotProducts)

	gotSuppliers, err := Load[model.Supplier](ctx, gw, SuppliersFile)
	require.NoError(t, err)
	assert.Equal(t, suppliers, gotSuppliers)

	gotOrders, err := Load[model.Order](ctx, gw, OrdersFile)
	require.NoError(t, err)
	assert.Equal(t, orders, gotOrders)

	gotUsers, err := Load[model.User](ctx, gw, UsersFile)
	require.NoError(t, err)
	assert.Equal(t, users, gotUsers)
}

func TestLoadMissingIsEmpty(t *testing.T) {
	gw := NewFileGateway(t.TempDir())

	got, err := Load[model.Product](context.Background(), gw, "missing.dat")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadCorrupt(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		data string
	}{
		{"empty file", ""},
		{"not json", "\xac\xed\x00\x05sr\x00"},
		{"wrong format", `{"format":"other","version":1,"kind":"products","count":0}` + "\n"},
		{"future version", `{"format":"inventory-ndjson","version":9,"kind":"products","count":0}` + "\n"},
		{"wrong kind", `{"format":"inventory-ndjson","version":1,"kind":"users","count":0}` + "\n"},
		{"truncated", `{"format":"inventory-ndjson","version":1,"kind":"products","count":2}` + "\n" + `{"id":"P001","name":"A","price":1,"quantity":1,"reorder_level":0}` + "\n"},
		{"bad record", `{"format":"inventory-ndjson","version":1,"kind":"products","count":1}` + "\n" + `{"id":`},
		{"unknown field", `{"format":"inventory-ndjson","version":1,"kind":"products","count":1}` + "\n" + `{"id":"P001","colour":"red"}` + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := NewFileGateway(t.TempDir())
			require.NoError(t, gw.Write(ctx, ProductsFile, []byte(tt.data)))

			_, err := Load[model.Product](ctx, gw, ProductsFile)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrCorruptData))

			var cde *CorruptDataError
			require.True(t, errors.As(err, &cde))
			assert.Equal(t, ProductsFile, cde.Name)
		})
	}
}

func TestSaveLoadLargeRecord(t *testing.T) {
	ctx := context.Background()
	gw := NewFileGateway(t.TempDir())

	products := []model.Product{
		{ID: "P001", Name: strings.Repeat("x", 2<<20), Price: 1.5, Quantity: 3},
		{ID: "P002", Name: "Widget", Price: 9.99, Quantity: 50, ReorderLevel: 10},
	}
	require.NoError(t, Save(ctx, gw, ProductsFile, products))

	got, err := Load[model.Product](ctx, gw, ProductsFile)
	require.NoError(t, err)
	assert.Equal(t, products, got)
}

func TestEncodeEmptyCollection(t *testing.T) {
	data, err := Encode("orders", []model.Order{})
	require.NoError(t, err)

	got, err := Decode[model.Order]("orders", data)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512 B", FormatSize(512))
	assert.Equal(t, "1.5 KB", FormatSize(1536))
	assert.Equal(t, "2.0 MB", FormatSize(2*1024*1024))
}
