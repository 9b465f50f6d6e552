package persistence

import (
	"context"
	"testing"

	"github.com/KailasVS666/Inventory-Management-System/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Unique in-memory database per test
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db
}

func TestDBGatewayRoundTrip(t *testing.T) {
	ctx := context.Background()
	gw, err := NewDBGateway(setupTestDB(t))
	require.NoError(t, err)

	ok, err := gw.Exists(ctx, SuppliersFile)
	require.NoError(t, err)
	assert.False(t, ok)

	first := []model.Supplier{{ID: "S001", Name: "Acme", ContactInfo: "555-0100"}}
	second := append(first, model.Supplier{ID: "S002", Name: "Globex", ContactInfo: "ops@globex.test"})

	require.NoError(t, Save(ctx, gw, SuppliersFile, first))
	require.NoError(t, Save(ctx, gw, SuppliersFile, second))

	got, err := Load[model.Supplier](ctx, gw, SuppliersFile)
	require.NoError(t, err)
	assert.Equal(t, second, got)

	info, err := gw.Stat(ctx, SuppliersFile)
	require.NoError(t, err)
	assert.True(t, info.Exists)
	assert.Positive(t, info.Size)

	require.NoError(t, gw.Delete(ctx, SuppliersFile))
	_, err = gw.Read(ctx, SuppliersFile)
	assert.ErrorIs(t, err, ErrNotExist)
}
