package database

import (
	"path/filepath"
	"testing"

	"github.com/KailasVS666/Inventory-Management-System/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm/logger"
)

func TestInitDBSQLite(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = config.DriverSQLite
	cfg.DB.SQLitePath = filepath.Join(t.TempDir(), "inventory.db")
	cfg.DB.MaxIdleConns = 1
	cfg.DB.MaxOpenConns = 1
	cfg.DB.LogLevel = logger.Silent

	db, err := InitDB(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
	assert.NoError(t, Close(db))
}

func TestInitDBRejectsFileDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = config.DriverFile

	_, err := InitDB(cfg, zaptest.NewLogger(t))
	assert.Error(t, err)
}
