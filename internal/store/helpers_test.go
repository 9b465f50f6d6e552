package store

import (
	"testing"

	"github.com/KailasVS666/Inventory-Management-System/internal/persistence"

	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"
)

func newTestInventory(t *testing.T, opts Options) (*Inventory, *persistence.FileGateway) {
	t.Helper()
	if opts.HashCost == 0 {
		opts.HashCost = bcrypt.MinCost
	}
	gw := persistence.NewFileGateway(t.TempDir())
	return New(gw, zaptest.NewLogger(t), opts), gw
}
