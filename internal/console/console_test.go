package console

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KailasVS666/Inventory-Management-System/internal/model"
	"github.com/KailasVS666/Inventory-Management-System/internal/persistence"
	"github.com/KailasVS666/Inventory-Management-System/internal/report"
	"github.com/KailasVS666/Inventory-Management-System/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"
)

type harness struct {
	inv       *store.Inventory
	gw        *persistence.FileGateway
	exportDir string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctx := context.Background()
	gw := persistence.NewFileGateway(t.TempDir())
	inv := store.New(gw, zaptest.NewLogger(t), store.Options{HashCost: bcrypt.MinCost})
	require.NoError(t, inv.Load(ctx))
	require.NoError(t, inv.Bootstrap(ctx))
	return &harness{inv: inv, gw: gw, exportDir: filepath.Join(t.TempDir(), "exports")}
}

// run feeds the lines to a fresh console and returns what it printed
func (h *harness) run(t *testing.T, lines ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	log := zaptest.NewLogger(t)
	engine := report.NewEngine(h.inv.Products, h.inv.Orders, nil, log)
	c := New(strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, h.inv, engine, h.exportDir, log)
	err := c.Run(context.Background())
	return out.String(), err
}

var adminLogin = []string{"admin", store.DefaultAdminPassword}

func script(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestLoginGivesThreeAttempts(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "admin", "x", "admin", "y", "admin", "z", "admin", store.DefaultAdminPassword)
	assert.ErrorIs(t, err, ErrTooManyAttempts)
	assert.Contains(t, out, "Attempts left: 0")
	assert.NotContains(t, out, "Welcome")
}

func TestLoginSecondAttempt(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "admin", "wrong", "admin", store.DefaultAdminPassword, "8")
	require.NoError(t, err)
	assert.Contains(t, out, "Attempts left: 2")
	assert.Contains(t, out, "Welcome, admin (ADMIN)")
	assert.Contains(t, out, "Thank you for using Inventory Management System!")

	_, ok := h.inv.Users.Current()
	assert.False(t, ok, "exit logs out")
}

func TestEndOfInputEndsCleanly(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, script(adminLogin, []string{"1", "1", "Widget"})...)
	assert.NoError(t, err)
}

func TestInvalidChoiceReprompts(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, script(adminLogin, []string{"abc", "42", "8"})...)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "Invalid choice. Please enter a number between 1 and 8."))
}

func TestProductAndOrderFlow(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	out, err := h.run(t, script(adminLogin,
		// add Widget, re-prompting on a bad price
		[]string{"1", "1", "Widget", "cheap", "9.99", "50", "10", "", "2", "6"},
		// order 5 then 36
		[]string{"4", "1", "P001", "5", "", "1", "P001", "36", "Alice", "2", "4"},
		// stock levels
		[]string{"2", "1", "5"},
		[]string{"8"},
	)...)
	require.NoError(t, err)

	assert.Contains(t, out, "Error: Please enter a valid number.")
	assert.Contains(t, out, "Product added successfully! Product ID: P001")
	assert.Contains(t, out, "Order ID: O001, Total: $49.95")
	assert.Contains(t, out, "Warning: Widget is low on stock (9 left, reorder level 10).")
	assert.Contains(t, out, "LOW STOCK")

	p, ok := h.inv.Products.FindByID("P001")
	require.True(t, ok)
	assert.Equal(t, 9, p.Quantity)

	orders, err := persistence.Load[model.Order](ctx, h.gw, persistence.OrdersFile)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, model.DefaultCustomer, orders[0].CustomerName)
	assert.Equal(t, "Alice", orders[1].CustomerName)
}

func TestValidationErrorsAreReported(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, script(adminLogin,
		[]string{"1", "1", "", "1", "1", "0", "", "6"},
		[]string{"4", "1", "P404", "1", "", "4"},
		[]string{"8"},
	)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Error: name must not be empty.")
	assert.Contains(t, out, `Error: product "P404" not found`)
	assert.Zero(t, h.inv.Products.Len())
}

func TestStaffCannotDelete(t *testing.T) {
	h := newHarness(t)
	_, err := h.inv.Users.CreateUser(model.RoleAdmin, "bob", "pw", model.RoleStaff)
	require.NoError(t, err)
	_, err = h.inv.Products.Add("Widget", 1, 1, 0, "")
	require.NoError(t, err)

	out, err := h.run(t, "bob", "pw", "1", "4", "6", "7", "1", "5", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "Access denied. You do not have permission to delete products.")
	assert.Contains(t, out, "Access denied. Only administrators can create users.")
	assert.Equal(t, 1, h.inv.Products.Len())
}

func TestLogoutReturnsToLogin(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, script(adminLogin, []string{"7", "4"}, adminLogin, []string{"8"})...)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "=== Login ==="))
}

func TestExportReport(t *testing.T) {
	h := newHarness(t)
	_, err := h.inv.Products.Add("Widget", 1, 1, 5, "")
	require.NoError(t, err)

	out, err := h.run(t, script(adminLogin, []string{"5", "4", "6", "7", "8"})...)
	require.NoError(t, err)
	assert.Contains(t, out, "Report exported successfully to: "+h.exportDir)
	assert.Contains(t, out, "Total records exported: 1")
	assert.Contains(t, out, "No records found to export.")
}

func TestDataMenu(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, script(adminLogin, []string{"6", "2", "1", "4", "8"})...)
	require.NoError(t, err)
	assert.Contains(t, out, "All data saved successfully.")
	assert.NotContains(t, out, "not found")
}

func TestConfirmDiscard(t *testing.T) {
	h := newHarness(t)
	log := zaptest.NewLogger(t)

	for input, want := range map[string]bool{"y\n": true, "YES\n": true, "n\n": false, "\n": false} {
		var out bytes.Buffer
		c := New(strings.NewReader(input), &out, h.inv, report.NewEngine(h.inv.Products, h.inv.Orders, nil, log), h.exportDir, log)

		got, err := c.ConfirmDiscard([]string{persistence.ProductsFile})
		require.NoError(t, err)
		assert.Equal(t, want, got, input)
		assert.Contains(t, out.String(), "products.dat")
	}
}
