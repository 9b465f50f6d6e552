package console

import (
	"errors"

	"github.com/KailasVS666/Inventory-Management-System/internal/report"
)

func (c *Console) reportMenu() error {
	for {
		choice, err := c.menu("Reports & Analytics",
			"View Low Stock Products",
			"View Total Inventory Value",
			"View Sales Summary",
			"Export Low Stock Report",
			"Export Inventory Value Report",
			"Export Sales Report",
			"Back to Main Menu")
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			c.printProducts("Low Stock Products", c.reports.LowStock())
		case 2:
			c.printInventoryValue()
		case 3:
			c.printSalesSummary()
		case 4:
			c.export(report.KindLowStock)
		case 5:
			c.export(report.KindInventoryValue)
		case 6:
			c.export(report.KindSales)
		case 7:
			return nil
		}
	}
}

func (c *Console) printInventoryValue() {
	c.println("\n=== Inventory Value Report ===")
	r := c.reports.InventoryValue()
	if r.TotalProducts == 0 {
		c.println("No products found.")
		return
	}
	c.printf("%-10s %-20s %-12s %-10s %-15s\n", "ID", "Name", "Price", "Quantity", "Item Value")
	c.println(rule)
	for _, item := range r.Items {
		c.printf("%-10s %-20s $%-11.2f %-10d $%-14.2f\n", item.Product.ID, item.Product.Name, item.Product.Price, item.Product.Quantity, item.Value)
	}
	c.println(rule)
	c.printf("Total Products: %d\n", r.TotalProducts)
	c.printf("Total Items: %d\n", r.TotalItems)
	c.printf("Total Inventory Value: $%.2f\n", r.TotalValue)
	c.printf("Average Item Value: $%.2f\n", r.AverageItemValue)
	c.printf("Average Product Value: $%.2f\n", r.AverageProductValue)
}

func (c *Console) printSalesSummary() {
	c.println("\n=== Sales Summary Report ===")
	r := c.reports.SalesSummary()
	if r.TotalOrders == 0 {
		c.println("No sales found.")
		return
	}
	c.printf("Total Orders: %d\n", r.TotalOrders)
	c.printf("Total Items Sold: %d\n", r.TotalItemsSold)
	c.printf("Total Sales Value: $%.2f\n", r.TotalRevenue)
	c.printf("Today's Sales (%s): $%.2f (%d orders)\n", r.Today.Period, r.Today.Revenue, r.Today.Orders)
	c.printf("This Month's Sales (%s): $%.2f (%d orders)\n", r.ThisMonth.Period, r.ThisMonth.Revenue, r.ThisMonth.Orders)
	c.printf("Average Order Value: $%.2f\n", r.AverageOrderValue)
}

func (c *Console) export(kind report.Kind) {
	path, rows, err := c.reports.Export(kind, c.exportDir)
	switch {
	case errors.Is(err, report.ErrEmptyReport):
		c.println("No records found to export.")
	case err != nil:
		c.report(err)
	default:
		c.printf("Report exported successfully to: %s\n", path)
		c.printf("Total records exported: %d\n", rows)
	}
}
