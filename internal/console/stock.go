package console

import "context"

func (c *Console) stockMenu(ctx context.Context) error {
	for {
		choice, err := c.menu("Stock Management",
			"Check Stock Levels", "Add Stock", "Remove Stock", "Update Reorder Level", "Back to Main Menu")
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			c.printStockLevels()
		case 2:
			err = c.changeStock(ctx, 1)
		case 3:
			err = c.changeStock(ctx, -1)
		case 4:
			err = c.updateReorderLevel(ctx)
		case 5:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) printStockLevels() {
	c.println("\n=== Stock Levels ===")
	levels := c.inv.Products.StockLevels()
	if len(levels) == 0 {
		c.println("No products found.")
		return
	}
	c.printf("%-10s %-20s %-10s %-15s %-10s\n", "ID", "Name", "Quantity", "Reorder Level", "Status")
	c.println(rule)
	for _, l := range levels {
		c.printf("%-10s %-20s %-10d %-15d %-10s\n", l.Product.ID, l.Product.Name, l.Product.Quantity, l.Product.ReorderLevel, l.Status)
	}
}

// changeStock adds (sign 1) or removes (sign -1) a positive number of units
func (c *Console) changeStock(ctx context.Context, sign int) error {
	id, err := c.readLine("Enter product ID: ")
	if err != nil {
		return err
	}
	if _, ok := c.inv.Products.FindByID(id); !ok {
		c.println("Product not found.")
		return nil
	}
	qty, err := c.readInt("Enter quantity: ")
	if err != nil {
		return err
	}
	if qty <= 0 {
		c.println("Error: Quantity must be greater than 0.")
		return nil
	}

	p, err := c.inv.Products.AdjustStock(id, sign*qty)
	if err != nil {
		c.report(err)
		return nil
	}
	c.printf("Stock updated successfully. New quantity: %d\n", p.Quantity)
	if p.IsLowStock() {
		c.printf("Warning: %s is at or below its reorder level (%d).\n", p.Name, p.ReorderLevel)
	}
	c.saved(c.inv.Products.Save(ctx))
	return nil
}

func (c *Console) updateReorderLevel(ctx context.Context) error {
	id, err := c.readLine("Enter product ID: ")
	if err != nil {
		return err
	}
	level, err := c.readInt("Enter new reorder level: ")
	if err != nil {
		return err
	}
	p, err := c.inv.Products.SetReorderLevel(id, level)
	if err != nil {
		c.report(err)
		return nil
	}
	c.printf("Reorder level updated successfully. New reorder level: %d\n", p.ReorderLevel)
	c.saved(c.inv.Products.Save(ctx))
	return nil
}
