package console

import "context"

func (c *Console) salesMenu(ctx context.Context) error {
	for {
		choice, err := c.menu("Sales & Orders",
			"Create New Order", "View Order History", "Process Direct Sale", "Back to Main Menu")
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			err = c.createOrder(ctx)
		case 2:
			c.printOrders()
		case 3:
			err = c.directSale(ctx)
		case 4:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) createOrder(ctx context.Context) error {
	c.println("\n=== Create New Order ===")
	productID, err := c.readLine("Enter product ID: ")
	if err != nil {
		return err
	}
	qty, err := c.readInt("Enter quantity: ")
	if err != nil {
		return err
	}
	customer, err := c.readLine("Enter customer name (optional): ")
	if err != nil {
		return err
	}

	order, err := c.inv.PlaceOrder(ctx, productID, qty, customer)
	if order.ID == "" {
		c.report(err)
		return nil
	}
	c.printf("Order created successfully! Order ID: %s, Total: $%.2f\n", order.ID, order.TotalAmount)
	if p, ok := c.inv.Products.FindByID(order.ProductID); ok && p.IsLowStock() {
		c.printf("Warning: %s is low on stock (%d left, reorder level %d).\n", p.Name, p.Quantity, p.ReorderLevel)
	}
	c.saved(err)
	return nil
}

func (c *Console) printOrders() {
	c.println("\n=== Order History ===")
	orders := c.inv.Orders.List()
	if len(orders) == 0 {
		c.println("No orders found.")
		return
	}
	c.printf("%-10s %-20s %-10s %-12s %-15s %-20s\n", "Order ID", "Product", "Quantity", "Total", "Customer", "Created At")
	c.println(rule)
	for _, o := range orders {
		created := ""
		if !o.CreatedAt.IsZero() {
			created = o.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		c.printf("%-10s %-20s %-10d $%-11.2f %-15s %-20s\n",
			o.ID, c.inv.Products.ProductName(o.ProductID), o.Quantity, o.TotalAmount, o.CustomerName, created)
	}
}

func (c *Console) directSale(ctx context.Context) error {
	c.println("\n=== Process Direct Sale ===")
	productID, err := c.readLine("Enter product ID: ")
	if err != nil {
		return err
	}
	qty, err := c.readInt("Enter quantity: ")
	if err != nil {
		return err
	}

	sale, err := c.inv.DirectSale(ctx, productID, qty)
	if sale.Quantity == 0 {
		c.report(err)
		return nil
	}
	c.printf("Sale processed: %d x %s at $%.2f = $%.2f\n", sale.Quantity, sale.Product.Name, sale.UnitPrice, sale.TotalAmount)
	c.printf("Remaining stock: %d\n", sale.Product.Quantity)
	if sale.LowStock {
		c.printf("Warning: %s is low on stock.\n", sale.Product.Name)
	}
	c.saved(err)
	return nil
}
