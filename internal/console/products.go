package console

import (
	"context"

	"github.com/KailasVS666/Inventory-Management-System/internal/model"
)

func (c *Console) productMenu(ctx context.Context) error {
	for {
		choice, err := c.menu("Product Management",
			"Add Product", "View Products", "Update Product", "Delete Product", "Search Products", "Back to Main Menu")
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			err = c.addProduct(ctx)
		case 2:
			c.printProducts("All Products", c.inv.Products.List())
		case 3:
			err = c.updateProduct(ctx)
		case 4:
			err = c.deleteProduct(ctx)
		case 5:
			err = c.searchMenu()
		case 6:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) addProduct(ctx context.Context) error {
	c.println("\n=== Add New Product ===")
	name, err := c.readLine("Enter product name: ")
	if err != nil {
		return err
	}
	price, err := c.readFloat("Enter price: ")
	if err != nil {
		return err
	}
	quantity, err := c.readInt("Enter quantity: ")
	if err != nil {
		return err
	}
	reorder, err := c.readInt("Enter reorder level: ")
	if err != nil {
		return err
	}
	supplierID, err := c.readLine("Enter supplier ID (optional): ")
	if err != nil {
		return err
	}

	p, err := c.inv.Products.Add(name, price, quantity, reorder, supplierID)
	if err != nil {
		c.report(err)
		return nil
	}
	c.printf("Product added successfully! Product ID: %s\n", p.ID)
	c.saved(c.inv.Products.Save(ctx))
	return nil
}

func (c *Console) updateProduct(ctx context.Context) error {
	c.println("\n=== Update Product ===")
	id, err := c.readLine("Enter product ID: ")
	if err != nil {
		return err
	}
	p, ok := c.inv.Products.FindByID(id)
	if !ok {
		c.println("Product not found.")
		return nil
	}
	c.printf("Current: %s | %s | $%.2f | qty %d | reorder %d | supplier %s\n",
		p.ID, p.Name, p.Price, p.Quantity, p.ReorderLevel, p.SupplierID)
	c.println("Enter new details (press Enter to keep current value):")

	var patch model.ProductPatch
	if patch.Name, err = c.optionalString("Name: "); err != nil {
		return err
	}
	if patch.Price, err = c.optionalFloat("Price: "); err != nil {
		return err
	}
	if patch.Quantity, err = c.optionalInt("Quantity: "); err != nil {
		return err
	}
	if patch.ReorderLevel, err = c.optionalInt("Reorder level: "); err != nil {
		return err
	}
	if patch.SupplierID, err = c.optionalString("Supplier ID: "); err != nil {
		return err
	}

	if _, err := c.inv.Products.Update(id, patch); err != nil {
		c.report(err)
		return nil
	}
	c.println("Product updated successfully!")
	c.saved(c.inv.Products.Save(ctx))
	return nil
}

func (c *Console) deleteProduct(ctx context.Context) error {
	c.println("\n=== Delete Product ===")
	if !c.session().IsAdmin() {
		c.println("Access denied. You do not have permission to delete products.")
		return nil
	}
	id, err := c.readLine("Enter product ID: ")
	if err != nil {
		return err
	}
	p, ok := c.inv.Products.FindByID(id)
	if !ok {
		c.println("Product not found.")
		return nil
	}
	yes, err := c.confirm("Delete " + p.Name + "?")
	if err != nil {
		return err
	}
	if !yes {
		c.println("Deletion cancelled.")
		return nil
	}
	if err := c.inv.Products.Delete(id); err != nil {
		c.report(err)
		return nil
	}
	c.println("Product deleted successfully!")
	c.saved(c.inv.Products.Save(ctx))
	return nil
}

func (c *Console) searchMenu() error {
	for {
		choice, err := c.menu("Search Products",
			"Product Name (partial match)", "Price Range", "Supplier ID", "Back to Product Management")
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			term, err := c.readLine("Enter search term: ")
			if err != nil {
				return err
			}
			if term == "" {
				c.println("Error: Search term cannot be empty.")
				continue
			}
			c.printProducts("Search Results", c.inv.Products.SearchByName(term))
		case 2:
			minPrice, err := c.readFloat("Enter minimum price: ")
			if err != nil {
				return err
			}
			maxPrice, err := c.readFloat("Enter maximum price: ")
			if err != nil {
				return err
			}
			found, err := c.inv.Products.SearchByPriceRange(minPrice, maxPrice)
			if err != nil {
				c.report(err)
				continue
			}
			c.printProducts("Search Results", found)
		case 3:
			id, err := c.readLine("Enter supplier ID: ")
			if err != nil {
				return err
			}
			if id == "" {
				c.println("Error: Supplier ID cannot be empty.")
				continue
			}
			c.printf("Supplier: %s\n", c.inv.Suppliers.SupplierName(id))
			c.printProducts("Search Results", c.inv.Products.BySupplier(id))
		case 4:
			return nil
		}
	}
}

func (c *Console) printProducts(title string, products []model.Product) {
	c.printf("\n=== %s ===\n", title)
	if len(products) == 0 {
		c.println("No products found.")
		return
	}
	c.printf("%-10s %-20s %-12s %-10s %-15s\n", "ID", "Name", "Price", "Quantity", "Reorder Level")
	c.println(rule)
	for _, p := range products {
		c.printf("%-10s %-20s $%-11.2f %-10d %-15d\n", p.ID, p.Name, p.Price, p.Quantity, p.ReorderLevel)
	}
}
