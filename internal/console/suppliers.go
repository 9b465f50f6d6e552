package console

import (
	"context"

	"github.com/KailasVS666/Inventory-Management-System/internal/model"
)

func (c *Console) supplierMenu(ctx context.Context) error {
	for {
		choice, err := c.menu("Supplier Management",
			"Add New Supplier", "View All Suppliers", "Update Supplier", "Delete Supplier", "View Products by Supplier", "Back to Main Menu")
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			err = c.addSupplier(ctx)
		case 2:
			c.printSuppliers()
		case 3:
			err = c.updateSupplier(ctx)
		case 4:
			err = c.deleteSupplier(ctx)
		case 5:
			var id string
			if id, err = c.readLine("Enter supplier ID: "); err == nil {
				c.printf("Supplier: %s\n", c.inv.Suppliers.SupplierName(id))
				c.printProducts("Products", c.inv.Products.BySupplier(id))
			}
		case 6:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) addSupplier(ctx context.Context) error {
	c.println("\n=== Add New Supplier ===")
	name, err := c.readLine("Enter supplier name: ")
	if err != nil {
		return err
	}
	contact, err := c.readLine("Enter contact info: ")
	if err != nil {
		return err
	}
	s, err := c.inv.Suppliers.Add(name, contact)
	if err != nil {
		c.report(err)
		return nil
	}
	c.printf("Supplier added successfully! Supplier ID: %s\n", s.ID)
	c.saved(c.inv.Suppliers.Save(ctx))
	return nil
}

func (c *Console) printSuppliers() {
	c.println("\n=== All Suppliers ===")
	suppliers := c.inv.Suppliers.List()
	if len(suppliers) == 0 {
		c.println("No suppliers found.")
		return
	}
	c.printf("%-10s %-25s %-30s\n", "ID", "Name", "Contact Info")
	c.println(rule)
	for _, s := range suppliers {
		c.printf("%-10s %-25s %-30s\n", s.ID, s.Name, s.ContactInfo)
	}
}

func (c *Console) updateSupplier(ctx context.Context) error {
	id, err := c.readLine("Enter supplier ID: ")
	if err != nil {
		return err
	}
	if _, ok := c.inv.Suppliers.FindByID(id); !ok {
		c.println("Supplier not found.")
		return nil
	}
	c.println("Enter new details (press Enter to keep current value):")
	var patch model.SupplierPatch
	if patch.Name, err = c.optionalString("Name: "); err != nil {
		return err
	}
	if patch.ContactInfo, err = c.optionalString("Contact info: "); err != nil {
		return err
	}
	if _, err := c.inv.Suppliers.Update(id, patch); err != nil {
		c.report(err)
		return nil
	}
	c.println("Supplier updated successfully!")
	c.saved(c.inv.Suppliers.Save(ctx))
	return nil
}

func (c *Console) deleteSupplier(ctx context.Context) error {
	id, err := c.readLine("Enter supplier ID: ")
	if err != nil {
		return err
	}
	if err := c.inv.Suppliers.Delete(id); err != nil {
		c.report(err)
		return nil
	}
	c.println("Supplier deleted successfully!")
	c.saved(c.inv.Suppliers.Save(ctx))
	return nil
}
