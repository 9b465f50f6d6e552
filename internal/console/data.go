package console

import (
	"context"

	"github.com/KailasVS666/Inventory-Management-System/internal/persistence"
)

func (c *Console) dataMenu(ctx context.Context) error {
	for {
		choice, err := c.menu("Data Management",
			"View Data Files", "Save All Data", "Delete Data File", "Back to Main Menu")
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			c.printDataFiles(ctx)
		case 2:
			if err := c.inv.SaveAll(ctx); err != nil {
				c.report(err)
			} else {
				c.println("All data saved successfully.")
			}
		case 3:
			err = c.deleteDataFile(ctx)
		case 4:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) printDataFiles(ctx context.Context) {
	c.println("\n=== Data Files ===")
	infos, err := c.inv.DataInfo(ctx)
	if err != nil {
		c.report(err)
		return
	}
	for _, info := range infos {
		if info.Exists {
			c.printf("%-15s %s\n", info.Name, persistence.FormatSize(info.Size))
		} else {
			c.printf("%-15s not found\n", info.Name)
		}
	}
}

func (c *Console) deleteDataFile(ctx context.Context) error {
	if !c.session().IsAdmin() {
		c.println("Access denied. Only administrators can delete data files.")
		return nil
	}
	name, err := c.readLine("Enter file name (e.g. orders.dat): ")
	if err != nil {
		return err
	}
	yes, err := c.confirm("Delete " + name + "? The data stays in memory until the next save.")
	if err != nil || !yes {
		return err
	}
	if err := c.inv.DeleteData(ctx, name); err != nil {
		c.report(err)
		return nil
	}
	c.println("Data file deleted.")
	return nil
}
