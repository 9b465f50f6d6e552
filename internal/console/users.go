package console

import "context"

// userMenu reports true when the user logged out
func (c *Console) userMenu(ctx context.Context) (bool, error) {
	for {
		choice, err := c.menu("User Management",
			"Create User", "View Users", "Change Password", "Logout", "Back to Main Menu")
		if err != nil {
			return false, err
		}
		switch choice {
		case 1:
			err = c.createUser(ctx)
		case 2:
			c.printUsers()
		case 3:
			err = c.changePassword(ctx)
		case 4:
			c.inv.Users.Logout()
			c.println("Logged out.")
			return true, nil
		case 5:
			return false, nil
		}
		if err != nil {
			return false, err
		}
	}
}

func (c *Console) createUser(ctx context.Context) error {
	c.println("\n=== Create User ===")
	if !c.session().IsAdmin() {
		c.println("Access denied. Only administrators can create users.")
		return nil
	}
	username, err := c.readLine("Username: ")
	if err != nil {
		return err
	}
	password, err := c.readLine("Password: ")
	if err != nil {
		return err
	}
	role, err := c.readLine("Role (ADMIN/STAFF): ")
	if err != nil {
		return err
	}
	u, err := c.inv.Users.CreateUser(c.session().Role, username, password, role)
	if err != nil {
		c.report(err)
		return nil
	}
	c.printf("User %s created with role %s.\n", u.Username, u.Role)
	c.saved(c.inv.Users.Save(ctx))
	return nil
}

func (c *Console) printUsers() {
	c.println("\n=== Users ===")
	users, err := c.inv.Users.List(c.session().Role)
	if err != nil {
		c.println("Access denied. Only administrators can view users.")
		return
	}
	c.printf("%-20s %-10s\n", "Username", "Role")
	c.println(rule)
	for _, u := range users {
		c.printf("%-20s %-10s\n", u.Username, u.Role)
	}
}

func (c *Console) changePassword(ctx context.Context) error {
	oldPassword, err := c.readLine("Current password: ")
	if err != nil {
		return err
	}
	newPassword, err := c.readLine("New password: ")
	if err != nil {
		return err
	}
	if err := c.inv.Users.ChangePassword(c.session(), oldPassword, newPassword); err != nil {
		c.report(err)
		return nil
	}
	c.println("Password changed successfully.")
	c.saved(c.inv.Users.Save(ctx))
	return nil
}
