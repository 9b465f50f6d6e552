// Package console is the interactive numbered-menu front end.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KailasVS666/Inventory-Management-System/internal/model"
	"github.com/KailasVS666/Inventory-Management-System/internal/report"
	"github.com/KailasVS666/Inventory-Management-System/internal/store"

	"go.uber.org/zap"
)

// ErrTooManyAttempts ends the session after MaxLoginAttempts failed logins
var ErrTooManyAttempts = errors.New("too many failed login attempts")

const rule = "------------------------------------------------------------"

// Console reads commands from in and writes everything to out
type Console struct {
	in        *bufio.Scanner
	out       io.Writer
	inv       *store.Inventory
	reports   *report.Engine
	exportDir string
	log       *zap.Logger
}

// New returns a console over the shared inventory
func New(in io.Reader, out io.Writer, inv *store.Inventory, reports *report.Engine, exportDir string, log *zap.Logger) *Console {
	return &Console{
		in:        bufio.NewScanner(in),
		out:       out,
		inv:       inv,
		reports:   reports,
		exportDir: exportDir,
		log:       log.With(zap.String("component", "console")),
	}
}

// Run logs a user in and serves the main menu until Exit or end of input.
// Logging out returns to the login prompt.
func (c *Console) Run(ctx context.Context) error {
	c.println("=== Inventory Management System ===")
	for {
		if err := c.login(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		loggedOut, err := c.mainMenu(ctx)
		if errors.Is(err, io.EOF) {
			err = nil
			loggedOut = false
		}
		if err != nil || !loggedOut {
			c.println("Thank you for using Inventory Management System!")
			return err
		}
	}
}

// ConfirmDiscard asks the operator whether to continue with the named
// collections treated as empty.
func (c *Console) ConfirmDiscard(names []string) (bool, error) {
	c.println("\nWARNING: the following data files could not be read:")
	for _, name := range names {
		c.printf("  - %s\n", name)
	}
	c.println("Continuing starts these collections empty; a copy of each file is kept as <name>.corrupt.")
	answer, err := c.readLine("Continue? (y/N): ")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes"), nil
}

func (c *Console) login() error {
	c.println("\n=== Login ===")
	for attempt := 1; attempt <= store.MaxLoginAttempts; attempt++ {
		username, err := c.readLine("Username: ")
		if err != nil {
			return err
		}
		password, err := c.readLine("Password: ")
		if err != nil {
			return err
		}
		sess, err := c.inv.Users.Login(username, password)
		if err == nil {
			c.printf("Welcome, %s (%s)\n", sess.Username, sess.Role)
			return nil
		}
		c.printf("Invalid username or password. Attempts left: %d\n", store.MaxLoginAttempts-attempt)
	}
	c.println("Too many failed attempts. Exiting.")
	return ErrTooManyAttempts
}

func (c *Console) session() model.Session {
	sess, _ := c.inv.Users.Current()
	return sess
}

func (c *Console) mainMenu(ctx context.Context) (bool, error) {
	for {
		choice, err := c.menu("Main Menu",
			"Product Management",
			"Stock Management",
			"Supplier Management",
			"Sales & Orders",
			"Reports & Analytics",
			"Data Management",
			"User Management",
			"Exit",
		)
		if err != nil {
			return false, err
		}
		switch choice {
		case 1:
			err = c.productMenu(ctx)
		case 2:
			err = c.stockMenu(ctx)
		case 3:
			err = c.supplierMenu(ctx)
		case 4:
			err = c.salesMenu(ctx)
		case 5:
			err = c.reportMenu()
		case 6:
			err = c.dataMenu(ctx)
		case 7:
			var loggedOut bool
			loggedOut, err = c.userMenu(ctx)
			if err == nil && loggedOut {
				return true, nil
			}
		case 8:
			c.inv.Users.Logout()
			return false, nil
		}
		if err != nil {
			return false, err
		}
	}
}

// menu prints a numbered menu and returns a valid choice, re-prompting on bad input
func (c *Console) menu(title string, options ...string) (int, error) {
	c.printf("\n=== %s ===\n", title)
	for i, opt := range options {
		c.printf("%d. %s\n", i+1, opt)
	}
	prompt := fmt.Sprintf("Enter your choice (1-%d): ", len(options))
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(options) {
			c.printf("Invalid choice. Please enter a number between 1 and %d.\n", len(options))
			continue
		}
		return n, nil
	}
}

func (c *Console) readLine(prompt string) (string, error) {
	c.printf("%s", prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// readInt re-prompts until the line parses as an integer
func (c *Console) readInt(prompt string) (int, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		c.println("Error: Please enter a valid number.")
	}
}

// readFloat re-prompts until the line parses as a number
func (c *Console) readFloat(prompt string) (float64, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(line, 64)
		if err == nil {
			return f, nil
		}
		c.println("Error: Please enter a valid number.")
	}
}

// optionalString returns nil for a blank line
func (c *Console) optionalString(prompt string) (*string, error) {
	line, err := c.readLine(prompt)
	if err != nil || line == "" {
		return nil, err
	}
	return &line, nil
}

// optionalInt returns nil for a blank line and re-prompts on bad numbers
func (c *Console) optionalInt(prompt string) (*int, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil || line == "" {
			return nil, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return &n, nil
		}
		c.println("Error: Please enter a valid number.")
	}
}

// optionalFloat returns nil for a blank line and re-prompts on bad numbers
func (c *Console) optionalFloat(prompt string) (*float64, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil || line == "" {
			return nil, err
		}
		f, err := strconv.ParseFloat(line, 64)
		if err == nil {
			return &f, nil
		}
		c.println("Error: Please enter a valid number.")
	}
}

func (c *Console) confirm(prompt string) (bool, error) {
	answer, err := c.readLine(prompt + " (y/N): ")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes"), nil
}

// report prints a store error as a user-facing message
func (c *Console) report(err error) {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		c.printf("Error: %s %s.\n", verr.Field, verr.Message)
	case errors.Is(err, store.ErrIO):
		c.log.Warn("Persistence failure", zap.Error(err))
		c.printf("Warning: changes could not be saved: %v\n", err)
	default:
		c.printf("Error: %v\n", err)
	}
}

// saved reports a failed save; the in-memory change stands either way
func (c *Console) saved(err error) {
	if err != nil {
		c.report(err)
	}
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}
