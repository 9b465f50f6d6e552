package store

import (
	"errors"
	"fmt"
)

// Sentinels matched with errors.Is; the typed errors below carry the details.
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrOutOfStock        = errors.New("out of stock")
	ErrAuthentication    = errors.New("authentication failed")
	ErrPermission        = errors.New("permission denied")
	ErrIO                = errors.New("i/o failure")
)

// ValidationError reports a bad field value
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an id lookup miss
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// InsufficientStockError reports a request for more units than are available
type InsufficientStockError struct {
	ProductID string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d", e.ProductID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Is(target error) bool { return target == ErrInsufficientStock }

// OutOfStockError reports a sale attempted on a product with no units
type OutOfStockError struct {
	ProductID string
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("product %s is out of stock", e.ProductID)
}

func (e *OutOfStockError) Is(target error) bool { return target == ErrOutOfStock }

// AuthenticationError reports bad credentials
type AuthenticationError struct {
	Username string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed for %q", e.Username)
}

func (e *AuthenticationError) Is(target error) bool { return target == ErrAuthentication }

// PermissionError reports an action the requestor's role does not allow
type PermissionError struct {
	Action string
	Role   string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("%s requires ADMIN, have %q", e.Action, e.Role)
}

func (e *PermissionError) Is(target error) bool { return target == ErrPermission }

// IoError reports a persistence or export failure
type IoError struct {
	Op   string
	Name string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Name, e.Err)
}

func (e *IoError) Unwrap() []error { return []error{ErrIO, e.Err} }
