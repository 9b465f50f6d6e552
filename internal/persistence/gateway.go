// Package persistence saves and loads whole record collections by name.
//
// A Gateway only moves opaque blobs; Save and Load add the versioned
// newline-delimited JSON encoding on top, so every backend stores the same
// bytes.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Collection names
const (
	ProductsFile  = "products.dat"
	SuppliersFile = "suppliers.dat"
	OrdersFile    = "orders.dat"
	UsersFile     = "users.dat"
)

// DataFiles lists every collection in display order
var DataFiles = []string{ProductsFile, SuppliersFile, OrdersFile, UsersFile}

var (
	// ErrNotExist is returned by Gateway.Read when the collection was never written
	ErrNotExist = errors.New("collection does not exist")
	// ErrCorruptData marks a collection that exists but cannot be decoded
	ErrCorruptData = errors.New("corrupt data")
)

// CorruptDataError reports which collection failed to decode and why
type CorruptDataError struct {
	Name string
	Err  error
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Name, ErrCorruptData, e.Err)
}

func (e *CorruptDataError) Unwrap() []error {
	return []error{ErrCorruptData, e.Err}
}

// Info describes a stored collection
type Info struct {
	Name    string
	Exists  bool
	Size    int64
	ModTime time.Time
}

// Gateway stores named blobs. Write must replace the previous blob as a
// whole; a reader never observes a partially written collection.
type Gateway interface {
	Write(ctx context.Context, name string, data []byte) error
	Read(ctx context.Context, name string) ([]byte, error)
	Exists(ctx context.Context, name string) (bool, error)
	// Delete removes the collection; deleting a missing collection is not an error.
	Delete(ctx context.Context, name string) error
	Stat(ctx context.Context, name string) (Info, error)
}

// Describe returns Info for each of names, in order
func Describe(ctx context.Context, gw Gateway, names ...string) ([]Info, error) {
	infos := make([]Info, 0, len(names))
	for _, name := range names {
		info, err := gw.Stat(ctx, name)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// FormatSize renders a byte count as B, KB or MB
func FormatSize(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	}
}
