package persistence

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileGateway keeps each collection in its own file under Dir
type FileGateway struct {
	Dir string
}

// NewFileGateway returns a gateway rooted at dir
func NewFileGateway(dir string) *FileGateway {
	return &FileGateway{Dir: dir}
}

func (g *FileGateway) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("invalid collection name %q", name)
	}
	return filepath.Join(g.Dir, name), nil
}

// Write replaces the file atomically: the blob goes to a temp file in the
// same directory which is then renamed over the target.
func (g *FileGateway) Write(_ context.Context, name string, data []byte) error {
	path, err := g.path(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(g.Dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	return WriteFileAtomic(path, data, 0o644)
}

func (g *FileGateway) Read(_ context.Context, name string) ([]byte, error) {
	path, err := g.path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotExist
	}
	return data, err
}

func (g *FileGateway) Exists(_ context.Context, name string) (bool, error) {
	path, err := g.path(name)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}

func (g *FileGateway) Delete(_ context.Context, name string) error {
	path, err := g.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (g *FileGateway) Stat(_ context.Context, name string) (Info, error) {
	path, err := g.path(name)
	if err != nil {
		return Info{}, err
	}
	fi, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Info{Name: name}, nil
	}
	if err != nil {
		return Info{}, err
	}
	return Info{Name: name, Exists: true, Size: fi.Size(), ModTime: fi.ModTime()}, nil
}

// WriteFileAtomic writes data to a temp file next to path and renames it into
// place, so an existing file is either fully replaced or left untouched.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		cleanup()
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return err
	}
	return nil
}
