// Package objectstore holds uploaded catch photos. The collaborator surface
// is the narrow Storage interface; Disk is the bundled implementation that
// keeps objects under a local directory.
package objectstore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no object exists at a path.
var ErrNotFound = errors.New("object not found")

// Storage issues upload paths and serves previously uploaded objects.
type Storage interface {
	// NewUploadPath reserves a fresh object path for an upload.
	NewUploadPath() string
	// Put stores an object's bytes at the path.
	Put(path string, r io.Reader) error
	// Open returns a reader over the object at the path.
	Open(path string) (io.ReadCloser, error)
}

// Disk stores objects as files under a root directory.
type Disk struct {
	root string
}

var _ Storage = (*Disk)(nil)

// NewDisk creates the root directory if needed.
func NewDisk(root string) (*Disk, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating object directory: %w", err)
	}
	return &Disk{root: root}, nil
}

// NewUploadPath reserves a fresh object path.
func (d *Disk) NewUploadPath() string {
	return "uploads/" + uuid.NewString()
}

func (d *Disk) filename(path string) (string, error) {
	clean := filepath.Clean("/" + path)
	if strings.Contains(clean, "..") {
		return "", fmt.Errorf("invalid object path %q", path)
	}
	return filepath.Join(d.root, clean), nil
}

// Put stores the object, creating intermediate directories.
func (d *Disk) Put(path string, r io.Reader) error {
	name, err := d.filename(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return fmt.Errorf("creating object subdirectory: %w", err)
	}
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("creating object file: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("writing object: %w", err)
	}
	return nil
}

// Open returns the object's contents or ErrNotFound.
func (d *Disk) Open(path string) (io.ReadCloser, error) {
	name, err := d.filename(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(name)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("opening object: %w", err)
	}
	return f, nil
}
