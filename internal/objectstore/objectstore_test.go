package objectstore

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestDiskRoundTrip(t *testing.T) {
	d, err := NewDisk(t.TempDir())
	if err != nil {
		t.Fatalf("NewDisk: %v", err)
	}

	path := d.NewUploadPath()
	if !strings.HasPrefix(path, "uploads/") {
		t.Fatalf("upload path %q missing uploads/ prefix", path)
	}

	if err := d.Put(path, strings.NewReader("jpeg bytes")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	rc, err := d.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()

	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("reading object: %v", err)
	}
	if string(got) != "jpeg bytes" {
		t.Fatalf("got %q", got)
	}
}

func TestDiskUploadPathsAreUnique(t *testing.T) {
	d, err := NewDisk(t.TempDir())
	if err != nil {
		t.Fatalf("NewDisk: %v", err)
	}
	if d.NewUploadPath() == d.NewUploadPath() {
		t.Fatal("upload paths must be unique")
	}
}

func TestDiskOpenMissing(t *testing.T) {
	d, err := NewDisk(t.TempDir())
	if err != nil {
		t.Fatalf("NewDisk: %v", err)
	}
	if _, err := d.Open("uploads/nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDiskContainsTraversal(t *testing.T) {
	d, err := NewDisk(t.TempDir())
	if err != nil {
		t.Fatalf("NewDisk: %v", err)
	}

	// Escaping paths collapse to a location inside the root, where
	// nothing exists.
	if _, err := d.Open("uploads/../../../../etc/passwd"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for traversal path, got %v", err)
	}
}
