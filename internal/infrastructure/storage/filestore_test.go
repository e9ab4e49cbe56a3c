package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestDiskStore_SaveAndPath(t *testing.T) {
	root := t.TempDir()
	store, err := NewDiskStore(root)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	if err := store.Save("1_abcd1234_me.png", bytes.NewReader([]byte("png-bytes"))); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	path := store.Path("1_abcd1234_me.png")
	if path != filepath.Join(root, "1_abcd1234_me.png") {
		t.Fatalf("unexpected path %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("stored file not readable: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("contents mismatch: %q", data)
	}
}

func TestDiskStore_Overwrite(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	if err := store.Save("a.txt", bytes.NewReader([]byte("first"))); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Save("a.txt", bytes.NewReader([]byte("second"))); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	data, _ := os.ReadFile(store.Path("a.txt"))
	if string(data) != "second" {
		t.Fatalf("overwrite not applied: %q", data)
	}
}

func TestDiskStore_RejectsPathNames(t *testing.T) {
	root := t.TempDir()
	store, err := NewDiskStore(root)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	for _, name := range []string{"", "../escape.txt", "sub/dir.txt", "/abs.txt"} {
		if err := store.Save(name, bytes.NewReader([]byte("x"))); err == nil {
			t.Fatalf("name %q should have been rejected", name)
		}
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("read root: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("rejected saves left files behind: %v", entries)
	}
}

func TestNewDiskStore_CreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "uploads")

	if _, err := NewDiskStore(root); err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		t.Fatalf("root directory not created: %v", err)
	}
}

func TestNewDiskStore_EmptyRoot(t *testing.T) {
	if _, err := NewDiskStore(""); err == nil {
		t.Fatalf("expected error for empty root")
	}
}
