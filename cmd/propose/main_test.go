package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadSourceReturnsUTF8Contents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.prs")
	want := "A = (0, 0);\nsave \"out.svg\";\n"
	if err := os.WriteFile(path, []byte(want), 0o644); err != nil {
		t.Fatalf("unexpected error writing fixture: %v", err)
	}
	got, err := readSource(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("readSource() = %q, want %q", got, want)
	}
}

func TestReadSourceMissingFile(t *testing.T) {
	if _, err := readSource(filepath.Join(t.TempDir(), "nonexistent.prs")); err == nil {
		t.Fatal("expected an error reading a nonexistent file")
	}
}
