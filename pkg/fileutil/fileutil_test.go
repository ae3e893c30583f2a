package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteAtomic(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "cv.pdf")
	testContent := "%PDF-1.4 test"

	err := WriteAtomic(testFile, []byte(testContent), 0644)
	if err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	data, err := os.ReadFile(testFile)
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}

	if string(data) != testContent {
		t.Errorf("Expected content '%s', got '%s'", testContent, string(data))
	}

	info, err := os.Stat(testFile)
	if err != nil {
		t.Fatalf("Failed to stat written file: %v", err)
	}

	if info.Mode().Perm() != 0644 {
		t.Errorf("Expected mode 0644, got %v", info.Mode().Perm())
	}

	// Only the target is left behind.
	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("Failed to list dir: %v", err)
	}

	if len(entries) != 1 {
		t.Errorf("Expected 1 file in dir, got %d", len(entries))
	}
}

func TestWriteAtomicCreatesDir(t *testing.T) {
	tmpDir := t.TempDir()
	nestedPath := filepath.Join(tmpDir, "nested", "dir", "cv.pdf")

	err := WriteAtomic(nestedPath, []byte("test"), 0600)
	if err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if !FileExists(nestedPath) {
		t.Error("File was not created in nested directory")
	}
}

func TestWriteAtomicReplaces(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "content.json")

	err := os.WriteFile(testFile, []byte("old"), 0600)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	err = WriteAtomic(testFile, []byte("new"), 0600)
	if err != nil {
		t.Fatalf("Failed to replace file: %v", err)
	}

	data, err := os.ReadFile(testFile)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}

	if string(data) != "new" {
		t.Errorf("Expected 'new', got '%s'", string(data))
	}
}

func TestWriteAtomicFailure(t *testing.T) {
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "blocker")

	err := os.WriteFile(blocker, []byte("x"), 0600)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	// A regular file where a directory is needed makes the write fail.
	err = WriteAtomic(filepath.Join(blocker, "cv.pdf"), []byte("x"), 0600)
	if err == nil {
		t.Fatal("Expected error writing below a regular file, got nil")
	}

	if !errors.Is(err, ErrWrite) {
		t.Errorf("Expected ErrWrite, got %v", err)
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "exists.txt")

	if FileExists(testFile) {
		t.Error("Expected missing file to not exist")
	}

	err := os.WriteFile(testFile, []byte("x"), 0600)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if !FileExists(testFile) {
		t.Error("Expected file to exist")
	}

	if FileExists(tmpDir) {
		t.Error("Expected a directory to not count as a file")
	}
}
