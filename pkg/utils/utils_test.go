package utils

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestMakeFolderCreatesNestedDirectories(t *testing.T) {
	dir := t.TempDir()
	deep := filepath.Join(dir, "a", "b", "c")

	if err := MakeFolder(deep); err != nil {
		t.Fatalf("MakeFolder failed: %v", err)
	}
	if !DirExists(deep) {
		t.Errorf("expected %s to exist", deep)
	}
}

func TestMakeFolderIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "existing")

	if err := MakeFolder(target); err != nil {
		t.Fatalf("first MakeFolder failed: %v", err)
	}
	if err := MakeFolder(target); err != nil {
		t.Errorf("second MakeFolder failed: %v", err)
	}
}

func TestMakeFileCreatesEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")

	if err := MakeFile(path); err != nil {
		t.Fatalf("MakeFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading created file: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("expected empty file, got %q", data)
	}
}

func TestMakeFilePreservesExistingContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "existing.txt")
	if err := os.WriteFile(path, []byte("original content"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := MakeFile(path); err != nil {
		t.Fatalf("MakeFile on existing file failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "original content" {
		t.Errorf("content was lost: got %q", data)
	}
}

func TestWriteFileOverwritesExistingContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.txt")
	if err := os.WriteFile(path, []byte("old content"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := WriteFile(path, "new content"); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "new content" {
		t.Errorf("expected %q, got %q", "new content", data)
	}
}

func TestWriteFileMissingFileFails(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "does_not_exist.txt")

	err := WriteFile(missing, "content")
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-found error, got %v", err)
	}
	if FileExists(missing) {
		t.Error("WriteFile must never create the missing target")
	}
}

func TestVenvPythonFor(t *testing.T) {
	tests := []struct {
		platform string
		want     string
	}{
		{"linux", ".venv/bin/python -m"},
		{"darwin", ".venv/bin/python -m"},
		{"freebsd", ".venv/bin/python -m"},
		{"windows", `.venv\Scripts\python.exe -m`},
	}

	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			if got := venvPythonFor(tt.platform); got != tt.want {
				t.Errorf("venvPythonFor(%q) = %q, want %q", tt.platform, got, tt.want)
			}
		})
	}
}

func TestValidateParentDir(t *testing.T) {
	dir := t.TempDir()

	got, err := ValidateParentDir(dir)
	if err != nil {
		t.Fatalf("ValidateParentDir failed on existing dir: %v", err)
	}
	if got != dir {
		t.Errorf("expected %q, got %q", dir, got)
	}

	if _, err := ValidateParentDir(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing directory")
	}

	file := filepath.Join(dir, "file.txt")
	os.WriteFile(file, []byte("x"), 0644)
	if _, err := ValidateParentDir(file); err == nil {
		t.Error("expected error for non-directory path")
	}
}
