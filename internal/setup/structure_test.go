package setup

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestStructureCreatesAllDirectories(t *testing.T) {
	dir := t.TempDir()

	mustCreate(t, NewStructure(dir))

	expected := []string{
		"app",
		"tests",
		"scripts",
		"app/api",
		"app/api/v1",
		"app/database",
		"app/schemas",
		"app/services",
		"app/repositories",
		"app/core",
		"app/models",
		"app/workers",
		"app/utils",
		"app/templates",
	}
	for _, sub := range expected {
		full := filepath.Join(dir, filepath.FromSlash(sub))
		info, err := os.Stat(full)
		if err != nil {
			t.Errorf("directory %q was not created: %v", sub, err)
			continue
		}
		if !info.IsDir() {
			t.Errorf("%q is not a directory", sub)
		}
	}
}

func TestStructureIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	step := NewStructure(dir)

	mustCreate(t, step)
	if err := step.Create(); err != nil {
		t.Fatalf("second create failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "app")); err != nil {
		t.Errorf("app directory missing after second run: %v", err)
	}
}

func TestStructureIgnoresConfiguration(t *testing.T) {
	dir := t.TempDir()
	step := NewStructure(dir)

	// Unknown fields are legal and ignored; the broadcast config must
	// never be rejected.
	step.Configure(nil)
	mustCreate(t, step)
}

func TestAllDirsDeclaredSet(t *testing.T) {
	expected := []string{
		"api",
		"api/v1",
		"database",
		"schemas",
		"services",
		"repositories",
		"core",
		"models",
		"workers",
		"utils",
		"templates",
	}
	if !reflect.DeepEqual(AllDirs, expected) {
		t.Errorf("AllDirs = %v, want %v", AllDirs, expected)
	}
}
