package setup

import (
	"strings"
	"testing"

	"github.com/phravins/hut/internal/config"
)

func TestDatabaseStepDefaultsToSQL(t *testing.T) {
	step := NewDatabase(t.TempDir())
	if step.databaseType != "sql" {
		t.Errorf("default database type = %q, want sql", step.databaseType)
	}
}

func TestDatabaseStepStoresConfiguredType(t *testing.T) {
	step := NewDatabase(t.TempDir())
	step.Configure(&config.Config{DatabaseType: "nosql"})

	if step.databaseType != "nosql" {
		t.Errorf("database type = %q, want nosql", step.databaseType)
	}
}

func TestDatabaseStepIgnoresForeignFields(t *testing.T) {
	step := NewDatabase(t.TempDir())
	step.Configure(&config.Config{
		DatabaseType: "sql",
		Name:         "ignored",
		Version:      "9.9.9",
	})

	if step.databaseType != "sql" {
		t.Errorf("database type = %q, want sql", step.databaseType)
	}
}

func TestDatabaseStepNosqlIsNoop(t *testing.T) {
	dir := t.TempDir()
	step := NewDatabase(dir)
	step.Configure(&config.Config{DatabaseType: "nosql"})

	if err := step.Create(); err != nil {
		t.Fatalf("nosql create should be a no-op, got %v", err)
	}
}

func TestDatabaseStepRejectsInvalidType(t *testing.T) {
	step := NewDatabase(t.TempDir())
	step.Configure(&config.Config{DatabaseType: "mongodb_cloud"})

	err := step.Create()
	if err == nil {
		t.Fatal("expected error for invalid database type")
	}
	if !strings.Contains(err.Error(), "invalid database type") {
		t.Errorf("error should identify the invalid type: %v", err)
	}
}
