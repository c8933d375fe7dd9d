// Package database provisions the generated project's database backend.
package database

import (
	"fmt"

	"github.com/phravins/hut/internal/templates"
	"github.com/phravins/hut/internal/ui"
	"github.com/phravins/hut/pkg/utils"
)

// Factory selects and executes the provider-specific setup sequence for a
// declared database type. It is the only component with real conditional
// logic; everything else in the pipeline replays static lists.
type Factory struct {
	databaseType string
	location     string

	run func(dir, command string) error
}

func New(databaseType, location string) *Factory {
	return &Factory{
		databaseType: databaseType,
		location:     location,
		run:          utils.RunCommand,
	}
}

// SetupDB dispatches on the database type. The type check runs before any
// filesystem or subprocess side effect.
func (f *Factory) SetupDB() error {
	switch f.databaseType {
	case "sql":
		return f.setupSQL()
	case "nosql":
		// Placeholder: nosql provisioning is not implemented yet. This
		// intentionally performs zero filesystem or subprocess work.
		return nil
	default:
		return fmt.Errorf("invalid database type: %q (expected sql or nosql)", f.databaseType)
	}
}

func (f *Factory) setupSQL() error {
	sessionPath := utils.JoinPath(f.location, "app", "database", "session.py")
	if err := utils.WriteFile(sessionPath, templates.SessionFile); err != nil {
		return err
	}
	ui.Detail("wrote app/database/session.py")

	initPath := utils.JoinPath(f.location, "app", "database", "__init__.py")
	if err := utils.WriteFile(initPath, templates.DatabaseInitFile); err != nil {
		return err
	}
	ui.Detail("wrote app/database/__init__.py")

	// alembic runs through the venv's interpreter so the tool installed by
	// the environment step is the one invoked.
	initCmd := fmt.Sprintf("%s alembic init -t async migrations", utils.VenvPython())
	if err := f.run(f.location, initCmd); err != nil {
		return err
	}
	ui.Detail("initialized alembic migrations")

	// alembic init must have produced migrations/env.py; if it is missing
	// the strict write surfaces the not-found error untouched.
	envPath := utils.JoinPath(f.location, "migrations", "env.py")
	if err := utils.WriteFile(envPath, templates.MigrationEnvFile); err != nil {
		return err
	}
	ui.Detail("wrote migrations/env.py")
	return nil
}
