package setup

import (
	"fmt"
	"strings"

	"github.com/phravins/hut/internal/config"
	"github.com/phravins/hut/internal/ui"
	"github.com/phravins/hut/pkg/utils"
)

// Package sets are pure data: no version pins at this layer. Sets are
// unioned, never intersected, when composing a requirements list.
var (
	// Packages every generated project depends on.
	Packages = []string{"fastapi", "uvicorn"}

	// DevPackages go into the development manifest only.
	DevPackages = []string{"pytest", "pytest-asyncio", "httpx"}

	// SQLCommonPackages are shared by every sql provider.
	SQLCommonPackages = []string{"sqlalchemy", "alembic"}

	// DBSQLPackages maps each sql provider to its driver packages.
	DBSQLPackages = map[string][]string{
		"postgres": {"asyncpg", "psycopg2-binary"},
		"mysql":    {"aiomysql", "pymysql"},
		"sqlite":   {"aiosqlite"},
	}
)

// envCommands maps a package manager to its environment-creation command
// and the install command run afterwards. The pip install command goes
// through the venv's own interpreter so packages land inside .venv.
var envCommands = map[string]struct {
	create  string
	install func() string
}{
	"pip": {
		create:  "python -m venv .venv",
		install: func() string { return utils.VenvPython() + " pip install -r requirements.txt" },
	},
	"uv": {
		create:  "uv venv .venv",
		install: func() string { return "uv pip install -r requirements.txt" },
	},
}

// EnvStep resolves the dependency set for the chosen database, writes the
// requirements manifests and pyproject.toml, then creates and populates
// the virtual environment.
type EnvStep struct {
	location         string
	name             string
	description      string
	version          string
	requiresPython   string
	packageManager   string
	databaseType     string
	databaseProvider string
}

func NewEnv(location string) *EnvStep {
	d := config.Defaults()
	return &EnvStep{
		location:         location,
		name:             d.Name,
		version:          d.Version,
		packageManager:   d.PackageManager,
		databaseType:     d.DatabaseType,
		databaseProvider: d.DatabaseProvider,
	}
}

func (s *EnvStep) Configure(cfg *config.Config) {
	if cfg == nil {
		return
	}
	if cfg.Name != "" {
		s.name = cfg.Name
	}
	s.description = cfg.Description
	if cfg.Version != "" {
		s.version = cfg.Version
	}
	s.requiresPython = cfg.RequiresPython
	if cfg.PackageManager != "" {
		s.packageManager = cfg.PackageManager
	}
	if cfg.DatabaseType != "" {
		s.databaseType = cfg.DatabaseType
	}
	if cfg.DatabaseProvider != "" {
		s.databaseProvider = cfg.DatabaseProvider
	}
}

func (s *EnvStep) Create() error {
	ui.Step("Provisioning environment")

	// Fail fast on bad configuration before any file is touched.
	commands, ok := envCommands[s.packageManager]
	if !ok {
		return fmt.Errorf("unsupported package manager: %q", s.packageManager)
	}
	requirements, err := s.resolvePackages()
	if err != nil {
		return err
	}

	reqPath := utils.JoinPath(s.location, "requirements.txt")
	if err := utils.WriteFile(reqPath, strings.Join(requirements, "\n")+"\n"); err != nil {
		return err
	}
	ui.Detail("wrote requirements.txt")

	// The dev manifest references the runtime manifest instead of
	// duplicating it.
	devContent := "-r requirements.txt\n" + strings.Join(DevPackages, "\n") + "\n"
	devPath := utils.JoinPath(s.location, "requirements_dev.txt")
	if err := utils.WriteFile(devPath, devContent); err != nil {
		return err
	}
	ui.Detail("wrote requirements_dev.txt")

	err = utils.WritePyProject(utils.JoinPath(s.location, "pyproject.toml"), utils.PyProject{
		Name:            s.name,
		Version:         s.version,
		Description:     s.description,
		RequiresPython:  s.requiresPython,
		Dependencies:    requirements,
		DevDependencies: DevPackages,
	})
	if err != nil {
		return err
	}
	ui.Detail("wrote pyproject.toml")

	if err := runCommand(s.location, commands.create); err != nil {
		return fmt.Errorf("failed to create environment (venv): %w", err)
	}
	ui.Detail("created .venv")

	if err := runCommand(s.location, commands.install()); err != nil {
		return fmt.Errorf("failed to create environment (install): %w", err)
	}
	ui.Detail("installed dependencies")
	return nil
}

// resolvePackages unions the base set with the database packages for the
// configured selection. nosql projects get the base set only.
func (s *EnvStep) resolvePackages() ([]string, error) {
	requirements := append([]string{}, Packages...)
	if s.databaseType != "sql" {
		return requirements, nil
	}
	providerPackages, ok := DBSQLPackages[s.databaseProvider]
	if !ok {
		return nil, fmt.Errorf("unsupported database provider: %q", s.databaseProvider)
	}
	requirements = append(requirements, SQLCommonPackages...)
	requirements = append(requirements, providerPackages...)
	return requirements, nil
}
