package utils

import (
	"os"

	"github.com/pelletier/go-toml/v2"
)

// PyProject holds the fields written into a generated pyproject.toml.
// Zero values fall back to sensible defaults at write time.
type PyProject struct {
	Name            string
	Version         string
	Description     string
	RequiresPython  string
	Dependencies    []string
	DevDependencies []string
}

type pyProjectDoc struct {
	Project projectTable `toml:"project"`
}

type projectTable struct {
	Name                 string              `toml:"name"`
	Version              string              `toml:"version"`
	Description          string              `toml:"description,omitempty"`
	RequiresPython       string              `toml:"requires-python,omitempty"`
	Dependencies         []string            `toml:"dependencies"`
	OptionalDependencies map[string][]string `toml:"optional-dependencies,omitempty"`
	Scripts              map[string]string   `toml:"scripts"`
}

// WritePyProject generates a pyproject.toml at path, overwriting any
// existing file. An empty description is omitted entirely rather than
// written as a blank field.
func WritePyProject(path string, p PyProject) error {
	version := p.Version
	if version == "" {
		version = "0.1.0"
	}
	deps := p.Dependencies
	if deps == nil {
		deps = []string{}
	}

	table := projectTable{
		Name:           p.Name,
		Version:        version,
		Description:    p.Description,
		RequiresPython: p.RequiresPython,
		Dependencies:   deps,
		Scripts: map[string]string{
			"run_dev_server":  "scripts.dev:main",
			"run_prod_server": "scripts.prod:main",
		},
	}
	if len(p.DevDependencies) > 0 {
		table.OptionalDependencies = map[string][]string{"dev": p.DevDependencies}
	}

	data, err := toml.Marshal(pyProjectDoc{Project: table})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
