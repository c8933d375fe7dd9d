package setup

import (
	"github.com/phravins/hut/internal/config"
	"github.com/phravins/hut/internal/ui"
	"github.com/phravins/hut/pkg/utils"
)

// AllDirs is the source of truth for the app/ subdirectory structure.
var AllDirs = []string{
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

// StructureStep creates the project directory skeleton.
type StructureStep struct {
	location string
}

func NewStructure(location string) *StructureStep {
	return &StructureStep{location: location}
}

// Configure is a no-op; the directory layout is fixed.
func (s *StructureStep) Configure(cfg *config.Config) {}

func (s *StructureStep) Create() error {
	ui.Step("Creating directory structure")
	for _, dir := range []string{"app", "tests", "scripts"} {
		if err := utils.MakeFolder(utils.JoinPath(s.location, dir)); err != nil {
			return err
		}
		ui.Detail("created %s/", dir)
	}
	for _, dir := range AllDirs {
		if err := utils.MakeFolder(utils.JoinPath(s.location, "app", dir)); err != nil {
			return err
		}
		ui.Detail("created app/%s/", dir)
	}
	return nil
}
