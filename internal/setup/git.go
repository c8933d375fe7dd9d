package setup

import (
	"fmt"

	"github.com/phravins/hut/internal/config"
	"github.com/phravins/hut/internal/ui"
)

// GitStep initializes a git repository at the project location.
type GitStep struct {
	location string
}

func NewGit(location string) *GitStep {
	return &GitStep{location: location}
}

// Configure is a no-op; git init takes no project configuration.
func (s *GitStep) Configure(cfg *config.Config) {}

func (s *GitStep) Create() error {
	ui.Step("Initializing git repository")
	if err := runCommand(s.location, "git init"); err != nil {
		return fmt.Errorf("could not initialize git repository: %w", err)
	}
	ui.Detail("ran git init")
	return nil
}
