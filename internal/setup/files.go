package setup

import (
	"github.com/phravins/hut/internal/config"
	"github.com/phravins/hut/internal/ui"
	"github.com/phravins/hut/pkg/utils"
)

// FilesToCreate is the fixed list of files the files step touches into
// existence. Content is populated later by the writer step; this list may
// be a superset of the template registry.
var FilesToCreate = []string{
	// Entry points
	"run.py",
	"app/main.py",
	// Package markers
	"app/api/__init__.py",
	"app/api/v1/__init__.py",
	"app/core/__init__.py",
	"app/database/__init__.py",
	"app/models/__init__.py",
	"app/repositories/__init__.py",
	"app/schemas/__init__.py",
	"app/services/__init__.py",
	"app/utils/__init__.py",
	"app/workers/__init__.py",
	"tests/__init__.py",
	// Core configuration and helpers
	"app/core/config.py",
	"app/core/errors.py",
	"app/core/exceptions.py",
	"app/core/lifespan.py",
	"app/core/logger.py",
	"app/core/response_helper.py",
	"app/core/responses.py",
	// API routes
	"app/api/common.py",
	"app/api/v1/hero.py",
	// Database
	"app/database/session.py",
	// Domain stubs
	"app/models/common.py",
	"app/models/hero.py",
	"app/repositories/hero.py",
	"app/schemas/common.py",
	"app/schemas/hero.py",
	"app/services/hero.py",
	// Assets (no package marker: not importable source)
	"app/templates/index.html",
	// Scripts
	"scripts/dev.py",
	"scripts/prod.py",
	// Top-level placeholders
	".env",
	".gitignore",
	"requirements.txt",
	"requirements_dev.txt",
}

// FilesStep creates every declared file as an empty placeholder.
type FilesStep struct {
	location string
}

func NewFiles(location string) *FilesStep {
	return &FilesStep{location: location}
}

// Configure is a no-op; the file list is fixed.
func (s *FilesStep) Configure(cfg *config.Config) {}

func (s *FilesStep) Create() error {
	ui.Step("Creating project files")
	for _, file := range FilesToCreate {
		if err := utils.MakeFile(utils.JoinPath(s.location, file)); err != nil {
			return err
		}
		ui.Detail("created %s", file)
	}
	return nil
}
