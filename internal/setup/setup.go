// Package setup contains the scaffolding pipeline: an ordered list of
// idempotent steps that build a FastAPI project at a target location.
package setup

import (
	"github.com/phravins/hut/internal/config"
	"github.com/phravins/hut/pkg/utils"
)

// Step is a single unit of project scaffolding work. Implementations are
// constructed with the project location, optionally receive the shared
// configuration, then perform their side effect.
//
// Create must be idempotent: running it twice against the same location
// leaves the same filesystem state as running it once.
type Step interface {
	// Configure hands the step the shared project configuration. Steps
	// read only the fields they own and must not reject fields they do
	// not recognize. A nil config means the step's declared defaults.
	Configure(cfg *config.Config)

	// Create performs the step's side effect against the project location.
	Create() error
}

// Factory constructs a fresh Step for a project location. Step instances
// are never reused across projects.
type Factory func(location string) Step

// Run drives one step through its lifecycle: construct, configure, create.
func Run(location string, newStep Factory, cfg *config.Config) error {
	step := newStep(location)
	step.Configure(cfg)
	return step.Create()
}

// DefaultPipeline is the declared step order. Ordering is a hard
// precondition: later steps assume the filesystem state of earlier ones
// (the writer step writes into files the files step created, the database
// step overwrites a file alembic generates).
var DefaultPipeline = []Factory{
	func(location string) Step { return NewStructure(location) },
	func(location string) Step { return NewFiles(location) },
	func(location string) Step { return NewEnv(location) },
	func(location string) Step { return NewGit(location) },
	func(location string) Step { return NewFileWriter(location) },
	func(location string) Step { return NewDatabase(location) },
}

// runCommand is swapped out in tests to avoid spawning real tools.
var runCommand = utils.RunCommand
