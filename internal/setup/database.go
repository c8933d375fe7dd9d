package setup

import (
	"github.com/phravins/hut/internal/config"
	"github.com/phravins/hut/internal/database"
	"github.com/phravins/hut/internal/ui"
)

// DatabaseStep provisions the database backend by delegating to the
// database factory for the configured type.
type DatabaseStep struct {
	location     string
	databaseType string
}

func NewDatabase(location string) *DatabaseStep {
	return &DatabaseStep{
		location:     location,
		databaseType: config.Defaults().DatabaseType,
	}
}

func (s *DatabaseStep) Configure(cfg *config.Config) {
	if cfg == nil {
		return
	}
	if cfg.DatabaseType != "" {
		s.databaseType = cfg.DatabaseType
	}
}

func (s *DatabaseStep) Create() error {
	ui.Step("Setting up database backend")
	return database.New(s.databaseType, s.location).SetupDB()
}
