package setup

import (
	"github.com/phravins/hut/internal/config"
	"github.com/phravins/hut/internal/templates"
	"github.com/phravins/hut/internal/ui"
	"github.com/phravins/hut/pkg/utils"
)

// FileWriterStep populates the files created earlier with their template
// content. The .env entry is rendered with the project configuration;
// everything else is written verbatim. Writing happens through the strict
// write primitive, so running this step before the files step fails with a
// not-found error instead of silently creating files.
type FileWriterStep struct {
	location         string
	name             string
	description      string
	version          string
	databaseProvider string
	dbUser           string
	dbPass           string
	dbHost           string
	dbPort           string
	dbName           string
}

func NewFileWriter(location string) *FileWriterStep {
	d := config.Defaults()
	return &FileWriterStep{
		location:         location,
		name:             d.Name,
		version:          d.Version,
		databaseProvider: d.DatabaseProvider,
		dbUser:           d.DBUser,
		dbPass:           d.DBPass,
		dbHost:           d.DBHost,
		dbPort:           d.DBPort,
		dbName:           d.DBName,
	}
}

func (s *FileWriterStep) Configure(cfg *config.Config) {
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
	if cfg.DatabaseProvider != "" {
		s.databaseProvider = cfg.DatabaseProvider
	}
	if cfg.DBUser != "" {
		s.dbUser = cfg.DBUser
	}
	if cfg.DBPass != "" {
		s.dbPass = cfg.DBPass
	}
	if cfg.DBHost != "" {
		s.dbHost = cfg.DBHost
	}
	if cfg.DBPort != "" {
		s.dbPort = cfg.DBPort
	}
	if cfg.DBName != "" {
		s.dbName = cfg.DBName
	}
}

func (s *FileWriterStep) Create() error {
	ui.Step("Writing file content")
	for _, entry := range templates.Registry {
		content := entry.Content
		if entry.Path == templates.EnvFilePath {
			rendered, err := templates.RenderEnvFile(templates.EnvData{
				Title:       s.name,
				Description: s.description,
				Version:     s.version,
				DBUser:      s.dbUser,
				DBPass:      s.dbPass,
				DBHost:      s.dbHost,
				DBPort:      s.dbPort,
				DBName:      s.dbName,
				DBType:      s.databaseProvider,
			})
			if err != nil {
				return err
			}
			content = rendered
		}
		path := utils.JoinPath(s.location, entry.Path)
		if err := utils.WriteFile(path, content); err != nil {
			return err
		}
		ui.Detail("wrote %s", entry.Path)
	}
	return nil
}
