package config

import (
	"github.com/spf13/viper"
)

// Config is the project configuration shared across all setup steps. It is
// a flat union of every field any step might read; each step picks out the
// fields it owns and ignores the rest.
type Config struct {
	Name             string `mapstructure:"name"`
	Description      string `mapstructure:"description"`
	Version          string `mapstructure:"version"`
	RequiresPython   string `mapstructure:"requires_python"`
	PackageManager   string `mapstructure:"package_manager"`
	DatabaseType     string `mapstructure:"database_type"`
	DatabaseProvider string `mapstructure:"database_provider"`
	DBUser           string `mapstructure:"db_user"`
	DBPass           string `mapstructure:"db_pass"`
	DBHost           string `mapstructure:"db_host"`
	DBPort           string `mapstructure:"db_port"`
	DBName           string `mapstructure:"db_name"`
}

// Defaults returns a Config populated with every default value.
func Defaults() *Config {
	return &Config{
		Name:             "fastapi_project",
		Description:      "",
		Version:          "0.1.0",
		PackageManager:   "pip",
		DatabaseType:     "sql",
		DatabaseProvider: "postgres",
		DBUser:           "your_username",
		DBPass:           "your_password",
		DBHost:           "database_host",
		DBPort:           "database_port",
		DBName:           "database_name",
	}
}

// LoadConfig reads an optional .hut.yaml from the current directory and
// merges it over the defaults. A missing config file is not an error.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AddConfigPath(".")
	v.SetConfigName(".hut")
	v.SetConfigType("yaml")

	d := Defaults()
	v.SetDefault("name", d.Name)
	v.SetDefault("description", d.Description)
	v.SetDefault("version", d.Version)
	v.SetDefault("requires_python", d.RequiresPython)
	v.SetDefault("package_manager", d.PackageManager)
	v.SetDefault("database_type", d.DatabaseType)
	v.SetDefault("database_provider", d.DatabaseProvider)
	v.SetDefault("db_user", d.DBUser)
	v.SetDefault("db_pass", d.DBPass)
	v.SetDefault("db_host", d.DBHost)
	v.SetDefault("db_port", d.DBPort)
	v.SetDefault("db_name", d.DBName)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
