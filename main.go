package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/phravins/hut/internal/config"
	"github.com/phravins/hut/internal/setup"
	"github.com/phravins/hut/internal/templates"
	"github.com/phravins/hut/internal/ui"
	"github.com/phravins/hut/pkg/utils"
)

const appVersion = "0.4.0"

var rootCmd = &cobra.Command{
	Use:     "hut",
	Version: appVersion,
	Short:   "Scaffold async FastAPI backend projects",
	Long: `hut builds a ready-to-run FastAPI backend service:
- Directory layout and source stubs
- Virtualenv with resolved dependencies
- Git repository
- Async database session and alembic migrations`,
}

// Seams for the command tests: the wizard blocks on a terminal and the
// pipeline shells out, so tests swap these for recording stand-ins.
var (
	wizard   = runWizard
	pipeline = setup.DefaultPipeline
)

func init() {
	rootCmd.SetVersionTemplate("hut version {{.Version}}\n")
	rootCmd.Flags().BoolP("version", "v", false, "version for hut")

	var (
		buildPath      string
		acceptDefaults bool
		flagCfg        config.Config
	)

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Build a new project at the target path",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			mergeFlags(cfg, &flagCfg, cmd)

			if !acceptDefaults {
				if err := wizard(cfg); err != nil {
					return err
				}
			}

			location, err := filepath.Abs(utils.ExpandPath(buildPath))
			if err != nil {
				return err
			}
			if err := utils.MakeFolder(location); err != nil {
				return err
			}

			for _, factory := range pipeline {
				if err := setup.Run(location, factory, cfg); err != nil {
					return err
				}
			}
			ui.Success(fmt.Sprintf("Project %q created at %s", cfg.Name, location))
			return nil
		},
	}
	buildCmd.Flags().StringVar(&buildPath, "path", ".", "target directory for the new project")
	buildCmd.Flags().BoolVarP(&acceptDefaults, "accept-defaults", "y", false, "skip the wizard and use defaults")
	buildCmd.Flags().StringVar(&flagCfg.Name, "name", "", "project name")
	buildCmd.Flags().StringVar(&flagCfg.Description, "desc", "", "project description")
	buildCmd.Flags().StringVar(&flagCfg.Version, "project-version", "", "initial project version")
	buildCmd.Flags().StringVar(&flagCfg.DatabaseType, "db-type", "", "database type (sql or nosql)")
	buildCmd.Flags().StringVar(&flagCfg.DatabaseProvider, "db-provider", "", "sql provider (postgres, mysql, sqlite)")
	buildCmd.Flags().StringVar(&flagCfg.PackageManager, "package-manager", "", "package manager (pip or uv)")
	rootCmd.AddCommand(buildCmd)

	var addPath string
	addCmd := &cobra.Command{
		Use:   "add [resource]",
		Short: "Add domain resource stubs to an existing project",
		Long:  "Generates model, schema, repository, service and route stubs for a snake_case resource name.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateResourceName(args[0]); err != nil {
				return err
			}
			location, err := utils.ValidateParentDir(addPath)
			if err != nil {
				return err
			}
			return addResource(location, args[0])
		},
	}
	addCmd.Flags().StringVar(&addPath, "path", ".", "project root")
	rootCmd.AddCommand(addCmd)
}

// mergeFlags overlays explicitly-set flag values on the loaded config.
func mergeFlags(cfg, flags *config.Config, cmd *cobra.Command) {
	if cmd.Flags().Changed("name") {
		cfg.Name = flags.Name
	}
	if cmd.Flags().Changed("desc") {
		cfg.Description = flags.Description
	}
	if cmd.Flags().Changed("project-version") {
		cfg.Version = flags.Version
	}
	if cmd.Flags().Changed("db-type") {
		cfg.DatabaseType = flags.DatabaseType
	}
	if cmd.Flags().Changed("db-provider") {
		cfg.DatabaseProvider = flags.DatabaseProvider
	}
	if cmd.Flags().Changed("package-manager") {
		cfg.PackageManager = flags.PackageManager
	}
}

// runWizard collects the project configuration interactively, pre-filled
// with whatever the config file and flags already supplied.
func runWizard(cfg *config.Config) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project Name").
				Value(&cfg.Name),
			huh.NewInput().
				Title("Description").
				Value(&cfg.Description),
			huh.NewInput().
				Title("Version").
				Value(&cfg.Version),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Database Type").
				Options(
					huh.NewOption("SQL", "sql"),
					huh.NewOption("NoSQL", "nosql"),
				).
				Value(&cfg.DatabaseType),
			huh.NewSelect[string]().
				Title("SQL Provider").
				Options(
					huh.NewOption("PostgreSQL", "postgres"),
					huh.NewOption("MySQL", "mysql"),
					huh.NewOption("SQLite", "sqlite"),
				).
				Value(&cfg.DatabaseProvider),
		),
		huh.NewGroup(
			huh.NewInput().Title("Database User").Value(&cfg.DBUser),
			huh.NewInput().Title("Database Password").Value(&cfg.DBPass).EchoMode(huh.EchoModePassword),
			huh.NewInput().Title("Database Host").Value(&cfg.DBHost),
			huh.NewInput().Title("Database Port").Value(&cfg.DBPort),
			huh.NewInput().Title("Database Name").Value(&cfg.DBName),
		),
	)
	return form.Run()
}

var resourceNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// validateResourceName rejects names that would render into invalid Python
// identifiers, before any file is touched.
func validateResourceName(name string) error {
	if !resourceNamePattern.MatchString(name) {
		return fmt.Errorf("invalid resource name: %q (expected snake_case: lowercase letters, digits, underscores)", name)
	}
	return nil
}

// addResource renders every resource stub kind into the project tree.
func addResource(location, name string) error {
	data := templates.NewResourceData(name)
	ui.Step(fmt.Sprintf("Adding resource %q", name))
	for _, kind := range templates.ResourceKinds {
		content, err := templates.RenderResource(kind.Kind, data)
		if err != nil {
			return err
		}
		path := utils.JoinPath(location, kind.Dir, name+".py")
		if err := utils.MakeFile(path); err != nil {
			return err
		}
		if err := utils.WriteFile(path, content); err != nil {
			return err
		}
		ui.Detail("wrote %s/%s.py", kind.Dir, name)
	}
	ui.Success(fmt.Sprintf("Resource %q added", name))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		ui.Error(err.Error())
		os.Exit(1)
	}
}
