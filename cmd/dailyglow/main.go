package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/dailyglow/dailyglow/internal/affirmations"
	"github.com/dailyglow/dailyglow/internal/cli"
	"github.com/dailyglow/dailyglow/internal/cli/backups"
	"github.com/dailyglow/dailyglow/internal/cli/insights"
	"github.com/dailyglow/dailyglow/internal/cli/journal"
	"github.com/dailyglow/dailyglow/internal/cli/settings"
	"github.com/dailyglow/dailyglow/internal/cli/system"
	"github.com/dailyglow/dailyglow/internal/constants"
	"github.com/dailyglow/dailyglow/internal/keyring"
	"github.com/dailyglow/dailyglow/internal/logger"
	"github.com/dailyglow/dailyglow/internal/models"
	"github.com/dailyglow/dailyglow/internal/storage"
	"github.com/dailyglow/dailyglow/internal/storage/postgres"
	"github.com/dailyglow/dailyglow/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string           `help:"Database file path or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string. Use environment variables, .pgpass, or OS keyring instead." type:"string" default:"${config_path}"`
	Debug   bool             `help:"Enable debug logging."`

	Init        system.InitCmd       `cmd:"" help:"Initialize dailyglow storage."`
	Migrate     system.MigrateCmd    `cmd:"" help:"Run database migrations."`
	Doctor      system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Tui         system.TuiCmd        `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Today       cli.TodayCmd         `cmd:"" help:"Show today's affirmation."`
	Affirmation cli.AffirmationCmd   `cmd:"" help:"Browse and search affirmations."`
	Favorite    cli.FavoriteCmd      `cmd:"" help:"Manage favorite affirmations."`
	Journal     journal.JournalCmd   `cmd:"" help:"Manage journal entries."`
	Insights    insights.InsightsCmd `cmd:"" help:"Show journal analytics."`
	Settings    settings.SettingsCmd `cmd:"" help:"Manage settings and preferences."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check keyring availability."`
	} `cmd:"" help:"Manage database credentials in the OS keyring."`
	Notify system.NotifyCmd `cmd:"" hidden:"" help:"Send a reminder notification (used internally)."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("dailyglow"),
		kong.Description("Daily affirmations, streaks, and journal insights"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	config := resolveConfig(CLI.Config)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDirFor(config)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	// Initialize storage based on config format
	var store storage.Provider
	if strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://") {
		if valid, err := postgres.ValidateConnString(config); !valid {
			fmt.Fprintf(os.Stderr, "❌ Error: invalid PostgreSQL connection string: %v\n", err)
			fmt.Fprintf(os.Stderr, "       Credentials must NOT be embedded in the connection string.\n")
			fmt.Fprintf(os.Stderr, "       Use one of these secure alternatives:\n")
			fmt.Fprintf(os.Stderr, "       1. OS keyring:    dailyglow keyring set \"postgresql://user@host:5432/dailyglow\"\n")
			fmt.Fprintf(os.Stderr, "       2. Environment:   export PGPASSWORD=... with a password-free connection string\n")
			fmt.Fprintf(os.Stderr, "       3. .pgpass file:  Use a connection string without a password\n")
			os.Exit(1)
		}
		store = postgres.New(config)
	} else if strings.HasSuffix(config, ".json") {
		store = storage.NewJSONStore(config)
	} else {
		store = sqlite.NewStore(config)
	}

	svc, err := affirmations.NewService(models.SeedPool())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	appCtx := &cli.Context{
		Store:        store,
		Affirmations: svc,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveConfig expands a leading ~ and falls back to a keyring-stored
// connection string when the flag still holds the default path and the
// keyring has one.
func resolveConfig(config string) string {
	if config == constants.DefaultConfigPath {
		if connStr, err := keyring.GetConnectionString(); err == nil && connStr != "" {
			return connStr
		}
	}

	if strings.HasPrefix(config, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, config[2:])
		}
	}
	return config
}

// configDirFor picks a directory for logs next to the database file, or the
// user config dir when the database is remote.
func configDirFor(config string) string {
	if strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://") {
		if dir, err := os.UserConfigDir(); err == nil {
			return filepath.Join(dir, constants.AppName)
		}
		return "."
	}
	return filepath.Dir(config)
}
