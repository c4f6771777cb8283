package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/rendezvous/internal/cli"
	"github.com/julianstephens/rendezvous/internal/cli/backups"
	"github.com/julianstephens/rendezvous/internal/cli/imports"
	"github.com/julianstephens/rendezvous/internal/cli/meet"
	"github.com/julianstephens/rendezvous/internal/cli/people"
	"github.com/julianstephens/rendezvous/internal/cli/schedule"
	"github.com/julianstephens/rendezvous/internal/cli/settings"
	"github.com/julianstephens/rendezvous/internal/cli/system"
	"github.com/julianstephens/rendezvous/internal/constants"
	apperrors "github.com/julianstephens/rendezvous/internal/errors"
	"github.com/julianstephens/rendezvous/internal/index"
	"github.com/julianstephens/rendezvous/internal/keyring"
	"github.com/julianstephens/rendezvous/internal/logger"
	"github.com/julianstephens/rendezvous/internal/storage"
	"github.com/julianstephens/rendezvous/internal/storage/postgres"
	"github.com/julianstephens/rendezvous/internal/storage/sqlite"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"Database file path or PostgreSQL connection string. Passwords must not be embedded; use the OS keyring, ${env}, or .pgpass instead." type:"string" default:"${config}"`
	Debug    bool   `help:"Log debug output to stderr."`
	LogLevel string `help:"Log file level." default:"info" enum:"debug,info,warn,error"`

	Init    system.InitCmd    `cmd:"" help:"Initialize rendezvous storage."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Tui     system.TuiCmd     `cmd:"" help:"Browse people, recommendations and meetups." default:"1"`

	Person struct {
		Add     people.PersonAddCmd     `cmd:"" help:"Add a person."`
		Edit    people.PersonEditCmd    `cmd:"" help:"Edit a person's details."`
		List    people.PersonListCmd    `cmd:"" help:"List people."`
		Delete  people.PersonDeleteCmd  `cmd:"" help:"Delete a person."`
		Restore people.PersonRestoreCmd `cmd:"" help:"Restore a deleted person."`
	} `cmd:"" help:"Manage people."`
	Busy struct {
		Add    schedule.BusyAddCmd    `cmd:"" help:"Add a busy period."`
		List   schedule.BusyListCmd   `cmd:"" help:"List busy or free periods."`
		Remove schedule.BusyRemoveCmd `cmd:"" help:"Free up a busy period."`
	} `cmd:"" help:"Manage weekly busy periods."`
	Visit struct {
		Add    schedule.VisitAddCmd    `cmd:"" help:"Record a regular visit to a location."`
		List   schedule.VisitListCmd   `cmd:"" help:"List a person's visits."`
		Delete schedule.VisitDeleteCmd `cmd:"" help:"Delete a visit."`
	} `cmd:"" help:"Manage location visits."`
	Location struct {
		List schedule.LocationListCmd `cmd:"" help:"List the location catalog." default:"1"`
		Add  schedule.LocationAddCmd  `cmd:"" help:"Add or update a location."`
	} `cmd:"" help:"Manage the location catalog."`

	Meet           meet.MeetCmd `cmd:"" help:"Recommend when and where to meet."`
	Recommendation struct {
		List meet.RecommendationListCmd `cmd:"" help:"Show the most recent recommendations." default:"1"`
	} `cmd:"" help:"Inspect recommendations."`
	Meetup struct {
		Save   meet.MeetupSaveCmd   `cmd:"" help:"Save a recommendation as a meetup."`
		List   meet.MeetupListCmd   `cmd:"" help:"List saved meetups." default:"1"`
		Delete meet.MeetupDeleteCmd `cmd:"" help:"Delete a saved meetup."`
	} `cmd:"" help:"Manage saved meetups."`

	Import struct {
		Roster imports.ImportRosterCmd   `cmd:"" help:"Import people and locations from a YAML roster."`
		Ics    imports.ImportCalendarCmd `cmd:"" name:"ics" help:"Import a person's schedule from an iCalendar file."`
	} `cmd:"" help:"Import data from files."`

	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Config struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check keyring availability."`
	} `cmd:"" help:"Manage the PostgreSQL connection in the OS keyring."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Find a time and place for people to meet"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version": constants.Version,
			"config":  constants.DefaultConfigPath,
			"env":     constants.ConnectionEnvVar,
		},
	)

	target, source, err := resolveTarget(CLI.Config)
	apperrors.Fatal(err)

	store, configDir, err := openStore(target, source)
	apperrors.Fatal(err)

	if err := logger.Init(logger.Config{ConfigDir: configDir, Level: CLI.LogLevel, Debug: CLI.Debug}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	appCtx := &cli.Context{
		Store:   store,
		Indexer: index.NewHandler(),
	}

	// init creates the store, migrate must run against an outdated schema and
	// config only touches the keyring
	command := ctx.Command()
	if !skipsLoad(command) {
		apperrors.Fatal(store.Load())
		apperrors.Fatal(appCtx.SeedIndexer())
	}

	err = ctx.Run(appCtx)
	store.Close()
	apperrors.Fatal(err)
}

func skipsLoad(command string) bool {
	for _, prefix := range []string{"init", "migrate", "config"} {
		if strings.HasPrefix(command, prefix) {
			return true
		}
	}
	return false
}

// resolveTarget picks the database to use. An explicit --config wins; with
// the default path, a connection string from the environment or keyring
// takes precedence over the local file.
func resolveTarget(config string) (string, keyring.Source, error) {
	if config == constants.DefaultConfigPath {
		connStr, source, err := keyring.Resolve()
		switch {
		case err != nil && !errors.Is(err, keyring.ErrKeyringUnavailable):
			return "", keyring.SourceNone, err
		case source != keyring.SourceNone:
			return connStr, source, nil
		}
	}
	path, err := expandHome(config)
	return path, keyring.SourceNone, err
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// openStore returns the store for target and the directory used for logs.
// Credentials are only accepted from the environment or the keyring.
func openStore(target string, source keyring.Source) (storage.Provider, string, error) {
	if !postgres.IsConnString(target) {
		return sqlite.NewStore(target), filepath.Dir(target), nil
	}

	if _, err := postgres.ValidateConnString(target); err != nil {
		switch {
		case !errors.Is(err, postgres.ErrEmbeddedCredentials):
			return nil, "", err
		case source == keyring.SourceNone:
			return nil, "", fmt.Errorf("PostgreSQL connection strings with embedded credentials are not allowed on the command line; use '%s config set' or %s instead", constants.AppName, constants.ConnectionEnvVar)
		}
	}

	configDir, err := expandHome(filepath.Dir(constants.DefaultConfigPath))
	if err != nil {
		return nil, "", err
	}
	return postgres.New(target), configDir, nil
}
