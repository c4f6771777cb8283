package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/rendezvous/internal/cli"
	"github.com/julianstephens/rendezvous/internal/storage"
	"github.com/julianstephens/rendezvous/internal/storage/postgres"
	"github.com/julianstephens/rendezvous/internal/storage/sqlite"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting existing database before initialization."`
	Source string `help:"Source database path or connection string to copy data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized rendezvous storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Copying data from: %s\n", c.Source)
		if err := c.copyData(ctx); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Println("Migration completed successfully!")
	}
	return nil
}

// reset removes an existing SQLite database. The source is never removed.
func (c *InitCmd) reset(ctx *cli.Context) error {
	dbPath := ctx.Store.GetConfigPath()
	if abs, err := filepath.Abs(dbPath); err == nil {
		dbPath = abs
	}
	if c.Source != "" {
		if absSource, err := filepath.Abs(c.Source); err == nil && absSource == dbPath {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
		}
	}

	_, err := os.Stat(dbPath)
	switch {
	case os.IsNotExist(err):
		return nil
	case err != nil:
		return fmt.Errorf("failed to access existing database: %w", err)
	}

	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close existing database: %w", err)
	}
	if err := os.Remove(dbPath); err != nil {
		return fmt.Errorf("failed to delete existing database: %w", err)
	}
	fmt.Printf("Deleted existing database at: %s\n", dbPath)
	return nil
}

func openSource(source string) (storage.Provider, error) {
	if !postgres.IsConnString(source) {
		return sqlite.NewStore(source), nil
	}
	if ok, err := postgres.ValidateConnString(source); !ok {
		if errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return nil, errors.New("PostgreSQL source connection string contains embedded credentials. Use environment variables or .pgpass instead")
		}
		return nil, err
	}
	return postgres.New(source), nil
}

func (c *InitCmd) copyData(ctx *cli.Context) error {
	src, err := openSource(c.Source)
	if err != nil {
		return err
	}
	if err := src.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer src.Close()
	dst := ctx.Store

	fmt.Println("  Copying settings...")
	settings, err := src.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings from source: %w", err)
	}
	if err := dst.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings to destination: %w", err)
	}

	fmt.Println("  Copying locations...")
	locs, err := src.GetLocations()
	if err != nil {
		return fmt.Errorf("failed to get locations from source: %w", err)
	}
	for _, loc := range locs {
		if err := dst.SaveLocation(loc); err != nil {
			return fmt.Errorf("failed to save location %q: %w", loc.Name, err)
		}
	}
	fmt.Printf("    Copied %d locations\n", len(locs))

	fmt.Println("  Copying people...")
	people, err := src.GetAllPeopleIncludingDeleted()
	if err != nil {
		return fmt.Errorf("failed to get people from source: %w", err)
	}
	for _, p := range people {
		if err := dst.AddPerson(p); err != nil {
			return fmt.Errorf("failed to add person %s: %w", p.Index, err)
		}
	}
	fmt.Printf("    Copied %d people\n", len(people))

	fmt.Println("  Copying recommendations...")
	recs, err := src.GetRecommendations()
	if err != nil {
		return fmt.Errorf("failed to get recommendations from source: %w", err)
	}
	if err := dst.ReplaceRecommendations(recs); err != nil {
		return fmt.Errorf("failed to save recommendations: %w", err)
	}
	participants, err := src.GetParticipants()
	if err != nil {
		return fmt.Errorf("failed to get participants from source: %w", err)
	}
	if len(participants) > 0 {
		if err := dst.SaveParticipants(participants); err != nil {
			return fmt.Errorf("failed to save participants: %w", err)
		}
	}
	fmt.Printf("    Copied %d recommendations\n", len(recs))

	fmt.Println("  Copying meetups...")
	meetups, err := src.GetMeetUps()
	if err != nil {
		return fmt.Errorf("failed to get meetups from source: %w", err)
	}
	for _, m := range meetups {
		if err := dst.AddMeetUp(m); err != nil {
			return fmt.Errorf("failed to add meetup %s: %w", m.Index, err)
		}
	}
	fmt.Printf("    Copied %d meetups\n", len(meetups))

	return nil
}
