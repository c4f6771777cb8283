package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/rendezvous/internal/backup"
	"github.com/julianstephens/rendezvous/internal/index"
	"github.com/julianstephens/rendezvous/internal/location"
	"github.com/julianstephens/rendezvous/internal/logger"
	"github.com/julianstephens/rendezvous/internal/models"
	"github.com/julianstephens/rendezvous/internal/roster"
	"github.com/julianstephens/rendezvous/internal/storage"
	"github.com/julianstephens/rendezvous/internal/timeperiod"
)

type Context struct {
	Store   storage.Provider
	Indexer *index.Handler
}

// PerformAutomaticBackup snapshots a SQLite database and only logs failures.
// Server-backed stores are left to their own backup tooling.
func (c *Context) PerformAutomaticBackup() {
	path := c.Store.GetConfigPath()
	if _, err := os.Stat(path); err != nil {
		return
	}
	if _, err := backup.NewManager(path).Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// SeedIndexer marks every index already in storage as used, including those
// of deleted people.
func (c *Context) SeedIndexer() error {
	people, err := c.Store.GetAllPeopleIncludingDeleted()
	if err != nil {
		return fmt.Errorf("failed to load people: %w", err)
	}
	for _, p := range people {
		c.Indexer.Seed(index.Persons, p.Index)
	}

	recs, err := c.Store.GetRecommendations()
	if err != nil {
		return fmt.Errorf("failed to load recommendations: %w", err)
	}
	for _, r := range recs {
		c.Indexer.Seed(index.Recommendations, r.Index)
	}

	meetups, err := c.Store.GetMeetUps()
	if err != nil {
		return fmt.Errorf("failed to load meetups: %w", err)
	}
	for _, m := range meetups {
		c.Indexer.Seed(index.MeetUps, m.Index)
	}
	return nil
}

// Roster loads the active people for a recommendation run.
func (c *Context) Roster() (*roster.Roster, error) {
	people, err := c.Store.GetAllPeople()
	if err != nil {
		return nil, fmt.Errorf("failed to load people: %w", err)
	}
	return roster.New(people), nil
}

// Bounds reads the free-time window from settings.
func (c *Context) Bounds() (timeperiod.Bounds, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return timeperiod.Bounds{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings.Bounds()
}

// Catalog loads the stored locations in priority order.
func (c *Context) Catalog() (*location.Catalog, error) {
	locs, err := c.Store.GetLocations()
	if err != nil {
		return nil, fmt.Errorf("failed to load locations: %w", err)
	}
	return location.NewCatalog(locs), nil
}

// ToIndices converts command-line integers to contact indices.
func ToIndices(values []int) []models.ContactIndex {
	out := make([]models.ContactIndex, len(values))
	for i, v := range values {
		out[i] = models.ContactIndex(v)
	}
	return out
}

// ParseSlot parses a day and HH:MM range into a period of the given kind.
func ParseSlot(kind timeperiod.Kind, day, start, end string) (timeperiod.Period, error) {
	d, err := timeperiod.ParseDay(day)
	if err != nil {
		return timeperiod.Period{}, err
	}
	return timeperiod.Parse(kind, start, end, d)
}

// FormatIndices renders indices as "#1, #2".
func FormatIndices(indices []models.ContactIndex) string {
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = idx.String()
	}
	return strings.Join(parts, ", ")
}
