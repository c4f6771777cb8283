package imports

import (
	"fmt"
	"time"

	"github.com/julianstephens/rendezvous/internal/cli"
	"github.com/julianstephens/rendezvous/internal/importer"
	"github.com/julianstephens/rendezvous/internal/index"
	"github.com/julianstephens/rendezvous/internal/models"
)

type ImportRosterCmd struct {
	Path   string `arg:"" type:"existingfile" help:"YAML roster file."`
	DryRun bool   `help:"Validate the file without writing anything."`
}

func (c *ImportRosterCmd) Run(ctx *cli.Context) error {
	roster, err := importer.LoadRoster(c.Path)
	if err != nil {
		return err
	}
	base, err := ctx.Store.GetLocations()
	if err != nil {
		return err
	}
	catalog, added, err := roster.Catalog(base)
	if err != nil {
		return err
	}
	people, err := roster.People(catalog)
	if err != nil {
		return err
	}

	if c.DryRun {
		fmt.Printf("Roster is valid: %d location(s), %d person(s).\n", len(added), len(people))
		return nil
	}

	ctx.PerformAutomaticBackup()

	for _, loc := range added {
		if err := ctx.Store.SaveLocation(loc); err != nil {
			return fmt.Errorf("failed to save location %q: %w", loc.Name, err)
		}
	}
	now := time.Now()
	for _, p := range people {
		p.CreatedAt = now
		p = ctx.Indexer.RegisterPerson(p)
		if err := ctx.Store.AddPerson(p); err != nil {
			ctx.Indexer.Release(index.Persons, p.Index)
			return fmt.Errorf("failed to add %s: %w", p.Name, err)
		}
		fmt.Printf("  %-5s %s (%d busy, %d visits)\n", p.Index, p.Name, len(p.Busy), len(p.Visits))
	}
	fmt.Printf("Imported %d location(s) and %d person(s).\n", len(added), len(people))
	return nil
}

type ImportCalendarCmd struct {
	Index    int    `arg:"" help:"Person whose schedule the calendar describes."`
	Path     string `arg:"" type:"existingfile" help:"iCalendar (.ics) file."`
	Timezone string `help:"IANA zone to read event times in (defaults to the local zone)."`
	DryRun   bool   `help:"Show what would be imported without writing anything."`
}

func (c *ImportCalendarCmd) Run(ctx *cli.Context) error {
	idx := models.ContactIndex(c.Index)
	p, err := ctx.Store.GetPerson(idx)
	if err != nil {
		return err
	}

	opts := importer.CalendarOptions{}
	if c.Timezone != "" {
		if opts.Location, err = time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
		}
	}
	if opts.Catalog, err = ctx.Catalog(); err != nil {
		return err
	}

	sched, err := importer.LoadCalendar(c.Path, opts)
	if err != nil {
		return err
	}

	fmt.Printf("Calendar for %s %s: %d busy period(s), %d visit(s), %d event(s) skipped.\n",
		p.Index, p.Name, len(sched.Busy), len(sched.Visits), sched.Skipped)
	if c.DryRun {
		for _, b := range sched.Busy {
			fmt.Printf("  busy   %s\n", b)
		}
		for _, v := range sched.Visits {
			fmt.Printf("  visit  %s at %s\n", v.Period, v.Location.Name)
		}
		return nil
	}

	ctx.PerformAutomaticBackup()

	existing := make(map[string]bool, len(p.Busy))
	for _, b := range p.Busy {
		existing[b.String()] = true
	}
	for _, b := range sched.Busy {
		if existing[b.String()] {
			continue
		}
		if err := ctx.Store.AddBusy(idx, b); err != nil {
			return fmt.Errorf("failed to add busy period %s: %w", b, err)
		}
	}
	for _, v := range sched.Visits {
		if err := ctx.Store.AddVisit(idx, v); err != nil {
			return fmt.Errorf("failed to add visit %s: %w", v.Period, err)
		}
	}
	fmt.Println("Import complete.")
	return nil
}
