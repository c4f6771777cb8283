package schedule

import (
	"fmt"

	"github.com/julianstephens/rendezvous/internal/cli"
	"github.com/julianstephens/rendezvous/internal/models"
	"github.com/julianstephens/rendezvous/internal/timeperiod"
)

type VisitAddCmd struct {
	Index    int    `arg:"" help:"Person index."`
	Day      string `arg:"" help:"Day of the week (mon..sun)."`
	Start    string `arg:"" help:"Start time (HH:MM)."`
	End      string `arg:"" help:"End time (HH:MM)."`
	Location string `arg:"" help:"Location name from the catalog."`
}

func (c *VisitAddCmd) Run(ctx *cli.Context) error {
	period, err := cli.ParseSlot(timeperiod.KindWindow, c.Day, c.Start, c.End)
	if err != nil {
		return err
	}
	catalog, err := ctx.Catalog()
	if err != nil {
		return err
	}
	loc, ok := catalog.Lookup(c.Location)
	if !ok {
		return fmt.Errorf("unknown location %q (see 'rendezvous location list' or add it with 'rendezvous location add')", c.Location)
	}

	idx := models.ContactIndex(c.Index)
	if err := ctx.Store.AddVisit(idx, models.Visit{Period: period, Location: loc}); err != nil {
		return fmt.Errorf("failed to add visit: %w", err)
	}
	fmt.Printf("%s will be at %s on %s\n", idx, loc.Name, period)
	return nil
}

type VisitListCmd struct {
	Index int `arg:"" help:"Person index."`
}

func (c *VisitListCmd) Run(ctx *cli.Context) error {
	p, err := ctx.Store.GetPerson(models.ContactIndex(c.Index))
	if err != nil {
		return err
	}
	fmt.Printf("Visits for %s %s:\n", p.Index, p.Name)
	if len(p.Visits) == 0 {
		fmt.Println("  (none)")
		return nil
	}
	for _, v := range p.Visits {
		fmt.Printf("  %-9s %s-%s  %-28s %s\n", v.Period.Day(), v.Period.Start(), v.Period.End(), v.Location.Name, v.ID)
	}
	return nil
}

type VisitDeleteCmd struct {
	ID string `arg:"" help:"Visit ID (shown by 'visit list')."`
}

func (c *VisitDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteVisit(c.ID); err != nil {
		return fmt.Errorf("failed to delete visit: %w", err)
	}
	fmt.Println("Visit deleted.")
	return nil
}
