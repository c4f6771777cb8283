package schedule

import (
	"fmt"

	"github.com/julianstephens/rendezvous/internal/cli"
	"github.com/julianstephens/rendezvous/internal/models"
	"github.com/julianstephens/rendezvous/internal/timeperiod"
)

type BusyAddCmd struct {
	Index int    `arg:"" help:"Person index."`
	Day   string `arg:"" help:"Day of the week (mon..sun)."`
	Start string `arg:"" help:"Start time (HH:MM)."`
	End   string `arg:"" help:"End time (HH:MM)."`
}

func (c *BusyAddCmd) Run(ctx *cli.Context) error {
	period, err := cli.ParseSlot(timeperiod.KindBusy, c.Day, c.Start, c.End)
	if err != nil {
		return err
	}
	idx := models.ContactIndex(c.Index)
	if err := ctx.Store.AddBusy(idx, period); err != nil {
		return fmt.Errorf("failed to add busy period: %w", err)
	}
	fmt.Printf("%s is busy on %s\n", idx, period)
	return nil
}

type BusyRemoveCmd struct {
	Index int    `arg:"" help:"Person index."`
	Day   string `arg:"" help:"Day of the week (mon..sun)."`
	Start string `arg:"" help:"Start time (HH:MM)."`
	End   string `arg:"" help:"End time (HH:MM)."`
}

func (c *BusyRemoveCmd) Run(ctx *cli.Context) error {
	period, err := cli.ParseSlot(timeperiod.KindBusy, c.Day, c.Start, c.End)
	if err != nil {
		return err
	}
	idx := models.ContactIndex(c.Index)
	if err := ctx.Store.RemoveBusy(idx, period); err != nil {
		return fmt.Errorf("failed to remove busy period: %w", err)
	}
	fmt.Printf("Removed %s from %s\n", period, idx)
	return nil
}

type BusyListCmd struct {
	Index int  `arg:"" help:"Person index."`
	Free  bool `help:"Show free time inside the configured day window instead."`
}

func (c *BusyListCmd) Run(ctx *cli.Context) error {
	p, err := ctx.Store.GetPerson(models.ContactIndex(c.Index))
	if err != nil {
		return err
	}

	periods, err := timeperiod.Consolidate(p.Busy)
	if err != nil {
		return err
	}
	label := "Busy"
	if c.Free {
		bounds, err := ctx.Bounds()
		if err != nil {
			return err
		}
		if periods, err = timeperiod.Complement(periods, bounds); err != nil {
			return err
		}
		label = "Free"
	}

	fmt.Printf("%s time for %s %s:\n", label, p.Index, p.Name)
	if len(periods) == 0 {
		fmt.Println("  (none)")
		return nil
	}
	for _, period := range periods {
		fmt.Printf("  %-9s %s-%s\n", period.Day(), period.Start(), period.End())
	}
	return nil
}
