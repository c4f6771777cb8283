package settings

import (
	"fmt"

	"github.com/julianstephens/rendezvous/internal/cli"
	"github.com/julianstephens/rendezvous/internal/timeperiod"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	DayStart *string `help:"Earliest meetup time (HH:MM)."`
	DayEnd   *string `help:"Latest meetup end time (HH:MM)."`
	Days     *string `help:"Comma-separated days to consider, e.g. mon,tue,wed."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Day Start:  %s\n", settings.DayStart)
		fmt.Printf("  Day End:    %s\n", settings.DayEnd)
		fmt.Printf("  Days:       %s\n", timeperiod.FormatDays(settings.Days))
		fmt.Printf("  Storage:    %s\n", ctx.Store.GetConfigPath())
		return nil
	}

	updated := false
	if c.DayStart != nil {
		settings.DayStart = *c.DayStart
		updated = true
	}
	if c.DayEnd != nil {
		settings.DayEnd = *c.DayEnd
		updated = true
	}
	if c.Days != nil {
		days, err := timeperiod.ParseDays(*c.Days)
		if err != nil {
			return err
		}
		if len(days) == 0 {
			return fmt.Errorf("at least one day is required")
		}
		settings.Days = days
		updated = true
	}

	if !updated {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	if _, err := settings.Bounds(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println("Settings updated successfully.")
	return nil
}
