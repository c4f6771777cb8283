package schedule

import (
	"fmt"
	"strings"

	"github.com/julianstephens/rendezvous/internal/cli"
	"github.com/julianstephens/rendezvous/internal/models"
)

type LocationListCmd struct {
	Purpose string `short:"p" help:"Only show locations for this purpose (meet, study, eat)."`
}

func (c *LocationListCmd) Run(ctx *cli.Context) error {
	catalog, err := ctx.Catalog()
	if err != nil {
		return err
	}
	locs := catalog.All()
	if c.Purpose != "" {
		p, err := models.ParsePurpose(c.Purpose)
		if err != nil {
			return err
		}
		locs = catalog.ForPurpose(p)
	}

	if len(locs) == 0 {
		fmt.Println("No locations found.")
		return nil
	}
	for i, loc := range locs {
		fmt.Printf("%3d. %-28s %-18s %s\n", i+1, loc.Name, loc.Region, loc.Purposes)
	}
	return nil
}

type LocationAddCmd struct {
	Name     string   `arg:"" help:"Location name."`
	Region   string   `short:"r" help:"Region or campus area."`
	Purposes []string `short:"p" help:"Purposes served (meet, study, eat)." required:""`
}

func (c *LocationAddCmd) Run(ctx *cli.Context) error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return fmt.Errorf("location name cannot be empty")
	}
	purposes, err := models.ParsePurposes(c.Purposes)
	if err != nil {
		return err
	}

	loc := models.Location{Name: name, Region: c.Region, Purposes: purposes}
	if err := ctx.Store.SaveLocation(loc); err != nil {
		return fmt.Errorf("failed to save location: %w", err)
	}
	fmt.Printf("Saved %s (%s)\n", loc.Name, loc.Purposes)
	return nil
}
