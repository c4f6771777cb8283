package people

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/rendezvous/internal/cli"
	"github.com/julianstephens/rendezvous/internal/constants"
	"github.com/julianstephens/rendezvous/internal/index"
	"github.com/julianstephens/rendezvous/internal/models"
)

type PersonAddCmd struct {
	Name        string `arg:"" optional:"" help:"Person's name."`
	Email       string `short:"e" help:"Email address."`
	Phone       string `short:"p" help:"Phone number."`
	Interactive bool   `short:"i" help:"Fill in the details with a form."`
}

func (c *PersonAddCmd) Run(ctx *cli.Context) error {
	if c.Interactive {
		if err := c.prompt(); err != nil {
			return err
		}
	}
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("a name is required (pass it as an argument or use --interactive)")
	}
	if err := validateEmail(c.Email); err != nil {
		return err
	}

	p := ctx.Indexer.RegisterPerson(models.Person{
		Name:      strings.TrimSpace(c.Name),
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: time.Now(),
	})
	if err := ctx.Store.AddPerson(p); err != nil {
		ctx.Indexer.Release(index.Persons, p.Index)
		return fmt.Errorf("failed to add person: %w", err)
	}

	fmt.Printf("Added %s %s\n", p.Index, p.Name)
	return nil
}

func (c *PersonAddCmd) prompt() error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&c.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Email").
				Description("Optional").
				Value(&c.Email).
				Validate(validateEmail),
			huh.NewInput().
				Title("Phone").
				Description("Optional").
				Value(&c.Phone),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive form error: %w", err)
	}
	return nil
}

func validateEmail(s string) error {
	if s == "" {
		return nil
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return fmt.Errorf("invalid email %q", s)
	}
	return nil
}

type PersonEditCmd struct {
	Index int     `arg:"" help:"Person index."`
	Name  *string `help:"New name."`
	Email *string `help:"New email address."`
	Phone *string `help:"New phone number."`
}

func (c *PersonEditCmd) Run(ctx *cli.Context) error {
	p, err := ctx.Store.GetPerson(models.ContactIndex(c.Index))
	if err != nil {
		return err
	}

	updated := false
	if c.Name != nil {
		p.Name = strings.TrimSpace(*c.Name)
		updated = true
	}
	if c.Email != nil {
		if err := validateEmail(*c.Email); err != nil {
			return err
		}
		p.Email = *c.Email
		updated = true
	}
	if c.Phone != nil {
		p.Phone = *c.Phone
		updated = true
	}
	if !updated {
		fmt.Println("No changes specified. Use --name, --email or --phone.")
		return nil
	}

	if err := ctx.Store.UpdatePerson(p); err != nil {
		return fmt.Errorf("failed to update person: %w", err)
	}
	fmt.Printf("Updated %s %s\n", p.Index, p.Name)
	return nil
}

type PersonListCmd struct {
	Deleted bool `help:"Include deleted people."`
}

func (c *PersonListCmd) Run(ctx *cli.Context) error {
	list := ctx.Store.GetAllPeople
	if c.Deleted {
		list = ctx.Store.GetAllPeopleIncludingDeleted
	}
	people, err := list()
	if err != nil {
		return err
	}
	if len(people) == 0 {
		fmt.Println("No people found. Add one with 'rendezvous person add'.")
		return nil
	}

	for _, p := range people {
		line := fmt.Sprintf("%-5s %-24s", p.Index, p.Name)
		if p.Email != "" {
			line += " " + p.Email
		}
		if p.Phone != "" {
			line += " " + p.Phone
		}
		line += fmt.Sprintf("  (%d busy, %d visits)", len(p.Busy), len(p.Visits))
		if p.DeletedAt != nil {
			line += " [deleted " + p.DeletedAt.Format(constants.DateFormat) + "]"
		}
		fmt.Println(line)
	}
	return nil
}

type PersonDeleteCmd struct {
	Index int `arg:"" help:"Person index."`
}

func (c *PersonDeleteCmd) Run(ctx *cli.Context) error {
	idx := models.ContactIndex(c.Index)
	if err := ctx.Store.DeletePerson(idx); err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}
	fmt.Printf("Deleted %s. Restore with 'rendezvous person restore %d'.\n", idx, c.Index)
	return nil
}

type PersonRestoreCmd struct {
	Index int `arg:"" help:"Person index."`
}

func (c *PersonRestoreCmd) Run(ctx *cli.Context) error {
	idx := models.ContactIndex(c.Index)
	if err := ctx.Store.RestorePerson(idx); err != nil {
		return fmt.Errorf("failed to restore person: %w", err)
	}
	fmt.Printf("Restored %s\n", idx)
	return nil
}
