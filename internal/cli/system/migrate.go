package system

import (
	"fmt"

	"github.com/julianstephens/rendezvous/internal/cli"
)

type migrator interface {
	Migrate(logFn func(string)) error
}

// MigrateCmd applies pending schema migrations. The runner reports its own
// progress, including the up-to-date case.
type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	m, ok := ctx.Store.(migrator)
	if !ok {
		return fmt.Errorf("storage backend does not support migrations")
	}
	if err := m.Migrate(func(msg string) { fmt.Println(msg) }); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
