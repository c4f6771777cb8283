package people

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/julianstephens/rendezvous/internal/cli"
	"github.com/julianstephens/rendezvous/internal/index"
	"github.com/julianstephens/rendezvous/internal/storage"
	"github.com/julianstephens/rendezvous/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) *cli.Context {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return &cli.Context{Store: store, Indexer: index.NewHandler()}
}

func TestPersonAddCmd(t *testing.T) {
	ctx := setupTestDB(t)

	for _, name := range []string{"Alice", "Bob"} {
		if err := (&PersonAddCmd{Name: name}).Run(ctx); err != nil {
			t.Fatalf("person add %s failed: %v", name, err)
		}
	}

	people, err := ctx.Store.GetAllPeople()
	if err != nil {
		t.Fatalf("GetAllPeople() failed: %v", err)
	}
	if len(people) != 2 || people[0].Index != 1 || people[1].Index != 2 {
		t.Fatalf("unexpected people: %+v", people)
	}
}

func TestPersonAddCmd_Validation(t *testing.T) {
	ctx := setupTestDB(t)

	tests := []struct {
		name string
		cmd  PersonAddCmd
	}{
		{"missing name", PersonAddCmd{Name: "  "}},
		{"bad email", PersonAddCmd{Name: "Alice", Email: "not-an-email"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cmd.Run(ctx); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestPersonEditCmd(t *testing.T) {
	ctx := setupTestDB(t)
	if err := (&PersonAddCmd{Name: "Alice"}).Run(ctx); err != nil {
		t.Fatalf("person add failed: %v", err)
	}

	email := "alice@example.com"
	if err := (&PersonEditCmd{Index: 1, Email: &email}).Run(ctx); err != nil {
		t.Fatalf("person edit failed: %v", err)
	}
	p, err := ctx.Store.GetPerson(1)
	if err != nil {
		t.Fatalf("GetPerson() failed: %v", err)
	}
	if p.Email != email || p.Name != "Alice" {
		t.Errorf("person after edit = %+v", p)
	}
}

func TestPersonDeleteAndRestore(t *testing.T) {
	ctx := setupTestDB(t)
	if err := (&PersonAddCmd{Name: "Alice"}).Run(ctx); err != nil {
		t.Fatalf("person add failed: %v", err)
	}

	if err := (&PersonDeleteCmd{Index: 1}).Run(ctx); err != nil {
		t.Fatalf("person delete failed: %v", err)
	}
	if _, err := ctx.Store.GetPerson(1); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("GetPerson() after delete error = %v, want ErrNotFound", err)
	}
	if err := (&PersonListCmd{Deleted: true}).Run(ctx); err != nil {
		t.Errorf("person list --deleted failed: %v", err)
	}

	// A deleted person's index stays taken
	if err := (&PersonAddCmd{Name: "Bob"}).Run(ctx); err != nil {
		t.Fatalf("person add failed: %v", err)
	}
	if _, err := ctx.Store.GetPerson(2); err != nil {
		t.Errorf("Bob should have index #2: %v", err)
	}

	if err := (&PersonRestoreCmd{Index: 1}).Run(ctx); err != nil {
		t.Fatalf("person restore failed: %v", err)
	}
	if err := (&PersonRestoreCmd{Index: 1}).Run(ctx); err == nil {
		t.Error("restoring an active person should fail")
	}
}
