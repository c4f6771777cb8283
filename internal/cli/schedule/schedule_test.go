package schedule

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/rendezvous/internal/cli"
	"github.com/julianstephens/rendezvous/internal/index"
	"github.com/julianstephens/rendezvous/internal/models"
	"github.com/julianstephens/rendezvous/internal/storage/sqlite"
	tp "github.com/julianstephens/rendezvous/internal/timeperiod"
)

func setupTestDB(t *testing.T) *cli.Context {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	if err := store.AddPerson(models.Person{Index: 1, Name: "Alice"}); err != nil {
		t.Fatalf("failed to add person: %v", err)
	}
	return &cli.Context{Store: store, Indexer: index.NewHandler()}
}

func TestBusyCommands(t *testing.T) {
	ctx := setupTestDB(t)

	if err := (&BusyAddCmd{Index: 1, Day: "mon", Start: "09:00", End: "11:00"}).Run(ctx); err != nil {
		t.Fatalf("busy add failed: %v", err)
	}
	if err := (&BusyAddCmd{Index: 9, Day: "mon", Start: "09:00", End: "11:00"}).Run(ctx); err == nil {
		t.Error("busy add for an unknown person should fail")
	}
	if err := (&BusyAddCmd{Index: 1, Day: "mon", Start: "12:00", End: "11:00"}).Run(ctx); err == nil {
		t.Error("busy add with end before start should fail")
	}
	if err := (&BusyListCmd{Index: 1, Free: true}).Run(ctx); err != nil {
		t.Errorf("busy list --free failed: %v", err)
	}

	p, err := ctx.Store.GetPerson(1)
	if err != nil {
		t.Fatal(err)
	}
	want := tp.MustNew(tp.KindBusy, tp.At(9, 0), tp.At(11, 0), tp.Monday)
	if len(p.Busy) != 1 || p.Busy[0] != want {
		t.Fatalf("busy = %v, want [%s]", p.Busy, want)
	}

	if err := (&BusyRemoveCmd{Index: 1, Day: "monday", Start: "09:00", End: "11:00"}).Run(ctx); err != nil {
		t.Fatalf("busy remove failed: %v", err)
	}
	if err := (&BusyRemoveCmd{Index: 1, Day: "monday", Start: "09:00", End: "11:00"}).Run(ctx); err == nil {
		t.Error("removing a missing busy period should fail")
	}
}

func TestVisitCommands(t *testing.T) {
	ctx := setupTestDB(t)

	if err := (&VisitAddCmd{Index: 1, Day: "tue", Start: "12:00", End: "13:00", Location: "frontier"}).Run(ctx); err != nil {
		t.Fatalf("visit add failed: %v", err)
	}
	if err := (&VisitAddCmd{Index: 1, Day: "tue", Start: "12:00", End: "13:00", Location: "Atlantis"}).Run(ctx); err == nil {
		t.Error("visit add with an unknown location should fail")
	}

	p, err := ctx.Store.GetPerson(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Visits) != 1 || p.Visits[0].Location.Name != "Frontier" {
		t.Fatalf("visits = %+v, want one visit to Frontier", p.Visits)
	}

	if err := (&VisitDeleteCmd{ID: p.Visits[0].ID}).Run(ctx); err != nil {
		t.Fatalf("visit delete failed: %v", err)
	}
	if err := (&VisitListCmd{Index: 1}).Run(ctx); err != nil {
		t.Errorf("visit list failed: %v", err)
	}
}

func TestLocationCommands(t *testing.T) {
	ctx := setupTestDB(t)

	if err := (&LocationAddCmd{Name: "Study Room 3", Region: "COM1", Purposes: []string{"study"}}).Run(ctx); err != nil {
		t.Fatalf("location add failed: %v", err)
	}
	if err := (&LocationAddCmd{Name: "Nap Pod", Purposes: []string{"sleep"}}).Run(ctx); err == nil {
		t.Error("location add with an unknown purpose should fail")
	}

	catalog, err := ctx.Catalog()
	if err != nil {
		t.Fatal(err)
	}
	loc, ok := catalog.Lookup("study room 3")
	if !ok || !loc.Serves(models.PurposeStudy) {
		t.Errorf("Study Room 3 = %+v, %v", loc, ok)
	}
	if err := (&LocationListCmd{Purpose: "study"}).Run(ctx); err != nil {
		t.Errorf("location list failed: %v", err)
	}
}
