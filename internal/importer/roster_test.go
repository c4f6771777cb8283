package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/rendezvous/internal/location"
	"github.com/julianstephens/rendezvous/internal/models"
	tp "github.com/julianstephens/rendezvous/internal/timeperiod"
)

const sampleRoster = `
locations:
  - name: Frontier
    region: Kent Ridge
    purposes: [eat]
  - name: Study Room 3
    region: COM1
    purposes: [study, meet]
people:
  - name: Alice
    email: alice@example.com
    busy:
      - {day: mon, start: "09:00", end: "12:00"}
      - {day: Wednesday, start: "13:00", end: "14:30"}
    visits:
      - {day: mon, start: "14:00", end: "16:00", location: study room 3}
  - name: Bob
    phone: "+65 8123 4567"
`

func TestParseRoster(t *testing.T) {
	roster, err := ParseRoster(strings.NewReader(sampleRoster))
	if err != nil {
		t.Fatalf("ParseRoster() failed: %v", err)
	}

	catalog, added, err := roster.Catalog(location.DefaultCatalog().All())
	if err != nil {
		t.Fatalf("Catalog() failed: %v", err)
	}
	if len(added) != 2 {
		t.Fatalf("Catalog() added %d locations, want 2", len(added))
	}
	frontier, ok := catalog.Lookup("Frontier")
	if !ok || frontier.Purposes != models.PurposeEat {
		t.Errorf("Frontier = %+v, want purposes overridden to eat", frontier)
	}
	if catalog.Len() != location.DefaultCatalog().Len()+1 {
		t.Errorf("catalog has %d locations, want one new entry", catalog.Len())
	}

	people, err := roster.People(catalog)
	if err != nil {
		t.Fatalf("People() failed: %v", err)
	}
	if len(people) != 2 {
		t.Fatalf("People() returned %d people, want 2", len(people))
	}

	alice := people[0]
	if alice.Index != 0 {
		t.Errorf("imported person carries index %s, want none", alice.Index)
	}
	wantBusy := []tp.Period{
		tp.MustNew(tp.KindBusy, tp.At(9, 0), tp.At(12, 0), tp.Monday),
		tp.MustNew(tp.KindBusy, tp.At(13, 0), tp.At(14, 30), tp.Wednesday),
	}
	if len(alice.Busy) != len(wantBusy) {
		t.Fatalf("Alice busy = %v, want %v", alice.Busy, wantBusy)
	}
	for i := range wantBusy {
		if alice.Busy[i] != wantBusy[i] {
			t.Errorf("Alice busy[%d] = %s, want %s", i, alice.Busy[i], wantBusy[i])
		}
	}
	if len(alice.Visits) != 1 || alice.Visits[0].Location.Name != "Study Room 3" {
		t.Errorf("Alice visits = %+v, want one visit to Study Room 3", alice.Visits)
	}
	if people[1].Phone != "+65 8123 4567" {
		t.Errorf("Bob phone = %q", people[1].Phone)
	}
}

func TestParseRosterErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown key", "people:\n  - name: A\n    nickname: a\n"},
		{"bad day", "people:\n  - name: A\n    busy:\n      - {day: funday, start: \"09:00\", end: \"10:00\"}\n"},
		{"end before start", "people:\n  - name: A\n    busy:\n      - {day: mon, start: \"11:00\", end: \"10:00\"}\n"},
		{"unknown visit location", "people:\n  - name: A\n    visits:\n      - {day: mon, start: \"09:00\", end: \"10:00\", location: Nowhere}\n"},
		{"missing name", "people:\n  - email: a@example.com\n"},
		{"bad purpose", "locations:\n  - name: X\n    purposes: [sleep]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roster, err := ParseRoster(strings.NewReader(tt.doc))
			if err != nil {
				return
			}
			catalog, _, err := roster.Catalog(location.DefaultCatalog().All())
			if err != nil {
				return
			}
			if _, err := roster.People(catalog); err == nil {
				t.Errorf("expected an error for %s", tt.name)
			}
		})
	}
}

func TestLoadRosterEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, nil, 0600); err != nil {
		t.Fatal(err)
	}
	roster, err := LoadRoster(path)
	if err != nil {
		t.Fatalf("LoadRoster() failed: %v", err)
	}
	if len(roster.People) != 0 || len(roster.Locations) != 0 {
		t.Errorf("empty roster decoded as %+v", roster)
	}
}
