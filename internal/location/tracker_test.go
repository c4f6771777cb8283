package location

import (
	"testing"

	"github.com/julianstephens/rendezvous/internal/models"
	"github.com/julianstephens/rendezvous/internal/timeperiod"
)

func visit(start, end timeperiod.Clock, day timeperiod.Day, name string) models.Visit {
	return models.Visit{
		Period:   timeperiod.MustNew(timeperiod.KindWindow, start, end, day),
		Location: models.Location{Name: name},
	}
}

func TestTrackerLocation(t *testing.T) {
	p := models.Person{
		Index: 6,
		Name:  "Edward",
		Visits: []models.Visit{
			visit(timeperiod.At(14, 0), timeperiod.At(16, 0), timeperiod.Monday, "NUS Science Library"),
			visit(timeperiod.At(16, 0), timeperiod.At(17, 30), timeperiod.Monday, "Frontier"),
		},
	}
	tr := NewTracker(p)

	tests := []struct {
		block timeperiod.HourBlock
		want  string
		found bool
	}{
		{block: timeperiod.HourBlock{Hour: 14, Day: timeperiod.Monday}, want: "NUS Science Library", found: true},
		{block: timeperiod.HourBlock{Hour: 15, Day: timeperiod.Monday}, want: "NUS Science Library", found: true},
		{block: timeperiod.HourBlock{Hour: 16, Day: timeperiod.Monday}, want: "Frontier", found: true},
		{block: timeperiod.HourBlock{Hour: 17, Day: timeperiod.Monday}, want: "Frontier", found: true},
		{block: timeperiod.HourBlock{Hour: 18, Day: timeperiod.Monday}, found: false},
		{block: timeperiod.HourBlock{Hour: 14, Day: timeperiod.Tuesday}, found: false},
	}
	for _, tt := range tests {
		loc, ok := tr.Location(tt.block)
		if ok != tt.found {
			t.Errorf("Location(%s) found = %v, want %v", tt.block, ok, tt.found)
			continue
		}
		if ok && loc.Name != tt.want {
			t.Errorf("Location(%s) = %s, want %s", tt.block, loc.Name, tt.want)
		}
	}
	if tr.Participant() != 6 {
		t.Errorf("Participant() = %d, want 6", tr.Participant())
	}
}

func TestTrackerOverlapPrefersLongerStay(t *testing.T) {
	p := models.Person{
		Index: 1,
		Visits: []models.Visit{
			visit(timeperiod.At(9, 0), timeperiod.At(9, 20), timeperiod.Friday, "Kent Ridge MRT"),
			visit(timeperiod.At(9, 20), timeperiod.At(11, 0), timeperiod.Friday, "NUS Central Library"),
			visit(timeperiod.At(11, 0), timeperiod.At(11, 30), timeperiod.Friday, "The Deck"),
			visit(timeperiod.At(11, 30), timeperiod.At(12, 0), timeperiod.Friday, "Frontier"),
		},
	}
	tr := NewTracker(p)

	if loc, _ := tr.Location(timeperiod.HourBlock{Hour: 9, Day: timeperiod.Friday}); loc.Name != "NUS Central Library" {
		t.Errorf("09:00 block = %s, want NUS Central Library", loc.Name)
	}
	// Equal overlap: earlier recorded visit wins
	if loc, _ := tr.Location(timeperiod.HourBlock{Hour: 11, Day: timeperiod.Friday}); loc.Name != "The Deck" {
		t.Errorf("11:00 block = %s, want The Deck", loc.Name)
	}
	if got := len(tr.Blocks()); got != 3 {
		t.Errorf("Blocks() = %d blocks, want 3", got)
	}
}

func TestTrackerWithoutVisits(t *testing.T) {
	tr := NewTracker(models.Person{Index: 2})
	if _, ok := tr.Location(timeperiod.HourBlock{Hour: 10, Day: timeperiod.Monday}); ok {
		t.Error("empty tracker should report no location")
	}
}
