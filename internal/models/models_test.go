package models

import (
	"slices"
	"testing"

	"github.com/julianstephens/rendezvous/internal/timeperiod"
)

func TestParsePurposes(t *testing.T) {
	set, err := ParsePurposes([]string{"meet", " EAT "})
	if err != nil {
		t.Fatalf("ParsePurposes() unexpected error: %v", err)
	}
	if set != PurposeMeet|PurposeEat {
		t.Errorf("ParsePurposes() = %v, want meet,eat", set)
	}
	if set.String() != "meet,eat" {
		t.Errorf("String() = %q", set.String())
	}
	if _, err := ParsePurposes([]string{"sleep"}); err == nil {
		t.Error("ParsePurposes() expected error for unknown purpose")
	}
}

func TestLocationServes(t *testing.T) {
	frontier := Location{Name: "Frontier", Purposes: PurposeMeet | PurposeEat}
	if !frontier.Serves(PurposeEat) {
		t.Error("Frontier should serve eat")
	}
	if frontier.Serves(PurposeStudy) {
		t.Error("Frontier should not serve study")
	}
	if !frontier.SamePlace(Location{Name: "Frontier"}) {
		t.Error("locations with the same name are the same place")
	}
}

func TestCompareRecommendations(t *testing.T) {
	recs := []Recommendation{
		{Location: Location{Name: "B"}, Block: timeperiod.HourBlock{Hour: 15, Day: timeperiod.Monday}, WindowRank: 0, LocationRank: 1},
		{Location: Location{Name: "A"}, Block: timeperiod.HourBlock{Hour: 9, Day: timeperiod.Tuesday}, WindowRank: 1},
		{Location: Location{Name: "C"}, Block: timeperiod.HourBlock{Hour: 14, Day: timeperiod.Monday}, WindowRank: 0, LocationRank: 2},
		{Location: Location{Name: "A"}, Block: timeperiod.HourBlock{Hour: 15, Day: timeperiod.Monday}, WindowRank: 0, LocationRank: 1},
	}
	slices.SortFunc(recs, CompareRecommendations)

	var got []string
	for _, r := range recs {
		got = append(got, r.String())
	}
	want := []string{
		"C @ Monday 14:00-15:00",
		"A @ Monday 15:00-16:00",
		"B @ Monday 15:00-16:00",
		"A @ Tuesday 09:00-10:00",
	}
	if !slices.Equal(got, want) {
		t.Errorf("sorted = %v, want %v", got, want)
	}
}

func TestSettingsBounds(t *testing.T) {
	b, err := Settings{DayStart: "08:00", DayEnd: "22:00"}.Bounds()
	if err != nil {
		t.Fatalf("Bounds() unexpected error: %v", err)
	}
	if b.Start != timeperiod.At(8, 0) || b.End != timeperiod.At(22, 0) {
		t.Errorf("Bounds() = %+v", b)
	}
	if !slices.Equal(b.Days, timeperiod.SchoolDays) {
		t.Errorf("Bounds() days = %v, want school days", b.Days)
	}

	if _, err := (Settings{DayStart: "22:00", DayEnd: "08:00"}).Bounds(); err == nil {
		t.Error("Bounds() expected error for inverted window")
	}
}

func TestPersonValidate(t *testing.T) {
	p := Person{Index: 1, Name: "Edward"}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
	p.Busy = []timeperiod.Period{timeperiod.MustNew(timeperiod.KindFree, timeperiod.At(9, 0), timeperiod.At(10, 0), timeperiod.Monday)}
	if err := p.Validate(); err == nil {
		t.Error("Validate() expected error for free period in busy list")
	}
	if err := (Person{Name: "No Index"}).Validate(); err == nil {
		t.Error("Validate() expected error for missing index")
	}
}
