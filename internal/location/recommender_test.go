package location

import (
	"slices"
	"testing"

	"github.com/julianstephens/rendezvous/internal/models"
)

func names(cands []Candidate) []string {
	var out []string
	for _, c := range cands {
		out = append(out, c.Location.Name)
	}
	return out
}

func TestRecommendFiltersToDestinations(t *testing.T) {
	r := NewRecommender()
	r.Initialise(EatLocations())

	observed := []models.Location{
		{Name: "NUS Science Library"},
		{Name: "The Terrace"},
		{Name: "Frontier"},
		{Name: "Frontier"},
	}
	got := names(r.Recommend(observed))
	want := []string{"Frontier", "The Terrace"}
	if !slices.Equal(got, want) {
		t.Errorf("Recommend() = %v, want %v", got, want)
	}
}

func TestRecommendNoOverlap(t *testing.T) {
	r := NewRecommender()
	r.Initialise(StudyLocations())

	got := r.Recommend([]models.Location{{Name: "The Terrace"}, {Name: "Jurong Point"}})
	if len(got) != 0 {
		t.Errorf("Recommend() = %v, want none", names(got))
	}
	if got := r.Recommend(nil); len(got) != 0 {
		t.Errorf("Recommend(nil) = %v, want none", names(got))
	}
}

func TestRecommendUsesCanonicalDestination(t *testing.T) {
	r := NewRecommender()
	r.Initialise([]models.Location{
		{Name: "Frontier", Region: "Kent Ridge", Purposes: models.PurposeEat},
		{Name: "The Deck", Region: "Kent Ridge", Purposes: models.PurposeEat},
		{Name: "Frontier", Region: "elsewhere"},
	})

	got := r.Recommend([]models.Location{{Name: "The Deck"}, {Name: "Frontier"}})
	if len(got) != 2 {
		t.Fatalf("Recommend() returned %d candidates, want 2", len(got))
	}
	if got[0].Location.Region != "Kent Ridge" || got[0].Rank != 0 {
		t.Errorf("first candidate = %+v, want canonical Frontier at rank 0", got[0])
	}
	if len(r.Destinations()) != 2 {
		t.Errorf("Destinations() = %d, want duplicates collapsed to 2", len(r.Destinations()))
	}
}

func TestInitialiseResets(t *testing.T) {
	r := NewRecommender()
	r.Initialise(EatLocations())
	r.Initialise(StudyLocations())

	if got := r.Recommend([]models.Location{{Name: "Frontier"}}); len(got) != 0 {
		t.Errorf("Recommend() after re-initialise = %v, want none", names(got))
	}
}

func TestCatalog(t *testing.T) {
	c := DefaultCatalog()
	loc, ok := c.Lookup("  frontier ")
	if !ok || loc.Name != "Frontier" {
		t.Fatalf("Lookup(frontier) = %v, %v", loc, ok)
	}

	c.Add(models.Location{Name: "FRONTIER", Purposes: models.PurposeStudy})
	if c.Len() != len(defaultLocations) {
		t.Errorf("Add() of existing name grew catalog to %d", c.Len())
	}
	if got, _ := c.Lookup("Frontier"); !got.Serves(models.PurposeStudy) {
		t.Error("Add() should update an existing entry")
	}

	for _, l := range MeetLocations() {
		if !l.Serves(models.PurposeMeet) {
			t.Errorf("MeetLocations() contains %s which does not serve meet", l.Name)
		}
	}
}

func TestRecommendMatchesNamesIgnoringCase(t *testing.T) {
	c := DefaultCatalog()
	c.Add(models.Location{Name: "nus medical library", Purposes: models.PurposeMeet})

	if got, _ := c.Lookup("NUS MEDICAL LIBRARY"); got.Name != "NUS Medical Library" {
		t.Errorf("case-variant update renamed the entry to %q", got.Name)
	}

	r := NewRecommender()
	r.Initialise(c.ForPurpose(models.PurposeMeet))
	got := names(r.Recommend([]models.Location{{Name: "NUS Medical Library"}, {Name: " frontier "}}))
	want := []string{"NUS Medical Library", "Frontier"}
	if !slices.Equal(got, want) {
		t.Errorf("Recommend() = %v, want %v", got, want)
	}
}
