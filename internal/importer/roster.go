// Package importer reads people, schedules and locations from files: YAML
// rosters and iCalendar feeds.
package importer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/rendezvous/internal/location"
	"github.com/julianstephens/rendezvous/internal/models"
	"github.com/julianstephens/rendezvous/internal/timeperiod"
)

// Roster is the YAML document accepted by `import roster`.
//
//	locations:
//	  - name: Frontier
//	    region: Kent Ridge
//	    purposes: [meet, eat]
//	people:
//	  - name: Alice
//	    email: alice@example.com
//	    busy:
//	      - {day: mon, start: "09:00", end: "12:00"}
//	    visits:
//	      - {day: mon, start: "14:00", end: "15:00", location: Frontier}
type Roster struct {
	Locations []LocationEntry `yaml:"locations"`
	People    []PersonEntry   `yaml:"people"`
}

type LocationEntry struct {
	Name     string   `yaml:"name"`
	Region   string   `yaml:"region,omitempty"`
	Purposes []string `yaml:"purposes"`
}

type PersonEntry struct {
	Name   string       `yaml:"name"`
	Email  string       `yaml:"email,omitempty"`
	Phone  string       `yaml:"phone,omitempty"`
	Busy   []SlotEntry  `yaml:"busy,omitempty"`
	Visits []VisitEntry `yaml:"visits,omitempty"`
}

type SlotEntry struct {
	Day   string `yaml:"day"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

type VisitEntry struct {
	SlotEntry `yaml:",inline"`
	Location  string `yaml:"location"`
}

// LoadRoster reads and decodes a roster file.
func LoadRoster(path string) (Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Roster{}, fmt.Errorf("failed to read roster: %w", err)
	}
	return ParseRoster(bytes.NewReader(data))
}

// ParseRoster decodes a roster, rejecting unknown keys.
func ParseRoster(r io.Reader) (Roster, error) {
	var roster Roster
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&roster); err != nil && !errors.Is(err, io.EOF) {
		return Roster{}, fmt.Errorf("failed to parse roster: %w", err)
	}
	return roster, nil
}

// Catalog layers the roster's locations over base. Entries naming an
// existing location replace its region and purposes in place.
func (r Roster) Catalog(base []models.Location) (*location.Catalog, []models.Location, error) {
	catalog := location.NewCatalog(base)
	var added []models.Location
	for i, e := range r.Locations {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, nil, fmt.Errorf("location %d: name cannot be empty", i+1)
		}
		purposes, err := models.ParsePurposes(e.Purposes)
		if err != nil {
			return nil, nil, fmt.Errorf("location %q: %w", name, err)
		}
		loc := models.Location{Name: name, Region: e.Region, Purposes: purposes}
		catalog.Add(loc)
		added = append(added, loc)
	}
	return catalog, added, nil
}

// People converts the roster entries into people without indices. Visit
// locations are resolved against catalog; unknown names are an error.
func (r Roster) People(catalog *location.Catalog) ([]models.Person, error) {
	people := make([]models.Person, 0, len(r.People))
	for i, e := range r.People {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, fmt.Errorf("person %d: name cannot be empty", i+1)
		}
		p := models.Person{Name: name, Email: e.Email, Phone: e.Phone}

		for _, b := range e.Busy {
			period, err := b.period(timeperiod.KindBusy)
			if err != nil {
				return nil, fmt.Errorf("person %q: busy entry: %w", name, err)
			}
			p.Busy = append(p.Busy, period)
		}
		for _, v := range e.Visits {
			period, err := v.period(timeperiod.KindWindow)
			if err != nil {
				return nil, fmt.Errorf("person %q: visit entry: %w", name, err)
			}
			loc, ok := catalog.Lookup(v.Location)
			if !ok {
				return nil, fmt.Errorf("person %q: unknown location %q", name, v.Location)
			}
			p.Visits = append(p.Visits, models.Visit{Period: period, Location: loc})
		}
		people = append(people, p)
	}
	return people, nil
}

func (s SlotEntry) period(kind timeperiod.Kind) (timeperiod.Period, error) {
	day, err := timeperiod.ParseDay(s.Day)
	if err != nil {
		return timeperiod.Period{}, err
	}
	return timeperiod.Parse(kind, s.Start, s.End, day)
}
