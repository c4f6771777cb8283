package importer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"github.com/julianstephens/rendezvous/internal/location"
	"github.com/julianstephens/rendezvous/internal/logger"
	"github.com/julianstephens/rendezvous/internal/models"
	"github.com/julianstephens/rendezvous/internal/timeperiod"
)

// CalendarOptions controls how calendar events become weekly periods.
type CalendarOptions struct {
	// Location is the zone event times are converted to before taking the
	// weekday and wall clock. Nil means time.Local.
	Location *time.Location
	// Catalog resolves LOCATION values. Names it does not know are kept bare.
	Catalog *location.Catalog
}

// Schedule is the weekly view of a calendar.
type Schedule struct {
	Busy    []timeperiod.Period
	Visits  []models.Visit
	Skipped int
}

func LoadCalendar(path string, opts CalendarOptions) (Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Schedule{}, fmt.Errorf("failed to read calendar: %w", err)
	}
	return ParseCalendar(bytes.NewReader(data), opts)
}

// ParseCalendar folds the VEVENTs of an iCalendar stream onto a single week.
// Opaque events become busy periods. Transparent events with a LOCATION
// become visits. Recurring events repeat on every weekday their rule hits in
// its first week. All-day events and events without usable times are
// skipped and counted.
func ParseCalendar(r io.Reader, opts CalendarOptions) (Schedule, error) {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return Schedule{}, fmt.Errorf("failed to parse calendar: %w", err)
	}

	var sched Schedule
	for _, ev := range cal.Events() {
		if err := sched.add(ev, opts); err != nil {
			logger.Debug("Skipping calendar event", "uid", propValue(ev, ical.ComponentPropertyUniqueId), "reason", err)
			sched.Skipped++
		}
	}

	busy, err := timeperiod.Consolidate(sched.Busy)
	if err != nil {
		return Schedule{}, err
	}
	sched.Busy = busy
	return sched, nil
}

var errAllDay = errors.New("all-day event")

func (s *Schedule) add(ev *ical.VEvent, opts CalendarOptions) error {
	if dt := ev.GetProperty(ical.ComponentPropertyDtStart); dt == nil {
		return errors.New("missing DTSTART")
	} else if !strings.Contains(dt.Value, "T") {
		return errAllDay
	}

	start, err := ev.GetStartAt()
	if err != nil {
		return err
	}
	end, err := ev.GetEndAt()
	if err != nil {
		return err
	}
	start, end = start.In(opts.Location), end.In(opts.Location)
	if !end.After(start) {
		return fmt.Errorf("event ends at %s before it starts at %s", end, start)
	}

	days, err := weekdays(ev, start)
	if err != nil {
		return err
	}

	from := timeperiod.ClockOf(start)
	to := timeperiod.ClockOf(end)
	if end.YearDay() != start.YearDay() || end.Year() != start.Year() {
		to = timeperiod.EndOfDay
	}

	transparent := strings.EqualFold(propValue(ev, "TRANSP"), "TRANSPARENT")
	place := strings.TrimSpace(propValue(ev, ical.ComponentPropertyLocation))
	if transparent && place == "" {
		return errors.New("transparent event without a location")
	}

	for _, day := range days {
		if !transparent {
			period, err := timeperiod.New(timeperiod.KindBusy, from, to, day)
			if err != nil {
				return err
			}
			s.Busy = append(s.Busy, period)
			continue
		}
		period, err := timeperiod.New(timeperiod.KindWindow, from, to, day)
		if err != nil {
			return err
		}
		s.Visits = append(s.Visits, models.Visit{Period: period, Location: resolve(opts.Catalog, place)})
	}
	return nil
}

// weekdays returns the days an event occupies in a typical week.
func weekdays(ev *ical.VEvent, start time.Time) ([]timeperiod.Day, error) {
	raw := propValue(ev, ical.ComponentPropertyRrule)
	if raw == "" {
		return []timeperiod.Day{timeperiod.FromWeekday(start.Weekday())}, nil
	}

	rule, err := rrule.StrToRRule(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid RRULE %q: %w", raw, err)
	}
	rule.DTStart(start)

	var days []timeperiod.Day
	for _, t := range rule.Between(start, start.AddDate(0, 0, 7), false) {
		days = append(days, timeperiod.FromWeekday(t.Weekday()))
	}
	days = append(days, timeperiod.FromWeekday(start.Weekday()))
	slices.Sort(days)
	return slices.Compact(days), nil
}

func resolve(catalog *location.Catalog, name string) models.Location {
	if catalog != nil {
		if loc, ok := catalog.Lookup(name); ok {
			return loc
		}
	}
	return models.Location{Name: name}
}

func propValue(ev *ical.VEvent, prop ical.ComponentProperty) string {
	if p := ev.GetProperty(prop); p != nil {
		return p.Value
	}
	return ""
}
