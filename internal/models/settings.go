package models

import (
	"fmt"
	"slices"

	"github.com/julianstephens/rendezvous/internal/constants"
	"github.com/julianstephens/rendezvous/internal/timeperiod"
)

// Settings holds the daily window used when computing free time.
type Settings struct {
	DayStart string           `json:"day_start"` // HH:MM format
	DayEnd   string           `json:"day_end"`   // HH:MM format
	Days     []timeperiod.Day `json:"days"`
}

// Bounds converts the settings to a validated free-time window.
func (s Settings) Bounds() (timeperiod.Bounds, error) {
	start, err := timeperiod.ParseClock(s.DayStart)
	if err != nil {
		return timeperiod.Bounds{}, fmt.Errorf("invalid day start: %w", err)
	}
	end, err := timeperiod.ParseClock(s.DayEnd)
	if err != nil {
		return timeperiod.Bounds{}, fmt.Errorf("invalid day end: %w", err)
	}
	days := s.Days
	if len(days) == 0 {
		days = timeperiod.SchoolDays
	}
	b := timeperiod.Bounds{Start: start, End: end, Days: days}
	if err := b.Validate(); err != nil {
		return timeperiod.Bounds{}, err
	}
	return b, nil
}

// DefaultSettings returns the settings written by 'rendezvous init'.
func DefaultSettings() Settings {
	return Settings{
		DayStart: constants.DefaultDayStart,
		DayEnd:   constants.DefaultDayEnd,
		Days:     slices.Clone(timeperiod.SchoolDays),
	}
}
