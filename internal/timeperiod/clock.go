package timeperiod

import (
	"fmt"
	"strings"
	"time"
)

// TimeFormat is the wall-clock format used for clock values (HH:MM).
const TimeFormat = "15:04"

// Clock is a wall-clock time expressed in minutes from midnight.
// EndOfDay (24:00) is a valid end time.
type Clock int

const (
	StartOfDay Clock = 0
	EndOfDay   Clock = 24 * 60
)

// At returns the clock value for hour:minute.
func At(hour, minute int) Clock {
	return Clock(hour*60 + minute)
}

// ParseClock parses an HH:MM string. "24:00" is accepted as EndOfDay.
func ParseClock(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	if s == "24:00" {
		return EndOfDay, nil
	}
	t, err := time.Parse(TimeFormat, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q (expected HH:MM): %w", s, err)
	}
	return At(t.Hour(), t.Minute()), nil
}

// ClockOf returns the wall-clock part of t.
func ClockOf(t time.Time) Clock {
	return At(t.Hour(), t.Minute())
}

func (c Clock) Hour() int {
	return int(c) / 60
}

func (c Clock) Minute() int {
	return int(c) % 60
}

func (c Clock) Valid() bool {
	return c >= StartOfDay && c <= EndOfDay
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}
