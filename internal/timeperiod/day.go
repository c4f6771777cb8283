package timeperiod

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Day is a weekday anchor for a period. Ordinals run Monday=0 through Sunday=6.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// SchoolDays are the days considered when no explicit day list is configured.
var SchoolDays = []Day{Monday, Tuesday, Wednesday, Thursday, Friday}

// AllDays lists every day of the week in ordinal order.
var AllDays = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func (d Day) Valid() bool {
	return d >= Monday && d <= Sunday
}

func (d Day) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return dayNames[d]
}

// Short returns the three letter abbreviation, e.g. "Mon".
func (d Day) Short() string {
	return d.String()[:3]
}

// FromWeekday converts a time.Weekday into a Day.
func FromWeekday(wd time.Weekday) Day {
	if wd == time.Sunday {
		return Sunday
	}
	return Day(wd - 1)
}

// ParseDay parses a day name ("mon", "Monday") or an ordinal ("0" for Monday).
func ParseDay(s string) (Day, error) {
	part := strings.TrimSpace(strings.ToLower(s))
	for i, name := range dayNames {
		lower := strings.ToLower(name)
		if part == lower || part == lower[:3] {
			return Day(i), nil
		}
	}
	num, err := strconv.Atoi(part)
	if err == nil && Day(num).Valid() {
		return Day(num), nil
	}
	return 0, fmt.Errorf("invalid day: %s", s)
}

// ParseDays parses a comma-separated list of days.
func ParseDays(s string) ([]Day, error) {
	var days []Day
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		d, err := ParseDay(part)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

// FormatDays joins days into the short comma-separated form accepted by ParseDays.
func FormatDays(days []Day) string {
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, d.Short())
	}
	return strings.Join(parts, ",")
}
