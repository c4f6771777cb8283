// Package timeperiod implements the interval algebra used by the recommenders:
// day-anchored periods, hour blocks, and the consolidate/complement/intersect
// operations over ordered period lists.
package timeperiod

import (
	"errors"
	"fmt"
)

var (
	// ErrWrongTime is returned when a period would start after it ends or
	// falls outside a single day.
	ErrWrongTime = errors.New("start time cannot be after end time")
	// ErrInvalidDay is returned for a day outside Monday..Sunday.
	ErrInvalidDay = errors.New("invalid day")
	// ErrNotMergeable is returned when merging periods that neither overlap
	// nor touch on the same day.
	ErrNotMergeable = errors.New("periods are not consecutive or overlapping")
	// ErrKindMismatch is returned when merging a busy period with free time.
	ErrKindMismatch = errors.New("cannot merge busy and free periods")
)

// Kind tags the variant of a Period.
type Kind int

const (
	KindFree Kind = iota
	KindBusy
	KindWindow
	KindHour
)

func (k Kind) String() string {
	switch k {
	case KindFree:
		return "free"
	case KindBusy:
		return "busy"
	case KindWindow:
		return "window"
	case KindHour:
		return "hour"
	default:
		return "unknown"
	}
}

// Period is a span of wall-clock time on one day. The zero value is an empty
// free period at Monday 00:00. Periods are comparable and can be used as map keys.
type Period struct {
	kind  Kind
	start Clock
	end   Clock
	day   Day
}

// New constructs a period, failing with ErrWrongTime if start is after end.
func New(kind Kind, start, end Clock, day Day) (Period, error) {
	if !day.Valid() {
		return Period{}, fmt.Errorf("%w: %d", ErrInvalidDay, int(day))
	}
	if !start.Valid() || !end.Valid() {
		return Period{}, fmt.Errorf("%w: %s-%s is outside a day", ErrWrongTime, start, end)
	}
	if start > end {
		return Period{}, fmt.Errorf("%w: %s is after %s", ErrWrongTime, start, end)
	}
	if kind == KindHour && (start.Minute() != 0 || end-start != 60) {
		return Period{}, fmt.Errorf("%w: %s-%s is not a whole hour", ErrWrongTime, start, end)
	}
	return Period{kind: kind, start: start, end: end, day: day}, nil
}

// MustNew is like New but panics on an invalid period.
func MustNew(kind Kind, start, end Clock, day Day) Period {
	p, err := New(kind, start, end, day)
	if err != nil {
		panic(err)
	}
	return p
}

// Parse builds a period from HH:MM strings.
func Parse(kind Kind, start, end string, day Day) (Period, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Period{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Period{}, err
	}
	return New(kind, s, e, day)
}

func (p Period) Kind() Kind   { return p.kind }
func (p Period) Start() Clock { return p.start }
func (p Period) End() Clock   { return p.end }
func (p Period) Day() Day     { return p.day }

// Minutes returns the length of the period in minutes.
func (p Period) Minutes() int {
	return int(p.end - p.start)
}

// IsSameDay reports whether both periods are anchored to the same day.
func (p Period) IsSameDay(other Period) bool {
	return p.day == other.day
}

// IsStraightAfter reports whether p starts exactly where other ends.
func (p Period) IsStraightAfter(other Period) bool {
	return p.start == other.end && p.IsSameDay(other)
}

// IsStraightBefore reports whether p ends exactly where other starts.
func (p Period) IsStraightBefore(other Period) bool {
	return p.end == other.start && p.IsSameDay(other)
}

// IsConsecutiveWith reports whether the periods touch end to start.
func (p Period) IsConsecutiveWith(other Period) bool {
	return p.IsStraightAfter(other) || p.IsStraightBefore(other)
}

// Overlaps reports whether the periods share a non-empty stretch of time.
func (p Period) Overlaps(other Period) bool {
	return p.IsSameDay(other) && p.start < other.end && other.start < p.end
}

// Contains reports whether other lies entirely within p.
func (p Period) Contains(other Period) bool {
	return p.IsSameDay(other) && p.start <= other.start && other.end <= p.end
}

// Intersect returns the shared part of two periods, keeping p's kind.
func (p Period) Intersect(other Period) (Period, bool) {
	if !p.Overlaps(other) {
		return Period{}, false
	}
	return Period{
		kind:  p.kind,
		start: max(p.start, other.start),
		end:   min(p.end, other.end),
		day:   p.day,
	}, true
}

// Merge combines two overlapping or consecutive periods into one covering both.
// Busy periods merge only with busy periods. Two hour blocks merge into a window.
func (p Period) Merge(other Period) (Period, error) {
	kind, err := mergedKind(p.kind, other.kind)
	if err != nil {
		return Period{}, err
	}
	if !p.Overlaps(other) && !p.IsConsecutiveWith(other) && !p.Contains(other) && !other.Contains(p) {
		return Period{}, fmt.Errorf("%w: %s and %s", ErrNotMergeable, p, other)
	}
	return Period{
		kind:  kind,
		start: min(p.start, other.start),
		end:   max(p.end, other.end),
		day:   p.day,
	}, nil
}

func mergedKind(a, b Kind) (Kind, error) {
	if a == KindBusy || b == KindBusy {
		if a != b {
			return 0, ErrKindMismatch
		}
		return KindBusy, nil
	}
	if a == KindFree && b == KindFree {
		return KindFree, nil
	}
	return KindWindow, nil
}

// hourRange returns the first hour and the hour after the last hour covered by p.
// Busy periods cover every hour they touch; all other kinds cover only hours
// lying entirely inside the period.
func (p Period) hourRange() (int, int) {
	if p.kind == KindBusy {
		if p.start == p.end {
			return 0, 0
		}
		return p.start.Hour(), (int(p.end) + 59) / 60
	}
	first := (int(p.start) + 59) / 60
	last := p.end.Hour()
	if last < first {
		return 0, 0
	}
	return first, last
}

// HoursBetween returns the number of hour blocks the period fragments into.
func (p Period) HoursBetween() int {
	first, last := p.hourRange()
	return last - first
}

// FragmentIntoHourBlocks splits the period into ascending hour blocks on the same day.
func (p Period) FragmentIntoHourBlocks() []HourBlock {
	first, last := p.hourRange()
	blocks := make([]HourBlock, 0, last-first)
	for hour := first; hour < last; hour++ {
		blocks = append(blocks, HourBlock{Hour: hour, Day: p.day})
	}
	return blocks
}

func (p Period) String() string {
	return fmt.Sprintf("%s %s-%s", p.day, p.start, p.end)
}

// Less orders periods by day, then start, then end.
func Less(a, b Period) bool {
	if a.day != b.day {
		return a.day < b.day
	}
	if a.start != b.start {
		return a.start < b.start
	}
	return a.end < b.end
}
