package timeperiod

import "fmt"

// HourBlock is a one-hour period starting on the hour. It is the unit used for
// location lookups and recommendations.
type HourBlock struct {
	Hour int
	Day  Day
}

// NewHourBlock validates hour (0..23) and day.
func NewHourBlock(hour int, day Day) (HourBlock, error) {
	if hour < 0 || hour > 23 {
		return HourBlock{}, fmt.Errorf("%w: hour %d", ErrWrongTime, hour)
	}
	if !day.Valid() {
		return HourBlock{}, fmt.Errorf("%w: %d", ErrInvalidDay, int(day))
	}
	return HourBlock{Hour: hour, Day: day}, nil
}

func (b HourBlock) Start() Clock { return At(b.Hour, 0) }
func (b HourBlock) End() Clock   { return At(b.Hour+1, 0) }

// Period returns the block as an hour-kind Period.
func (b HourBlock) Period() Period {
	return Period{kind: KindHour, start: b.Start(), end: b.End(), day: b.Day}
}

// Less orders blocks by day, then hour.
func (b HourBlock) Less(other HourBlock) bool {
	if b.Day != other.Day {
		return b.Day < other.Day
	}
	return b.Hour < other.Hour
}

func (b HourBlock) String() string {
	return fmt.Sprintf("%s %s-%s", b.Day, b.Start(), b.End())
}
