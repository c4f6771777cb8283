package timeperiod

import (
	"fmt"
	"slices"
)

// Bounds limits free-time computation to a daily window on a set of days.
type Bounds struct {
	Start Clock
	End   Clock
	Days  []Day
}

// Validate checks the window is a well-formed period on valid days.
func (b Bounds) Validate() error {
	if !b.Start.Valid() || !b.End.Valid() || b.Start > b.End {
		return fmt.Errorf("%w: day window %s-%s", ErrWrongTime, b.Start, b.End)
	}
	for _, d := range b.Days {
		if !d.Valid() {
			return fmt.Errorf("%w: %d", ErrInvalidDay, int(d))
		}
	}
	return nil
}

// Sort orders periods in place by day, start, then end.
func Sort(periods []Period) {
	slices.SortFunc(periods, func(a, b Period) int {
		switch {
		case Less(a, b):
			return -1
		case Less(b, a):
			return 1
		default:
			return 0
		}
	})
}

// Consolidate returns the periods sorted with overlapping and consecutive
// entries merged, so the result has no overlaps and is strictly ordered.
// The input slice is not modified.
func Consolidate(periods []Period) ([]Period, error) {
	if len(periods) == 0 {
		return nil, nil
	}
	sorted := slices.Clone(periods)
	Sort(sorted)

	out := []Period{sorted[0]}
	for _, p := range sorted[1:] {
		last := &out[len(out)-1]
		if last.IsSameDay(p) && (last.Overlaps(p) || last.IsConsecutiveWith(p) || last.Contains(p)) {
			merged, err := last.Merge(p)
			if err != nil {
				return nil, err
			}
			*last = merged
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Complement returns the free periods inside bounds not covered by busy.
// Busy time outside the daily window is ignored.
func Complement(busy []Period, bounds Bounds) ([]Period, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	merged, err := Consolidate(busy)
	if err != nil {
		return nil, err
	}

	byDay := make(map[Day][]Period)
	for _, p := range merged {
		byDay[p.day] = append(byDay[p.day], p)
	}

	days := slices.Clone(bounds.Days)
	slices.Sort(days)
	days = slices.Compact(days)

	var free []Period
	for _, day := range days {
		current := bounds.Start
		for _, b := range byDay[day] {
			if b.end <= current {
				continue
			}
			if b.start >= bounds.End {
				break
			}
			if current < b.start {
				free = append(free, Period{kind: KindFree, start: current, end: b.start, day: day})
			}
			current = b.end
		}
		if current < bounds.End {
			free = append(free, Period{kind: KindFree, start: current, end: bounds.End, day: day})
		}
	}
	return free, nil
}

// IntersectAll intersects two consolidated, sorted period lists and returns
// the non-empty shared stretches as free periods, in order.
func IntersectAll(a, b []Period) []Period {
	var out []Period
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		x, y := a[i], b[j]
		if x.day != y.day {
			if x.day < y.day {
				i++
			} else {
				j++
			}
			continue
		}
		if start, end := max(x.start, y.start), min(x.end, y.end); start < end {
			out = append(out, Period{kind: KindFree, start: start, end: end, day: x.day})
		}
		if x.end < y.end {
			i++
		} else {
			j++
		}
	}
	return out
}
