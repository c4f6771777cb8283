// Package location answers where participants are expected to be and which
// destinations suit a meetup at those places.
package location

import (
	"fmt"
	"slices"
	"strings"

	"github.com/julianstephens/rendezvous/internal/models"
	"github.com/julianstephens/rendezvous/internal/timeperiod"
)

// Tracker maps a participant's hour blocks to the location they are expected at.
// It is built once from the participant's visits and never changes afterwards.
type Tracker struct {
	participant models.ContactIndex
	byBlock     map[timeperiod.HourBlock]models.Location
}

// NewTracker builds a tracker from p's visits. A block overlapped by several
// visits belongs to the one covering the most minutes of it; ties go to the
// visit recorded first.
func NewTracker(p models.Person) *Tracker {
	t := &Tracker{
		participant: p.Index,
		byBlock:     make(map[timeperiod.HourBlock]models.Location),
	}
	best := make(map[timeperiod.HourBlock]int)

	for _, v := range p.Visits {
		first := v.Period.Start().Hour()
		last := (int(v.Period.End()) + 59) / 60
		for hour := first; hour < last && hour < 24; hour++ {
			block := timeperiod.HourBlock{Hour: hour, Day: v.Period.Day()}
			shared, ok := v.Period.Intersect(block.Period())
			if !ok {
				continue
			}
			if shared.Minutes() > best[block] {
				best[block] = shared.Minutes()
				t.byBlock[block] = v.Location
			}
		}
	}
	return t
}

// Participant returns the index of the person this tracker belongs to.
func (t *Tracker) Participant() models.ContactIndex {
	return t.participant
}

// Location returns where the participant is during block, if known.
func (t *Tracker) Location(block timeperiod.HourBlock) (models.Location, bool) {
	loc, ok := t.byBlock[block]
	return loc, ok
}

// Blocks returns the tracked blocks in ascending order.
func (t *Tracker) Blocks() []timeperiod.HourBlock {
	blocks := make([]timeperiod.HourBlock, 0, len(t.byBlock))
	for b := range t.byBlock {
		blocks = append(blocks, b)
	}
	slices.SortFunc(blocks, func(a, b timeperiod.HourBlock) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
	return blocks
}

func (t *Tracker) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tracker %s:", t.participant)
	for _, block := range t.Blocks() {
		fmt.Fprintf(&b, " [%s %s]", block, t.byBlock[block].Name)
	}
	return b.String()
}
