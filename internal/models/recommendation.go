package models

import (
	"cmp"
	"fmt"

	"github.com/julianstephens/rendezvous/internal/timeperiod"
)

// Recommendation pairs a location with an hour block. WindowRank is the
// position of the source free window among the longest timings (0 is the
// longest) and LocationRank the position of the location in the destination
// set; both feed the ordering in Compare.
type Recommendation struct {
	Index        ContactIndex         `json:"index,omitempty"`
	Location     Location             `json:"location"`
	Block        timeperiod.HourBlock `json:"block"`
	WindowRank   int                  `json:"window_rank"`
	LocationRank int                  `json:"location_rank"`
}

// TimePeriod returns the recommended hour as a period.
func (r Recommendation) TimePeriod() timeperiod.Period {
	return r.Block.Period()
}

// WithIndex returns a copy carrying the given display index.
func (r Recommendation) WithIndex(idx ContactIndex) Recommendation {
	r.Index = idx
	return r
}

func (r Recommendation) String() string {
	return fmt.Sprintf("%s @ %s", r.Location.Name, r.Block)
}

// CompareRecommendations orders recommendations by window rank, day, hour,
// location rank and finally location name.
func CompareRecommendations(a, b Recommendation) int {
	return cmp.Or(
		cmp.Compare(a.WindowRank, b.WindowRank),
		cmp.Compare(a.Block.Day, b.Block.Day),
		cmp.Compare(a.Block.Hour, b.Block.Hour),
		cmp.Compare(a.LocationRank, b.LocationRank),
		cmp.Compare(a.Location.Name, b.Location.Name),
	)
}
