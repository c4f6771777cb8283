package location

import (
	"cmp"
	"slices"

	"github.com/julianstephens/rendezvous/internal/models"
)

// Candidate is a destination suggested for one hour block. Rank is the
// destination's position in the list passed to Initialise.
type Candidate struct {
	Location models.Location
	Rank     int
}

// Recommender filters observed locations down to the destinations allowed for
// the current call.
type Recommender struct {
	destinations []models.Location
	rank         map[string]int
}

func NewRecommender() *Recommender {
	return &Recommender{rank: make(map[string]int)}
}

// Initialise fixes the destination universe. Earlier destinations have higher
// priority; repeated names keep their first position.
func (r *Recommender) Initialise(destinations []models.Location) {
	r.destinations = r.destinations[:0]
	r.rank = make(map[string]int, len(destinations))
	for _, d := range destinations {
		if _, dup := r.rank[d.Key()]; dup {
			continue
		}
		r.rank[d.Key()] = len(r.destinations)
		r.destinations = append(r.destinations, d)
	}
}

// Destinations returns the current universe in priority order.
func (r *Recommender) Destinations() []models.Location {
	return slices.Clone(r.destinations)
}

// Recommend keeps the observed locations that are destinations, ordered by
// destination priority and then name. Observed locations are treated as a set
// and come back under the destination's spelling.
func (r *Recommender) Recommend(observed []models.Location) []Candidate {
	seen := make(map[string]bool, len(observed))
	var out []Candidate
	for _, loc := range observed {
		key := loc.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		rank, ok := r.rank[key]
		if !ok {
			continue
		}
		out = append(out, Candidate{Location: r.destinations[rank], Rank: rank})
	}
	slices.SortFunc(out, func(a, b Candidate) int {
		return cmp.Or(cmp.Compare(a.Rank, b.Rank), cmp.Compare(a.Location.Name, b.Location.Name))
	})
	return out
}
