// Package timing finds the stretches of time during which every participant
// is free.
package timing

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/julianstephens/rendezvous/internal/logger"
	"github.com/julianstephens/rendezvous/internal/models"
	"github.com/julianstephens/rendezvous/internal/timeperiod"
)

// Directory resolves contact indices to people with their schedules.
type Directory interface {
	Resolve(models.ContactIndex) (models.Person, bool)
}

// Recommender computes mutually free periods for a set of participants.
// Initialise must be called before LongestTimings.
type Recommender struct {
	directory    Directory
	bounds       timeperiod.Bounds
	participants []models.Person
	unresolved   []models.ContactIndex
	free         [][]timeperiod.Period
}

// NewRecommender returns a recommender that looks for free time inside bounds.
func NewRecommender(directory Directory, bounds timeperiod.Bounds) *Recommender {
	return &Recommender{directory: directory, bounds: bounds}
}

// Initialise resolves the participants and caches their free periods.
// Indices that do not resolve are dropped and reported by Unresolved.
func (r *Recommender) Initialise(indices []models.ContactIndex) error {
	if err := r.bounds.Validate(); err != nil {
		return err
	}
	r.participants = nil
	r.unresolved = nil
	r.free = nil

	seen := make(map[models.ContactIndex]bool, len(indices))
	for _, idx := range indices {
		if seen[idx] {
			continue
		}
		seen[idx] = true
		p, ok := r.directory.Resolve(idx)
		if !ok {
			r.unresolved = append(r.unresolved, idx)
			continue
		}
		r.participants = append(r.participants, p)
	}
	slices.SortFunc(r.participants, func(a, b models.Person) int { return cmp.Compare(a.Index, b.Index) })
	slices.Sort(r.unresolved)

	if len(r.unresolved) > 0 {
		logger.Warn("Dropping unknown participants", "indices", r.unresolved)
	}

	for _, p := range r.participants {
		free, err := timeperiod.Complement(p.Busy, r.bounds)
		if err != nil {
			return fmt.Errorf("failed to compute free time for %s: %w", p.Index, err)
		}
		r.free = append(r.free, free)
	}
	return nil
}

// Participants returns the resolved participants ordered by index.
func (r *Recommender) Participants() []models.Person {
	return slices.Clone(r.participants)
}

// Unresolved returns the indices dropped by the last Initialise.
func (r *Recommender) Unresolved() []models.ContactIndex {
	return slices.Clone(r.unresolved)
}

// FreeTimes returns the periods during which every participant is free, in
// day then start order.
func (r *Recommender) FreeTimes() []timeperiod.Period {
	if len(r.free) == 0 {
		return nil
	}
	common := r.free[0]
	for _, f := range r.free[1:] {
		common = timeperiod.IntersectAll(common, f)
		if len(common) == 0 {
			return nil
		}
	}
	// Inputs are already kind-consistent free periods, so consolidation cannot fail.
	merged, err := timeperiod.Consolidate(common)
	if err != nil {
		logger.Error("Failed to consolidate shared free time", "error", err)
		return common
	}
	return merged
}

// LongestTimings returns up to limit mutually free periods, longest first.
// Ties are broken by earlier start, then earlier day.
func (r *Recommender) LongestTimings(limit int) []timeperiod.Period {
	timings := r.FreeTimes()
	slices.SortFunc(timings, compareByLength)
	if limit >= 0 && len(timings) > limit {
		timings = timings[:limit]
	}
	logger.Debug("Timing candidates", "participants", len(r.participants), "count", len(timings))
	return timings
}

func compareByLength(a, b timeperiod.Period) int {
	return cmp.Or(
		cmp.Compare(b.Minutes(), a.Minutes()),
		cmp.Compare(a.Start(), b.Start()),
		cmp.Compare(a.Day(), b.Day()),
	)
}
