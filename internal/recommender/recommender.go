// Package recommender turns participants and a destination set into a capped,
// ranked list of meetup recommendations.
//
// Every call to Recommend runs the whole pipeline from scratch: resolve the
// participants, find their longest shared free periods, split those into hour
// blocks, look up where each participant is during each block, keep the
// locations allowed by the destination set and finally dedupe, sort and cap.
package recommender

import (
	"slices"

	"github.com/julianstephens/rendezvous/internal/constants"
	"github.com/julianstephens/rendezvous/internal/location"
	"github.com/julianstephens/rendezvous/internal/logger"
	"github.com/julianstephens/rendezvous/internal/models"
	"github.com/julianstephens/rendezvous/internal/timeperiod"
	"github.com/julianstephens/rendezvous/internal/timing"
)

// Recommender owns the timing and location sub-recommenders. It is not safe
// for concurrent use; build one per goroutine.
type Recommender struct {
	timing    *timing.Recommender
	locations *location.Recommender

	TimingLimit int
	ResultLimit int
}

func New(directory timing.Directory, bounds timeperiod.Bounds) *Recommender {
	return &Recommender{
		timing:      timing.NewRecommender(directory, bounds),
		locations:   location.NewRecommender(),
		TimingLimit: constants.TimingLimit,
		ResultLimit: constants.RecommendationLimit,
	}
}

// slot is an hour block together with the rank of the free window it came from.
type slot struct {
	block timeperiod.HourBlock
	rank  int
}

// Recommend returns at most ResultLimit recommendations. No two results share
// an hour block or a location. An empty result is not an error.
func (r *Recommender) Recommend(indices []models.ContactIndex, destinations []models.Location) ([]models.Recommendation, error) {
	r.locations.Initialise(destinations)
	if err := r.timing.Initialise(indices); err != nil {
		return nil, err
	}

	participants := r.timing.Participants()
	trackers := make([]*location.Tracker, 0, len(participants))
	for _, p := range participants {
		trackers = append(trackers, location.NewTracker(p))
	}

	slots := fragment(r.timing.LongestTimings(r.TimingLimit))

	assembled := make([]models.Recommendation, 0, len(slots))
	for _, s := range slots {
		for _, c := range r.locations.Recommend(observedAt(trackers, s.block)) {
			assembled = append(assembled, models.Recommendation{
				Location:     c.Location,
				Block:        s.block,
				WindowRank:   s.rank,
				LocationRank: c.Rank,
			})
		}
	}

	filtered := dedupe(assembled)
	slices.SortStableFunc(filtered, models.CompareRecommendations)
	if r.ResultLimit >= 0 && len(filtered) > r.ResultLimit {
		filtered = filtered[:r.ResultLimit]
	}

	logger.Debug("Recommendation pipeline finished",
		"participants", len(participants),
		"blocks", len(slots),
		"assembled", len(assembled),
		"kept", len(filtered))
	return filtered, nil
}

// fragment flattens the timings into hour blocks, keeping timing order and
// ascending hours within each timing.
func fragment(timings []timeperiod.Period) []slot {
	var out []slot
	for rank, t := range timings {
		for _, b := range t.FragmentIntoHourBlocks() {
			out = append(out, slot{block: b, rank: rank})
		}
	}
	return out
}

// observedAt collects the distinct locations the participants are at during b.
func observedAt(trackers []*location.Tracker, b timeperiod.HourBlock) []models.Location {
	var out []models.Location
	seen := make(map[string]bool)
	for _, t := range trackers {
		loc, ok := t.Location(b)
		if !ok || seen[loc.Key()] {
			continue
		}
		seen[loc.Key()] = true
		out = append(out, loc)
	}
	return out
}

// dedupe keeps a recommendation only if neither its block nor its location
// has been used by an earlier one.
func dedupe(recs []models.Recommendation) []models.Recommendation {
	blocks := make(map[timeperiod.HourBlock]bool)
	places := make(map[string]bool)
	out := make([]models.Recommendation, 0, len(recs))
	for _, rec := range recs {
		if blocks[rec.Block] || places[rec.Location.Key()] {
			continue
		}
		blocks[rec.Block] = true
		places[rec.Location.Key()] = true
		out = append(out, rec)
	}
	return out
}
