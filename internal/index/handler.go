// Package index issues contact indices. A single Handler owned by the
// application is the only place new indices come from; everything else
// receives values that already carry one.
package index

import (
	"sync"

	"github.com/julianstephens/rendezvous/internal/models"
)

// Sequence names an independent index space.
type Sequence int

const (
	Persons Sequence = iota
	Recommendations
	MeetUps
)

// Handler hands out the lowest unused positive index in each sequence.
type Handler struct {
	mu   sync.Mutex
	used map[Sequence]map[models.ContactIndex]bool
}

// NewHandler returns a handler with no indices in use.
func NewHandler() *Handler {
	return &Handler{used: make(map[Sequence]map[models.ContactIndex]bool)}
}

// Seed marks existing indices as used so they are never issued again.
func (h *Handler) Seed(seq Sequence, existing ...models.ContactIndex) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set := h.sequence(seq)
	for _, idx := range existing {
		set[idx] = true
	}
}

// Assign issues the next index in seq.
func (h *Handler) Assign(seq Sequence) models.ContactIndex {
	h.mu.Lock()
	defer h.mu.Unlock()
	set := h.sequence(seq)
	idx := models.ContactIndex(1)
	for set[idx] {
		idx++
	}
	set[idx] = true
	return idx
}

// Release frees an index, e.g. after the recommendation list is replaced.
func (h *Handler) Release(seq Sequence, idx models.ContactIndex) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sequence(seq), idx)
}

// Reset frees every index in seq.
func (h *Handler) Reset(seq Sequence) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.used, seq)
}

// RegisterPerson returns p carrying a freshly issued person index.
func (h *Handler) RegisterPerson(p models.Person) models.Person {
	p.Index = h.Assign(Persons)
	return p
}

// IndexRecommendations replaces the recommendation sequence and numbers recs from 1.
func (h *Handler) IndexRecommendations(recs []models.Recommendation) []models.Recommendation {
	h.Reset(Recommendations)
	out := make([]models.Recommendation, len(recs))
	for i, r := range recs {
		out[i] = r.WithIndex(h.Assign(Recommendations))
	}
	return out
}

func (h *Handler) sequence(seq Sequence) map[models.ContactIndex]bool {
	set, ok := h.used[seq]
	if !ok {
		set = make(map[models.ContactIndex]bool)
		h.used[seq] = set
	}
	return set
}
