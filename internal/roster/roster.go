// Package roster holds people loaded from storage for one command run.
package roster

import (
	"cmp"
	"slices"

	"github.com/julianstephens/rendezvous/internal/models"
)

// Roster is a read-only directory of people keyed by contact index.
type Roster struct {
	byIndex map[models.ContactIndex]models.Person
}

// New builds a roster. Later entries with a repeated index replace earlier ones.
func New(people []models.Person) *Roster {
	r := &Roster{byIndex: make(map[models.ContactIndex]models.Person, len(people))}
	for _, p := range people {
		r.byIndex[p.Index] = p
	}
	return r
}

// Resolve implements timing.Directory.
func (r *Roster) Resolve(idx models.ContactIndex) (models.Person, bool) {
	p, ok := r.byIndex[idx]
	return p, ok
}

// People returns everyone ordered by index.
func (r *Roster) People() []models.Person {
	out := make([]models.Person, 0, len(r.byIndex))
	for _, p := range r.byIndex {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b models.Person) int { return cmp.Compare(a.Index, b.Index) })
	return out
}

func (r *Roster) Len() int { return len(r.byIndex) }
