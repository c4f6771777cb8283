package models

import (
	"fmt"
	"strings"
)

// Purpose is a bit set of what a location is suitable for.
type Purpose uint8

const (
	PurposeMeet Purpose = 1 << iota
	PurposeStudy
	PurposeEat
)

var purposeNames = []struct {
	p    Purpose
	name string
}{
	{PurposeMeet, "meet"},
	{PurposeStudy, "study"},
	{PurposeEat, "eat"},
}

// ParsePurpose parses a single purpose name (meet, study, eat).
func ParsePurpose(s string) (Purpose, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	for _, pn := range purposeNames {
		if pn.name == s {
			return pn.p, nil
		}
	}
	return 0, fmt.Errorf("invalid purpose: %s (expected meet, study or eat)", s)
}

// ParsePurposes parses a list of purpose names into a combined set.
func ParsePurposes(names []string) (Purpose, error) {
	var set Purpose
	for _, n := range names {
		p, err := ParsePurpose(n)
		if err != nil {
			return 0, err
		}
		set |= p
	}
	return set, nil
}

// Names returns the purpose names in the set, in canonical order.
func (p Purpose) Names() []string {
	var names []string
	for _, pn := range purposeNames {
		if p&pn.p != 0 {
			names = append(names, pn.name)
		}
	}
	return names
}

func (p Purpose) String() string {
	return strings.Join(p.Names(), ",")
}

// Location is a named place. Two locations are the same place when their
// names match ignoring case and surrounding space; Region and Purposes are
// descriptive.
type Location struct {
	Name     string  `json:"name"`
	Region   string  `json:"region,omitempty"`
	Purposes Purpose `json:"purposes"`
}

// Serves reports whether the location is tagged with every purpose in p.
func (l Location) Serves(p Purpose) bool {
	return l.Purposes&p == p
}

// Key is the identity of the place. Every lookup, rank and dedupe on
// locations goes through it.
func (l Location) Key() string {
	return NameKey(l.Name)
}

// NameKey normalizes a location name to its identity key.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SamePlace reports whether both locations name the same place.
func (l Location) SamePlace(other Location) bool {
	return l.Key() == other.Key()
}

func (l Location) String() string {
	return l.Name
}
