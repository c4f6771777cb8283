package models

import (
	"fmt"
	"time"

	"github.com/julianstephens/rendezvous/internal/timeperiod"
)

// ContactIndex identifies a person, recommendation or meetup for the user.
// Indices are issued by index.Handler and are never reassigned.
type ContactIndex int

func (c ContactIndex) String() string {
	return fmt.Sprintf("#%d", int(c))
}

// Visit records that a person is expected at a location during a period.
type Visit struct {
	ID       string            `json:"id"`
	Period   timeperiod.Period `json:"-"`
	Location Location          `json:"location"`
}

// Person is a participant together with their weekly schedule.
type Person struct {
	Index  ContactIndex        `json:"index"`
	Name   string              `json:"name"`
	Email  string              `json:"email,omitempty"`
	Phone  string              `json:"phone,omitempty"`
	Busy   []timeperiod.Period `json:"-"`
	Visits []Visit             `json:"-"`

	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Validate checks the fields a person needs before being stored.
func (p Person) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("person name cannot be empty")
	}
	if p.Index <= 0 {
		return fmt.Errorf("person %q has no contact index", p.Name)
	}
	for _, b := range p.Busy {
		if b.Kind() != timeperiod.KindBusy {
			return fmt.Errorf("person %q: schedule entry %s is not a busy period", p.Name, b)
		}
	}
	return nil
}
