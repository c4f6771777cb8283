package storage

import (
	"github.com/julianstephens/rendezvous/internal/models"
	"github.com/julianstephens/rendezvous/internal/timeperiod"
)

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// People. Busy periods and visits are loaded with the person.
	AddPerson(models.Person) error
	GetPerson(idx models.ContactIndex) (models.Person, error)
	GetAllPeople() ([]models.Person, error)
	// GetAllPeopleIncludingDeleted is used to seed the index handler so a
	// deleted person's index is never handed out again.
	GetAllPeopleIncludingDeleted() ([]models.Person, error)
	UpdatePerson(models.Person) error
	DeletePerson(idx models.ContactIndex) error
	RestorePerson(idx models.ContactIndex) error

	// Schedules
	AddBusy(idx models.ContactIndex, period timeperiod.Period) error
	RemoveBusy(idx models.ContactIndex, period timeperiod.Period) error
	AddVisit(idx models.ContactIndex, visit models.Visit) error
	DeleteVisit(id string) error

	// Location catalog, in priority order
	GetLocations() ([]models.Location, error)
	SaveLocation(models.Location) error

	// Recommendations and participants from the most recent run
	ReplaceRecommendations([]models.Recommendation) error
	GetRecommendations() ([]models.Recommendation, error)
	SaveParticipants([]models.ContactIndex) error
	GetParticipants() ([]models.ContactIndex, error)

	// Meetups
	AddMeetUp(models.MeetUp) error
	GetMeetUps() ([]models.MeetUp, error)
	DeleteMeetUp(idx models.ContactIndex) error

	// Utils
	GetConfigPath() string
}
