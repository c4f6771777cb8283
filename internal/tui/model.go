package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/rendezvous/internal/models"
	"github.com/julianstephens/rendezvous/internal/storage"
	"github.com/julianstephens/rendezvous/internal/tui/components/meetups"
	"github.com/julianstephens/rendezvous/internal/tui/components/people"
	"github.com/julianstephens/rendezvous/internal/tui/components/recommendations"
)

type SessionState int

const (
	StatePeople SessionState = iota
	StateRecommendations
	StateMeetUps
	stateCount
)

var tabTitles = []string{"People", "Recommendations", "MeetUps"}

// chrome is the vertical space taken by the tab bar, help line and margins.
const chrome = 6

// dataMsg carries a fresh snapshot of the store.
type dataMsg struct {
	people  []models.Person
	recs    []models.Recommendation
	meetups []models.MeetUp
}

type errMsg struct{ err error }

type Model struct {
	store    storage.Provider
	state    SessionState
	keys     KeyMap
	help     help.Model
	people   people.Model
	recs     recommendations.Model
	meetups  meetups.Model
	err      error
	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider) Model {
	return Model{
		store:   store,
		state:   StatePeople,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		people:  people.New(nil, 0, 0),
		recs:    recommendations.New(nil, 0, 0),
		meetups: meetups.New(nil, 0, 0),
	}
}

func (m Model) Init() tea.Cmd {
	return m.load
}

func (m Model) load() tea.Msg {
	ppl, err := m.store.GetAllPeople()
	if err != nil {
		return errMsg{err}
	}
	recs, err := m.store.GetRecommendations()
	if err != nil {
		return errMsg{err}
	}
	mus, err := m.store.GetMeetUps()
	if err != nil {
		return errMsg{err}
	}
	return dataMsg{people: ppl, recs: recs, meetups: mus}
}

func (m Model) deleteMeetUp(idx models.ContactIndex) tea.Cmd {
	return func() tea.Msg {
		if err := m.store.DeleteMeetUp(idx); err != nil {
			return errMsg{err}
		}
		return m.load()
	}
}
