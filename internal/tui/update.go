package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/rendezvous/internal/tui/components/meetups"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		w, h := msg.Width-4, max(msg.Height-chrome, 1)
		m.people.SetSize(w, h)
		m.recs.SetSize(w, h)
		m.meetups.SetSize(w, h)
		return m, nil

	case dataMsg:
		m.err = nil
		m.people.SetPeople(msg.people)
		m.recs.SetRecommendations(msg.recs)
		m.meetups.SetMeetUps(msg.meetups)
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil

	case meetups.DeleteMeetUpMsg:
		return m, m.deleteMeetUp(msg.Index)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % stateCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state + stateCount - 1) % stateCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			return m, m.load
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StatePeople:
		m.people, cmd = m.people.Update(msg)
	case StateRecommendations:
		m.recs, cmd = m.recs.Update(msg)
	case StateMeetUps:
		m.meetups, cmd = m.meetups.Update(msg)
	}
	return m, cmd
}
