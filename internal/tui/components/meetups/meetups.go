package meetups

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/rendezvous/internal/models"
)

type DeleteMeetUpMsg struct {
	Index models.ContactIndex
}

type Item struct {
	MeetUp models.MeetUp
}

func (i Item) Title() string {
	return fmt.Sprintf("%s %s at %s", i.MeetUp.Index, i.MeetUp.Block, i.MeetUp.Location.Name)
}

func (i Item) Description() string {
	parts := make([]string, len(i.MeetUp.Participants))
	for j, p := range i.MeetUp.Participants {
		parts[j] = p.String()
	}
	return "with " + strings.Join(parts, ", ")
}

func (i Item) FilterValue() string { return i.MeetUp.Location.Name }

type KeyMap struct {
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete meetup"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(meetups []models.MeetUp, width, height int) Model {
	l := list.New(items(meetups), list.NewDefaultDelegate(), width, height)
	l.Title = "MeetUps"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{keys.Delete} }
	return Model{list: l, keys: keys}
}

func items(meetups []models.MeetUp) []list.Item {
	out := make([]list.Item, len(meetups))
	for i, m := range meetups {
		out[i] = Item{MeetUp: m}
	}
	return out
}

func (m *Model) SetMeetUps(meetups []models.MeetUp) {
	m.list.SetItems(items(meetups))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Len() int { return len(m.list.Items()) }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Delete) {
		if item, ok := m.list.SelectedItem().(Item); ok {
			idx := item.MeetUp.Index
			return m, func() tea.Msg { return DeleteMeetUpMsg{Index: idx} }
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "No meetups saved. Save one with 'rendezvous meetup save <recommendation>'."
	}
	return m.list.View()
}
