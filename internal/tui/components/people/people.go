package people

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/rendezvous/internal/models"
)

type Item struct {
	Person models.Person
}

func (i Item) Title() string {
	return fmt.Sprintf("%s %s", i.Person.Index, i.Person.Name)
}

func (i Item) Description() string {
	desc := fmt.Sprintf("%d busy, %d visits", len(i.Person.Busy), len(i.Person.Visits))
	if i.Person.Email != "" {
		desc += " · " + i.Person.Email
	}
	return desc
}

func (i Item) FilterValue() string { return i.Person.Name }

type Model struct {
	list list.Model
}

func New(people []models.Person, width, height int) Model {
	l := list.New(items(people), list.NewDefaultDelegate(), width, height)
	l.Title = "People"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	return Model{list: l}
}

func items(people []models.Person) []list.Item {
	out := make([]list.Item, len(people))
	for i, p := range people {
		out[i] = Item{Person: p}
	}
	return out
}

func (m *Model) SetPeople(people []models.Person) {
	m.list.SetItems(items(people))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Selected returns the highlighted person, if any.
func (m Model) Selected() (models.Person, bool) {
	item, ok := m.list.SelectedItem().(Item)
	return item.Person, ok
}

func (m Model) Len() int { return len(m.list.Items()) }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "No people yet. Add one with 'rendezvous person add'."
	}
	return m.list.View()
}
