package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/rendezvous/internal/models"
	"github.com/julianstephens/rendezvous/internal/storage/sqlite"
	tp "github.com/julianstephens/rendezvous/internal/timeperiod"
	"github.com/julianstephens/rendezvous/internal/tui/components/meetups"
)

func setupModel(t *testing.T) (Model, *sqlite.Store) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.AddPerson(models.Person{Index: 1, Name: "Alice"}); err != nil {
		t.Fatal(err)
	}
	block, err := tp.NewHourBlock(12, tp.Monday)
	if err != nil {
		t.Fatal(err)
	}
	meetup := models.MeetUp{
		Index:        1,
		Location:     models.Location{Name: "Frontier"},
		Block:        block,
		Participants: []models.ContactIndex{1},
	}
	if err := store.AddMeetUp(meetup); err != nil {
		t.Fatal(err)
	}
	return NewModel(store), store
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelLoadsData(t *testing.T) {
	m, _ := setupModel(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = send(t, m, m.Init()())

	if m.err != nil {
		t.Fatalf("load error: %v", m.err)
	}
	if m.people.Len() != 1 || m.meetups.Len() != 1 || m.recs.Len() != 0 {
		t.Errorf("counts = %d/%d/%d, want 1/0/1", m.people.Len(), m.recs.Len(), m.meetups.Len())
	}
	if view := m.View(); !strings.Contains(view, "People (1)") {
		t.Errorf("tab bar missing people count:\n%s", view)
	}
}

func TestModelTabCycling(t *testing.T) {
	m, _ := setupModel(t)
	tab := tea.KeyMsg{Type: tea.KeyTab}
	shiftTab := tea.KeyMsg{Type: tea.KeyShiftTab}

	m, _ = send(t, m, tab)
	if m.state != StateRecommendations {
		t.Errorf("after tab state = %d, want %d", m.state, StateRecommendations)
	}
	m, _ = send(t, m, tab)
	m, _ = send(t, m, tab)
	if m.state != StatePeople {
		t.Errorf("tab should wrap to people, got %d", m.state)
	}
	m, _ = send(t, m, shiftTab)
	if m.state != StateMeetUps {
		t.Errorf("shift+tab should wrap to meetups, got %d", m.state)
	}
}

func TestModelDeletesMeetUp(t *testing.T) {
	m, store := setupModel(t)
	m, _ = send(t, m, m.Init()())

	_, cmd := send(t, m, meetups.DeleteMeetUpMsg{Index: 1})
	if cmd == nil {
		t.Fatal("delete should return a command")
	}
	m, _ = send(t, m, cmd())

	remaining, err := store.GetMeetUps()
	if err != nil {
		t.Fatal(err)
	}
	if len(remaining) != 0 || m.meetups.Len() != 0 {
		t.Errorf("meetup not removed: store=%d view=%d", len(remaining), m.meetups.Len())
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := setupModel(t)
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !m.quitting || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
