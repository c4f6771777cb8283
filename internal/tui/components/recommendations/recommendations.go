package recommendations

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/rendezvous/internal/models"
)

var (
	indexStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	locationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Model renders the stored recommendations in a scrollable viewport.
type Model struct {
	viewport viewport.Model
	recs     []models.Recommendation
}

func New(recs []models.Recommendation, width, height int) Model {
	m := Model{viewport: viewport.New(width, height)}
	m.SetRecommendations(recs)
	return m
}

func (m *Model) SetRecommendations(recs []models.Recommendation) {
	m.recs = recs
	m.viewport.SetContent(render(recs))
	m.viewport.GotoTop()
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
}

func (m Model) Len() int { return len(m.recs) }

func render(recs []models.Recommendation) string {
	if len(recs) == 0 {
		return "No recommendations. Run 'rendezvous meet <index>...' to generate some."
	}
	var b strings.Builder
	for _, r := range recs {
		fmt.Fprintf(&b, "%s  %s  %s\n",
			indexStyle.Render(fmt.Sprintf("%-4s", r.Index)),
			r.Block,
			locationStyle.Render(r.Location.Name))
		if r.Location.Region != "" {
			fmt.Fprintf(&b, "      %s\n", mutedStyle.Render(r.Location.Region))
		}
	}
	return b.String()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}
