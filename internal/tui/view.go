package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StatePeople:
		content = m.people.View()
	case StateRecommendations:
		content = m.recs.View()
	case StateMeetUps:
		content = m.meetups.View()
	}

	var banner string
	if m.err != nil {
		banner = styles.errBanner.Render(fmt.Sprintf("Error: %v", m.err))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		banner,
		styles.body.Render(content),
		styles.footer.Render(m.help.View(m.keys)),
	)
}

func (m Model) viewTabs() string {
	counts := []int{m.people.Len(), m.recs.Len(), m.meetups.Len()}
	tabs := make([]string, 0, 2*len(tabTitles))
	for i, title := range tabTitles {
		style := styles.tab
		if m.state == SessionState(i) {
			style = styles.activeTab
		}
		if i > 0 {
			tabs = append(tabs, styles.tabGap.Render(""))
		}
		tabs = append(tabs, style.Render(fmt.Sprintf("%s (%d)", title, counts[i])))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
