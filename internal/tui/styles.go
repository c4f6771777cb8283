package tui

import "github.com/charmbracelet/lipgloss"

// theme groups the styles the model renders with. Colours adapt to the
// terminal background.
type theme struct {
	tab       lipgloss.Style
	activeTab lipgloss.Style
	tabGap    lipgloss.Style
	body      lipgloss.Style
	errBanner lipgloss.Style
	footer    lipgloss.Style
}

var (
	accent = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	muted  = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	danger = lipgloss.AdaptiveColor{Light: "#D7263D", Dark: "#FF5F87"}
)

func defaultTheme() theme {
	tab := lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(muted).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(muted)

	return theme{
		tab: tab,
		activeTab: tab.
			Foreground(accent).
			BorderForeground(accent).
			Bold(true),
		tabGap: lipgloss.NewStyle().Width(1),
		body:   lipgloss.NewStyle().Padding(1, 2, 0),
		errBanner: lipgloss.NewStyle().
			Foreground(danger).
			Padding(0, 2),
		footer: lipgloss.NewStyle().Padding(0, 2),
	}
}

var styles = defaultTheme()
