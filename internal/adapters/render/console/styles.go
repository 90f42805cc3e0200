package console

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	health    lipgloss.Style
	mode      lipgloss.Style
	status    lipgloss.Style
	active    lipgloss.Style
	pane      lipgloss.Style
	paneTitle lipgloss.Style
	empty     lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		health:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		mode:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		status:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		active:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		pane:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
		paneTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
		empty:     lipgloss.NewStyle().Faint(true),
	}
}
