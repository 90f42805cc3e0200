package console

import (
	"fmt"
	"strings"

	"github.com/bnema/bella-cli/internal/application"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const sidePaneLines = 8

func (m model) View() string {
	s := m.styles

	health := m.panes[paneHealth]
	if health == "" {
		health = s.empty.Render("…")
	} else {
		health = s.health.Render(health)
	}

	prompt := s.mode.Render("["+m.mode.String()+"]") + " " + m.input.View()
	if m.busy {
		prompt += " " + m.spinner.View()
	}

	sections := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, s.title.Render("Bella"), "  ", health),
		m.statusLine(),
		prompt,
		s.pane.Render(m.output.View()),
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.sidePane("History", m.panes[paneHistory]),
			m.sidePane("Log: "+m.currentLog(), m.panes[paneLog]),
			m.sidePane("Files", m.panes[paneFiles]),
		),
		m.help.View(m.keys),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m model) statusLine() string {
	s := m.styles

	stream := s.status.Render("stream: idle")
	if m.opts.Stream.State() == application.StreamActive {
		stream = s.active.Render("stream: active")
	}

	tail := s.status.Render("tail: off")
	if m.opts.Tail.Active() {
		tail = s.active.Render(fmt.Sprintf("tail: %s", m.currentLog()))
	}

	return stream + s.status.Render(" • ") + tail
}

func (m model) sidePane(title, body string) string {
	width := 30
	if m.width > 0 {
		width = max(20, m.width/3-4)
	}

	if body == "" {
		body = m.styles.empty.Render("-")
	}

	return m.styles.pane.Width(width).Render(
		m.styles.paneTitle.Render(title) + "\n" + clipLines(lastLines(body, sidePaneLines), width-2),
	)
}

// clipLines cuts every line to width cells so long log lines do not wrap
// inside a side pane. Escape sequences from highlighted content survive.
func clipLines(text string, width int) string {
	if width <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "…")
	}
	return strings.Join(lines, "\n")
}

func lastLines(text string, n int) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
