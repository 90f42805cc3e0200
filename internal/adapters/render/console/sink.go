package console

import (
	"github.com/bnema/bella-cli/internal/ports"
	tea "github.com/charmbracelet/bubbletea"
)

type pane int

const (
	paneHealth pane = iota
	paneOutput
	paneHistory
	paneLog
	paneFiles
)

type paneMsg struct {
	pane    pane
	text    string
	replace bool
}

// paneSink forwards writes from background sessions into the program loop.
// Writes must never happen from inside Update, where Send would block.
type paneSink struct {
	pane pane
	send func(tea.Msg)
}

var _ ports.Sink = paneSink{}

func (s paneSink) Replace(text string) {
	s.send(paneMsg{pane: s.pane, text: text, replace: true})
}

func (s paneSink) Append(text string) {
	s.send(paneMsg{pane: s.pane, text: text})
}
