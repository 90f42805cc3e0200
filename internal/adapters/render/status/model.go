package status

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedCardModel = errors.New("health card finished with an unexpected model")

// snapshotMsg hands the reading to the card once the program is running.
type snapshotMsg Snapshot

// card lays out one health reading and quits as soon as it is drawn.
type card struct {
	opts     RenderOptions
	styles   styles
	reading  *Snapshot
	rendered string
}

func (c card) Init() tea.Cmd {
	return nil
}

func (c card) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	reading, ok := msg.(snapshotMsg)
	if !ok {
		return c, nil
	}

	snapshot := Snapshot(reading)
	c.reading = &snapshot
	c.rendered = renderView(snapshot, c.opts, c.styles)
	return c, tea.Quit
}

func (c card) View() string {
	return c.rendered
}

// Render draws snapshot as the health card printed by `bella health`.
func Render(snapshot Snapshot, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		card{opts: opts, styles: newStyles()},
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
	)

	go p.Send(snapshotMsg(snapshot))

	final, err := p.Run()
	if err != nil {
		return "", err
	}

	drawn, ok := final.(card)
	if !ok || drawn.reading == nil {
		return "", ErrUnexpectedCardModel
	}

	return drawn.View(), nil
}
