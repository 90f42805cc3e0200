package console

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit  key.Binding
	Mode    key.Binding
	Stream  key.Binding
	Tail    key.Binding
	NextLog key.Binding
	History key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Mode:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "mode")),
		Stream:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "stream")),
		Tail:    key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "tail")),
		NextLog: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "next log")),
		History: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "history")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Mode, k.Stream, k.Tail, k.NextLog, k.History, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
