package console

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/bnema/bella-cli/internal/adapters/render/text"
	"github.com/bnema/bella-cli/internal/application"
	"github.com/bnema/bella-cli/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type mode int

const (
	modeRun mode = iota
	modeChat
	modeFiles
	modeRead
	modeCount
)

func (m mode) String() string {
	switch m {
	case modeChat:
		return "chat"
	case modeFiles:
		return "ls"
	case modeRead:
		return "cat"
	default:
		return "run"
	}
}

func (m mode) placeholder(defaultCommand string) string {
	switch m {
	case modeChat:
		return "Ask Bella"
	case modeFiles:
		return "Directory"
	case modeRead:
		return "Path"
	default:
		return defaultCommand
	}
}

type Options struct {
	Service        *application.Service
	Stream         *application.StreamSession
	Tail           *application.PollSession
	Catalog        domain.Catalog
	DefaultCommand string
	HealthInterval time.Duration
	TailInterval   time.Duration
	MarkdownStyle  string
}

type runDoneMsg struct {
	result application.RunResult
	err    error
}

type chatDoneMsg struct {
	reply string
	err   error
}

type fileDoneMsg struct {
	path    string
	content string
	err     error
}

type streamToggledMsg struct {
	state application.StreamState
	err   error
}

type tailToggledMsg struct {
	running bool
	file    string
}

type model struct {
	ctx     context.Context
	opts    Options
	send    func(tea.Msg)
	keys    keyMap
	help    help.Model
	styles  styles
	input   textinput.Model
	spinner spinner.Model
	output  viewport.Model
	panes   map[pane]string
	mode    mode
	busy    bool
	logIdx  int
	width   int
	height  int
}

func newModel(ctx context.Context, opts Options, send func(tea.Msg)) model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = modeRun.placeholder(opts.DefaultCommand)
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return model{
		ctx:     ctx,
		opts:    opts,
		send:    send,
		keys:    newKeyMap(),
		help:    help.New(),
		styles:  newStyles(),
		input:   input,
		spinner: spin,
		output:  viewport.New(80, 12),
		panes:   map[pane]string{},
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadHistory())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case paneMsg:
		m.apply(msg)
		return m, nil
	case runDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.setOutput(domain.Describe(msg.err))
			return m, nil
		}
		m.setOutput(prettyJSON(msg.result.Output))
		m.panes[paneHistory] = msg.result.History
		return m, nil
	case chatDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.setOutput(domain.Describe(msg.err))
			return m, nil
		}
		m.setOutput(text.Markdown(msg.reply, m.output.Width, m.opts.MarkdownStyle))
		return m, nil
	case fileDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.setOutput(domain.Describe(msg.err))
			return m, nil
		}
		if msg.content == domain.NotFoundText {
			m.setOutput(msg.content)
			return m, nil
		}
		m.setOutput(text.Highlight(msg.content, msg.path))
		return m, nil
	case streamToggledMsg, tailToggledMsg:
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.opts.Stream.Stop()
		m.opts.Tail.Stop()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Mode):
		m.mode = (m.mode + 1) % modeCount
		m.input.Placeholder = m.mode.placeholder(m.opts.DefaultCommand)
		m.input.Reset()
		return m, nil
	case key.Matches(msg, m.keys.Stream):
		return m, m.toggleStream(m.command())
	case key.Matches(msg, m.keys.Tail):
		return m, m.toggleTail(m.currentLog())
	case key.Matches(msg, m.keys.NextLog):
		if logs := m.opts.Catalog.Names(domain.EntryKindLog); len(logs) > 0 && !m.opts.Tail.Active() {
			m.logIdx = (m.logIdx + 1) % len(logs)
		}
		return m, nil
	case key.Matches(msg, m.keys.History):
		return m, m.loadHistory()
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) submit() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	value := strings.TrimSpace(m.input.Value())
	switch m.mode {
	case modeChat:
		if value == "" {
			return m, nil
		}
		m.input.Reset()
		m.busy = true
		m.setOutput("")
		return m, tea.Batch(m.spinner.Tick, m.chat(value))
	case modeFiles:
		return m, m.listFiles(value)
	case modeRead:
		if value == "" {
			return m, nil
		}
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, m.readFile(value))
	default:
		m.busy = true
		m.setOutput(application.RunningText)
		return m, tea.Batch(m.spinner.Tick, m.run(m.command()))
	}
}

func (m model) command() string {
	if m.mode == modeRun {
		if value := strings.TrimSpace(m.input.Value()); value != "" {
			return value
		}
	}
	return m.opts.DefaultCommand
}

func (m model) currentLog() string {
	logs := m.opts.Catalog.Names(domain.EntryKindLog)
	if len(logs) == 0 {
		return domain.HistoryLogFile
	}
	return logs[m.logIdx%len(logs)]
}

func (m model) sink(p pane) paneSink {
	return paneSink{pane: p, send: m.send}
}

func (m model) run(command string) tea.Cmd {
	ctx, service := m.ctx, m.opts.Service
	return func() tea.Msg {
		result, err := service.RunAndRefresh(ctx, command)
		return runDoneMsg{result: result, err: err}
	}
}

func (m model) chat(message string) tea.Cmd {
	ctx, service := m.ctx, m.opts.Service
	return func() tea.Msg {
		reply, err := service.Chat(ctx, message)
		return chatDoneMsg{reply: reply, err: err}
	}
}

func (m model) readFile(path string) tea.Cmd {
	ctx, service := m.ctx, m.opts.Service
	return func() tea.Msg {
		content, err := service.ReadFile(ctx, path)
		return fileDoneMsg{path: path, content: content, err: err}
	}
}

func (m model) listFiles(path string) tea.Cmd {
	ctx, service := m.ctx, m.opts.Service
	return func() tea.Msg {
		return paneMsg{pane: paneFiles, text: service.ListingText(ctx, path), replace: true}
	}
}

func (m model) loadHistory() tea.Cmd {
	ctx, service := m.ctx, m.opts.Service
	return func() tea.Msg {
		return paneMsg{pane: paneHistory, text: service.HistoryText(ctx), replace: true}
	}
}

func (m model) toggleStream(command string) tea.Cmd {
	ctx, stream, sink := m.ctx, m.opts.Stream, m.sink(paneOutput)
	return func() tea.Msg {
		state, err := stream.Toggle(ctx, command, sink)
		if errors.Is(err, application.ErrStreamBusy) {
			err = nil
		}
		return streamToggledMsg{state: state, err: err}
	}
}

func (m model) toggleTail(file string) tea.Cmd {
	ctx, opts, sink := m.ctx, m.opts, m.sink(paneLog)
	return func() tea.Msg {
		// A missing key is already on the log pane.
		running, _ := opts.Service.ToggleTail(ctx, opts.Tail, file, opts.TailInterval, sink)
		return tailToggledMsg{running: running, file: file}
	}
}

func (m *model) apply(msg paneMsg) {
	if msg.replace {
		m.panes[msg.pane] = msg.text
	} else {
		m.panes[msg.pane] += msg.text
	}
	if msg.pane == paneOutput {
		m.output.SetContent(m.panes[paneOutput])
		m.output.GotoBottom()
	}
}

func (m *model) setOutput(content string) {
	m.apply(paneMsg{pane: paneOutput, text: content, replace: true})
}

func (m *model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	m.output.Width = max(20, width-4)
	m.output.Height = max(5, height-20)
	m.output.SetContent(m.panes[paneOutput])
}

func prettyJSON(raw json.RawMessage) string {
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return string(raw)
	}
	return out.String()
}
