package cmd

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/bnema/bella-cli/internal/ports"
)

// streamSink sends streamed text to out and status lines, such as the start
// notice or a failure, to status.
type streamSink struct {
	mu     sync.Mutex
	out    io.Writer
	status io.Writer
}

var _ ports.Sink = (*streamSink)(nil)

func (s *streamSink) Replace(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintln(s.status, text)
}

func (s *streamSink) Append(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = io.WriteString(s.out, text)
}

// tailSink prints only what a refreshed log gained since the last tick. When
// the log was rotated or rewritten the whole new content is printed.
type tailSink struct {
	mu   sync.Mutex
	out  io.Writer
	last string
}

var _ ports.Sink = (*tailSink)(nil)

func (s *tailSink) Replace(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case text == s.last:
		return
	case s.last != "" && strings.HasPrefix(text, s.last):
		_, _ = io.WriteString(s.out, text[len(s.last):])
	default:
		if s.last != "" {
			_, _ = io.WriteString(s.out, "\n")
		}
		_, _ = io.WriteString(s.out, text)
	}
	s.last = text
}

func (s *tailSink) Append(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintln(s.out, text)
}

// lineSink prints every state as its own line.
type lineSink struct {
	mu  sync.Mutex
	out io.Writer
}

var _ ports.Sink = (*lineSink)(nil)

func (s *lineSink) Replace(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintln(s.out, text)
}

func (s *lineSink) Append(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintln(s.out, text)
}
