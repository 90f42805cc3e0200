package application

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/stretchr/testify/mock"
)

func mockAnyContext() interface{} {
	return mock.Anything
}

type sinkOp struct {
	replace bool
	text    string
}

type recordingSink struct {
	mu  sync.Mutex
	ops []sinkOp
	buf strings.Builder
}

func (s *recordingSink) Replace(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ops = append(s.ops, sinkOp{replace: true, text: text})
	s.buf.Reset()
	s.buf.WriteString(text)
}

func (s *recordingSink) Append(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ops = append(s.ops, sinkOp{text: text})
	s.buf.WriteString(text)
}

func (s *recordingSink) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.buf.String()
}

func (s *recordingSink) Appends() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []string
	for _, op := range s.ops {
		if !op.replace {
			out = append(out, op.text)
		}
	}
	return out
}

var errClosedBody = errors.New("read on closed body")

// scriptedBody hands out chunks one Read at a time. Once they run out it
// returns err, or blocks until Close when err is nil.
type scriptedBody struct {
	mu      sync.Mutex
	chunks  []string
	err     error
	reads   int
	closes  int
	closed  chan struct{}
	closeMu sync.Once
}

func newScriptedBody(err error, chunks ...string) *scriptedBody {
	return &scriptedBody{chunks: chunks, err: err, closed: make(chan struct{})}
}

func (b *scriptedBody) Read(p []byte) (int, error) {
	b.mu.Lock()
	b.reads++
	if len(b.chunks) > 0 {
		chunk := b.chunks[0]
		n := copy(p, chunk)
		if n < len(chunk) {
			b.chunks[0] = chunk[n:]
		} else {
			b.chunks = b.chunks[1:]
		}
		b.mu.Unlock()
		return n, nil
	}
	err := b.err
	b.mu.Unlock()

	if err != nil {
		return 0, err
	}
	<-b.closed
	return 0, errClosedBody
}

func (b *scriptedBody) Close() error {
	b.mu.Lock()
	b.closes++
	b.mu.Unlock()
	b.closeMu.Do(func() { close(b.closed) })
	return nil
}

func (b *scriptedBody) Reads() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.reads
}

func (b *scriptedBody) IsClosed() bool {
	select {
	case <-b.closed:
		return true
	default:
		return false
	}
}

type openerFunc func(ctx context.Context, command string) (io.ReadCloser, error)

func (f openerFunc) OpenStream(ctx context.Context, command string) (io.ReadCloser, error) {
	return f(ctx, command)
}
