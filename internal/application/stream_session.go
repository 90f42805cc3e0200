package application

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/bnema/bella-cli/internal/domain"
	"github.com/bnema/bella-cli/internal/ports"
	"github.com/bnema/bella-cli/internal/sse"
	"github.com/google/uuid"
	"pkt.systems/pslog"
)

const (
	StreamStartedText = "Streaming… (press again to stop)"
	StreamEndedMarker = "\n--- stream ended"
	defaultChunkSize  = 4096
)

var ErrStreamBusy = errors.New("another stream started while this one was connecting")

type StreamState int

const (
	StreamIdle StreamState = iota
	StreamActive
)

func (s StreamState) String() string {
	if s == StreamActive {
		return "active"
	}
	return "idle"
}

type StreamOpener interface {
	OpenStream(ctx context.Context, command string) (io.ReadCloser, error)
}

type streamHandle struct {
	id     string
	cancel context.CancelFunc
	body   io.ReadCloser
	done   chan struct{}
}

// StreamSession drives one streamed command control. It is either idle or
// holds exactly one handle; Toggle decides between starting and stopping from
// that state alone.
type StreamSession struct {
	opener    StreamOpener
	chunkSize int

	mu     sync.Mutex
	handle *streamHandle
}

func NewStreamSession(opener StreamOpener) *StreamSession {
	return &StreamSession{opener: opener, chunkSize: defaultChunkSize}
}

func (s *StreamSession) State() StreamState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handle == nil {
		return StreamIdle
	}
	return StreamActive
}

// Done returns a channel closed when the current stream has torn down. It is
// already closed when the session is idle.
func (s *StreamSession) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handle == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return s.handle.done
}

// Toggle stops the active stream, or starts command when idle. It returns the
// state the session is in afterwards. Start failures are reported to sink and
// returned; the session stays idle.
func (s *StreamSession) Toggle(ctx context.Context, command string, sink ports.Sink) (StreamState, error) {
	if s.Stop() {
		return StreamIdle, nil
	}
	return s.start(ctx, command, sink)
}

// Stop cancels the active stream and clears its handle. It reports whether a
// stream was running.
func (s *StreamSession) Stop() bool {
	s.mu.Lock()
	h := s.handle
	s.handle = nil
	s.mu.Unlock()

	if h == nil {
		return false
	}

	h.cancel()
	_ = h.body.Close()
	return true
}

func (s *StreamSession) start(ctx context.Context, command string, sink ports.Sink) (StreamState, error) {
	log := pslog.Ctx(ctx)

	streamCtx, cancel := context.WithCancel(ctx)
	body, err := s.opener.OpenStream(streamCtx, command)
	if err != nil {
		cancel()
		sink.Replace(domain.Describe(err))
		log.Warn("stream not started", "cmd", command, "err", err)
		return StreamIdle, err
	}

	h := &streamHandle{
		id:     uuid.NewString(),
		cancel: cancel,
		body:   body,
		done:   make(chan struct{}),
	}

	s.mu.Lock()
	if s.handle != nil {
		s.mu.Unlock()
		cancel()
		_ = body.Close()
		log.Warn("stream discarded", "cmd", command, "active", s.currentID())
		return StreamActive, ErrStreamBusy
	}
	s.handle = h
	s.mu.Unlock()

	// Only the start that installed its handle may clear the output. A start
	// that lost the race above must leave the running stream's text alone.
	sink.Replace(StreamStartedText)
	log.Info("stream opened", "stream", h.id, "cmd", command)
	go s.pump(streamCtx, h, sink)

	return StreamActive, nil
}

func (s *StreamSession) currentID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handle == nil {
		return ""
	}
	return s.handle.id
}

// pump reads the body chunk by chunk until the sentinel, end of body, a read
// error or cancellation. Payloads of a chunk already read are always
// dispatched before the cancellation is observed.
func (s *StreamSession) pump(ctx context.Context, h *streamHandle, sink ports.Sink) {
	log := pslog.Ctx(ctx).With("stream", h.id)
	defer s.finish(h)

	decoder := sse.NewDecoder()
	defer decoder.Reset()

	buf := make([]byte, s.chunkSize)
	for {
		n, err := h.body.Read(buf)
		if n > 0 {
			for _, payload := range decoder.Feed(buf[:n]) {
				if payload == sse.Sentinel {
					sink.Append(StreamEndedMarker)
					log.Info("stream ended")
					return
				}
				sink.Append(payload + "\n")
			}
		}
		if err == nil {
			continue
		}

		switch {
		case ctx.Err() != nil:
			log.Info("stream cancelled")
		case errors.Is(err, io.EOF):
			log.Info("stream closed without end marker")
		default:
			sink.Append("\n" + domain.Describe(&domain.TransportError{Op: "read stream", Err: err}))
			log.Warn("stream read failed", "err", err)
		}
		return
	}
}

func (s *StreamSession) finish(h *streamHandle) {
	s.mu.Lock()
	if s.handle == h {
		s.handle = nil
	}
	s.mu.Unlock()

	h.cancel()
	_ = h.body.Close()
	close(h.done)
}
