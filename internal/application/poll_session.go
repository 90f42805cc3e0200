package application

import (
	"context"
	"sync"
	"time"

	"pkt.systems/pslog"
)

const DefaultPollInterval = 2 * time.Second

type PollAction func(ctx context.Context) error

// PollSession runs an action on a fixed interval until toggled off. A failed
// tick is logged and the next tick still runs.
type PollSession struct {
	name string

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewPollSession(name string) *PollSession {
	return &PollSession{name: name}
}

func (p *PollSession) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.cancel != nil
}

// Done returns a channel closed once the current loop has exited. It is
// already closed when the session is idle.
func (p *PollSession) Done() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.done == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return p.done
}

// Toggle starts polling when idle and stops it when active. It reports
// whether the call started a loop. With immediate set the first tick runs
// without waiting a full interval.
func (p *PollSession) Toggle(ctx context.Context, interval time.Duration, immediate bool, action PollAction) bool {
	if p.Stop() {
		return false
	}

	if interval <= 0 {
		interval = DefaultPollInterval
	}

	pollCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	p.mu.Lock()
	if p.cancel != nil {
		p.mu.Unlock()
		cancel()
		return false
	}
	p.cancel = cancel
	p.done = done
	p.mu.Unlock()

	pslog.Ctx(ctx).Debug("poll started", "poll", p.name, "interval", interval.String())
	go p.loop(pollCtx, interval, immediate, action, done)

	return true
}

func (p *PollSession) Stop() bool {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.done = nil
	p.mu.Unlock()

	if cancel == nil {
		return false
	}
	cancel()
	return true
}

func (p *PollSession) loop(ctx context.Context, interval time.Duration, immediate bool, action PollAction, done chan struct{}) {
	defer close(done)
	defer p.release(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if immediate {
		p.tick(ctx, action)
	}

	for {
		select {
		case <-ctx.Done():
			pslog.Ctx(ctx).Debug("poll stopped", "poll", p.name)
			return
		case <-ticker.C:
			p.tick(ctx, action)
		}
	}
}

func (p *PollSession) tick(ctx context.Context, action PollAction) {
	if ctx.Err() != nil {
		return
	}
	if err := action(ctx); err != nil && ctx.Err() == nil {
		pslog.Ctx(ctx).Warn("poll tick failed", "poll", p.name, "err", err)
	}
}

// release clears the session when the loop exits on its own, for example
// because the parent context was cancelled.
func (p *PollSession) release(done chan struct{}) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.done == done {
		if p.cancel != nil {
			p.cancel()
		}
		p.cancel = nil
		p.done = nil
	}
}
