package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/bella-cli/internal/domain"
	"github.com/bnema/bella-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not tear down")
	}
}

func TestStreamSessionStopsAtSentinelWithoutFurtherReads(t *testing.T) {
	t.Parallel()

	body := newScriptedBody(nil,
		"data: a\n\ndata: b",
		"\n\ndata: [STREAM-END]\n\n",
		"data: c\n\n",
	)
	session := NewStreamSession(openerFunc(func(context.Context, string) (io.ReadCloser, error) {
		return body, nil
	}))
	sink := &recordingSink{}

	state, err := session.Toggle(context.Background(), "services dekho", sink)
	require.NoError(t, err)
	assert.Equal(t, StreamActive, state)

	waitDone(t, session.Done())

	assert.Equal(t, []string{"a\n", "b\n", StreamEndedMarker}, sink.Appends())
	assert.Equal(t, StreamStartedText+"a\nb\n"+StreamEndedMarker, sink.Text())
	assert.Equal(t, 2, body.Reads())
	assert.True(t, body.IsClosed())
	assert.Equal(t, StreamIdle, session.State())
}

func TestStreamSessionSecondToggleStopsStream(t *testing.T) {
	t.Parallel()

	body := newScriptedBody(nil, "data: first\n\n")
	var streamCtx context.Context
	var opens atomic.Int32
	session := NewStreamSession(openerFunc(func(ctx context.Context, _ string) (io.ReadCloser, error) {
		opens.Add(1)
		streamCtx = ctx
		return body, nil
	}))
	sink := &recordingSink{}

	_, err := session.Toggle(context.Background(), "x", sink)
	require.NoError(t, err)
	done := session.Done()

	require.Eventually(t, func() bool { return len(sink.Appends()) == 1 }, time.Second, time.Millisecond)

	state, err := session.Toggle(context.Background(), "x", sink)
	require.NoError(t, err)
	assert.Equal(t, StreamIdle, state)

	waitDone(t, done)
	assert.Equal(t, int32(1), opens.Load())
	assert.ErrorIs(t, streamCtx.Err(), context.Canceled)
	assert.True(t, body.IsClosed())
	assert.Equal(t, []string{"first\n"}, sink.Appends())
}

func TestStreamSessionNoCredentialStaysIdle(t *testing.T) {
	t.Parallel()

	backend := mocks.NewMockBackend(t)
	backend.EXPECT().OpenStream(mockAnyContext(), "services dekho").
		Return(nil, fmt.Errorf("open command stream: %w", domain.ErrNoCredential))
	session := NewStreamSession(backend)
	sink := &recordingSink{}

	state, err := session.Toggle(context.Background(), "services dekho", sink)
	require.ErrorIs(t, err, domain.ErrNoCredential)
	assert.Equal(t, StreamIdle, state)
	assert.Equal(t, StreamIdle, session.State())
	assert.Equal(t, "No API key available — start backend", sink.Text())
}

func TestStreamSessionReportsServerFailure(t *testing.T) {
	t.Parallel()

	session := NewStreamSession(openerFunc(func(context.Context, string) (io.ReadCloser, error) {
		return nil, &domain.ServerError{Status: 500, Body: "boom"}
	}))
	sink := &recordingSink{}

	state, err := session.Toggle(context.Background(), "x", sink)
	require.ErrorIs(t, err, domain.ErrServer)
	assert.Equal(t, StreamIdle, state)
	assert.Equal(t, "Error: boom", sink.Text())
}

func TestStreamSessionReadFailureAppendsError(t *testing.T) {
	t.Parallel()

	body := newScriptedBody(errors.New("connection reset"), "data: partial\n\n")
	session := NewStreamSession(openerFunc(func(context.Context, string) (io.ReadCloser, error) {
		return body, nil
	}))
	sink := &recordingSink{}

	_, err := session.Toggle(context.Background(), "x", sink)
	require.NoError(t, err)
	waitDone(t, session.Done())

	assert.Equal(t, []string{"partial\n", "\nError: backend unreachable"}, sink.Appends())
	assert.Equal(t, StreamIdle, session.State())
}

func TestStreamSessionEndOfBodyWithoutSentinel(t *testing.T) {
	t.Parallel()

	body := newScriptedBody(io.EOF, "data: only\n\ndata: trailing")
	session := NewStreamSession(openerFunc(func(context.Context, string) (io.ReadCloser, error) {
		return body, nil
	}))
	sink := &recordingSink{}

	_, err := session.Toggle(context.Background(), "x", sink)
	require.NoError(t, err)
	waitDone(t, session.Done())

	assert.Equal(t, []string{"only\n"}, sink.Appends())
	assert.True(t, body.IsClosed())
}

func TestStreamSessionParentCancelTearsDown(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	body := newScriptedBody(nil)
	session := NewStreamSession(openerFunc(func(context.Context, string) (io.ReadCloser, error) {
		return body, nil
	}))

	_, err := session.Toggle(ctx, "x", &recordingSink{})
	require.NoError(t, err)
	done := session.Done()

	cancel()
	// The scripted body only unblocks on Close, which the parent context
	// does not trigger on its own.
	session.Stop()

	waitDone(t, done)
	assert.Equal(t, StreamIdle, session.State())
}

func TestStreamSessionDiscardsLateOpener(t *testing.T) {
	t.Parallel()

	entered := make(chan struct{})
	release := make(chan struct{})
	late := newScriptedBody(nil, "data: stale\n\n")
	winner := newScriptedBody(nil, "data: live\n\n")
	sink := &recordingSink{}

	var calls atomic.Int32
	session := NewStreamSession(openerFunc(func(context.Context, string) (io.ReadCloser, error) {
		if calls.Add(1) == 1 {
			close(entered)
			<-release
			return late, nil
		}
		return winner, nil
	}))

	type result struct {
		state StreamState
		err   error
	}
	results := make(chan result, 1)
	go func() {
		state, err := session.Toggle(context.Background(), "x", sink)
		results <- result{state, err}
	}()
	<-entered

	state, err := session.Toggle(context.Background(), "x", sink)
	require.NoError(t, err)
	assert.Equal(t, StreamActive, state)

	want := StreamStartedText + "live\n"
	require.Eventually(t, func() bool { return sink.Text() == want }, time.Second, time.Millisecond)

	close(release)
	got := <-results
	require.ErrorIs(t, got.err, ErrStreamBusy)
	assert.Equal(t, StreamActive, got.state)
	assert.True(t, late.IsClosed())
	assert.False(t, winner.IsClosed())
	assert.Equal(t, want, sink.Text())

	done := session.Done()
	require.True(t, session.Stop())
	waitDone(t, done)
	assert.True(t, winner.IsClosed())
	assert.Equal(t, want, sink.Text())
}

func TestStreamSessionDoneWhenIdle(t *testing.T) {
	t.Parallel()

	session := NewStreamSession(openerFunc(func(context.Context, string) (io.ReadCloser, error) {
		return nil, errors.New("unused")
	}))

	waitDone(t, session.Done())
	assert.False(t, session.Stop())
	assert.Equal(t, "idle", session.State().String())
}
