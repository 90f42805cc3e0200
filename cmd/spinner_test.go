package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitModelShowsElapsedAfterOneSecond(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	current := start
	m := newWaitModel("Running...", func() time.Time { return current }, nil)

	assert.NotContains(t, m.View(), "0s")
	assert.Contains(t, m.View(), "Running...")

	current = start.Add(3*time.Second + 400*time.Millisecond)
	assert.Contains(t, m.View(), "Running... 3s")

	next, _ := m.Update(workDoneMsg{err: errors.New("boom")})
	done := next.(waitModel)
	assert.Empty(t, done.View())
	assert.EqualError(t, done.err, "boom")
}

func TestRunWithSpinnerSkipsDrawingWhenNotATerminal(t *testing.T) {
	var out bytes.Buffer
	calls := 0

	err := runWithSpinner(context.Background(), &out, "Running...", func(context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Empty(t, out.String())
}
