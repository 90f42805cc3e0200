// Package console is the interactive terminal front end: one screen holding
// the health line, the command output, the command history, a tailed log and
// a file listing.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bnema/bella-cli/internal/application"
	tea "github.com/charmbracelet/bubbletea"
	"pkt.systems/pslog"
)

var ErrUnexpectedModel = errors.New("unexpected final bubbletea model type")

// Run blocks until the user quits or ctx is cancelled. Streams, tails and the
// health heartbeat it started are all stopped before it returns.
func Run(ctx context.Context, opts Options, in io.Reader, out io.Writer) error {
	if opts.Service == nil || opts.Stream == nil {
		return errors.New("console needs a service and a stream session")
	}
	if opts.Tail == nil {
		opts.Tail = application.NewPollSession("tail")
	}

	var program *tea.Program
	send := func(msg tea.Msg) {
		program.Send(msg)
	}

	program = tea.NewProgram(
		newModel(ctx, opts, send),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)

	health := application.NewPollSession("health")
	health.Toggle(ctx, opts.HealthInterval, true, opts.Service.HealthTick(paneSink{pane: paneHealth, send: send}))
	defer health.Stop()
	defer opts.Tail.Stop()
	defer opts.Stream.Stop()

	pslog.Ctx(ctx).Debug("console started")
	final, err := program.Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run console: %w", err)
	}
	if _, ok := final.(model); !ok {
		return ErrUnexpectedModel
	}
	return nil
}
