package cmd

import (
	"context"
	"fmt"
	"time"

	statusadapter "github.com/bnema/bella-cli/internal/adapters/render/status"
	"github.com/bnema/bella-cli/internal/application"
	"github.com/spf13/cobra"
)

func newHealthCmd(app *app) *cobra.Command {
	var watch bool
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Show backend CPU, memory and disk usage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if watch {
				return watchHealth(cmd, app, interval)
			}
			return showHealth(cmd, app)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep polling until interrupted")
	cmd.Flags().DurationVar(&interval, "interval", app.settings.HealthInterval, "Polling interval with --watch")

	return cmd
}

func showHealth(cmd *cobra.Command, app *app) error {
	snapshot := statusadapter.Snapshot{Backend: app.settings.BackendURL, CapturedAt: app.now()}

	health, healthErr := app.service.Health(cmd.Context())
	if healthErr != nil {
		snapshot.Problem = application.HealthProblem(healthErr)
	} else {
		snapshot.Health = health
	}

	rendered, err := app.statusRenderer(snapshot, statusadapter.RenderOptions{Now: app.now()})
	if err != nil {
		return fmt.Errorf("render health: %w", err)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), rendered); err != nil {
		return err
	}

	return healthErr
}

// watchHealth prints one health line per tick until the command context ends.
func watchHealth(cmd *cobra.Command, app *app, interval time.Duration) error {
	ctx := cmd.Context()
	heartbeat := application.NewPollSession("health")
	sink := &lineSink{out: cmd.OutOrStdout()}

	heartbeat.Toggle(context.WithoutCancel(ctx), interval, true, app.service.HealthTick(sink))
	done := heartbeat.Done()

	<-ctx.Done()
	heartbeat.Stop()
	<-done

	return nil
}
