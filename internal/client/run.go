package client

import (
	"context"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/beer-battle/models"
)

func newRunCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Keep syncing in the background and show the week as it changes",
		Long: `Start a session for the owner: periodic syncs run in the background,
remote changes are pulled as they appear, and the summary of the current week
is printed every time it changes. Stop with Ctrl+C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, owner, err := c.owner(cmd.Context())
			if err != nil {
				return err
			}

			faint.Fprintf(cmd.OutOrStdout(), "Session started for %s, press Ctrl+C to stop\n", owner)

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			weekStart := models.WeekStart(c.now())
			summaries := app.Services().AlcoholService.WatchWeek(ctx, owner, weekStart)

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				defer cancel()
				return app.Run(gctx, owner)
			})
			g.Go(func() error {
				for records := range summaries {
					printSummary(cmd.OutOrStdout(), models.SummarizeWeek(owner, weekStart, records))
				}
				return nil
			})

			return g.Wait()
		},
	}
}
