package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/beer-battle/models"
)

func newSyncCommand(c *cli) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Reconcile the local cache with the remote store",
		Long: `Flush pending writes and reconcile the local cache with the remote store.

Without --kind every entity kind is synced.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, owner, err := c.owner(cmd.Context())
			if err != nil {
				return err
			}
			svc := app.Services().SyncService

			if kind == "" {
				results, err := svc.SyncAll(cmd.Context(), owner)
				for _, r := range results {
					printResult(cmd.OutOrStdout(), r)
				}
				if err != nil {
					return fmt.Errorf("failed to sync: %w", err)
				}
				return nil
			}

			entity := models.EntityKind(kind)
			if entity.Collection() == "" {
				return fmt.Errorf("unknown kind %q: expected %s or %s", kind, models.KindAlcoholRecords, models.KindEvents)
			}

			result, err := svc.SyncEntity(cmd.Context(), owner, entity)
			if err != nil {
				return fmt.Errorf("failed to sync %s: %w", entity, err)
			}

			printResult(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "entity kind to sync: alcohol or event")
	return cmd
}
