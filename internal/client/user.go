package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/beer-battle/models"
)

func newUserCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "user",
		Aliases: []string{"users"},
		Short:   "Manage local user profiles",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <name> <age>",
			Short: "Create a user profile",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				app, err := c.open(cmd.Context())
				if err != nil {
					return err
				}

				user, err := app.Services().UserService.Create(cmd.Context(), models.UserForm{Name: args[0], Age: args[1]})
				if err != nil {
					return fmt.Errorf("failed to add user: %w", err)
				}

				success.Fprintf(cmd.OutOrStdout(), "✓ Added user %s\n", user.ID)
				return nil
			},
		},
		&cobra.Command{
			Use:     "delete <id>",
			Aliases: []string{"rm"},
			Short:   "Delete a user profile",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				app, err := c.open(cmd.Context())
				if err != nil {
					return err
				}

				if err = app.Services().UserService.Delete(cmd.Context(), args[0]); err != nil {
					return fmt.Errorf("failed to delete user: %w", err)
				}

				success.Fprintf(cmd.OutOrStdout(), "✓ Deleted user %s\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "List user profiles",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				app, err := c.open(cmd.Context())
				if err != nil {
					return err
				}

				users, err := app.Services().UserService.GetAll(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to list users: %w", err)
				}

				printUsers(cmd.OutOrStdout(), users)
				return nil
			},
		},
	)
	return cmd
}
