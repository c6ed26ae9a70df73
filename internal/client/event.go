package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/beer-battle/models"
)

func newEventCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "event",
		Aliases: []string{"e", "events"},
		Short:   "Manage events",
	}

	cmd.AddCommand(
		newEventAddCommand(c),
		newEventUpdateCommand(c),
		newEventDeleteCommand(c),
		newEventClearCommand(c),
		newEventListCommand(c),
		newEventSearchCommand(c),
	)
	return cmd
}

func newEventAddCommand(c *cli) *cobra.Command {
	var form models.EventForm

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, owner, err := c.owner(cmd.Context())
			if err != nil {
				return err
			}

			form.Title = args[0]
			ev, err := app.Services().EventService.Create(cmd.Context(), owner, form)
			if err != nil {
				return fmt.Errorf("failed to add event: %w", err)
			}

			success.Fprintln(cmd.OutOrStdout(), "✓ Added event")
			printEvent(cmd.OutOrStdout(), ev)
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Description, "description", "", "event description")
	cmd.Flags().StringVarP(&form.Date, "date", "d", "", "when it happens, free text")
	return cmd
}

func newEventUpdateCommand(c *cli) *cobra.Command {
	var form models.EventForm

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change an event; omitted flags keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, owner, err := c.owner(cmd.Context())
			if err != nil {
				return err
			}
			svc := app.Services().EventService

			current, err := svc.Get(cmd.Context(), owner, args[0])
			if err != nil {
				return fmt.Errorf("failed to load event: %w", err)
			}

			flags := cmd.Flags()
			if !flags.Changed("title") {
				form.Title = current.Title
			}
			if !flags.Changed("description") {
				form.Description = current.Description
			}
			if !flags.Changed("date") {
				form.Date = current.Date
			}

			ev, err := svc.Update(cmd.Context(), owner, args[0], form)
			if err != nil {
				return fmt.Errorf("failed to update event: %w", err)
			}

			success.Fprintln(cmd.OutOrStdout(), "✓ Updated event")
			printEvent(cmd.OutOrStdout(), ev)
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Title, "title", "", "event title")
	cmd.Flags().StringVar(&form.Description, "description", "", "event description")
	cmd.Flags().StringVarP(&form.Date, "date", "d", "", "when it happens, free text")
	return cmd
}

func newEventDeleteCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an event",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, owner, err := c.owner(cmd.Context())
			if err != nil {
				return err
			}

			if err = app.Services().EventService.Delete(cmd.Context(), owner, args[0]); err != nil {
				return fmt.Errorf("failed to delete event: %w", err)
			}

			success.Fprintf(cmd.OutOrStdout(), "✓ Deleted event %s\n", args[0])
			return nil
		},
	}
}

func newEventClearCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every event of the owner, locally and remotely",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, owner, err := c.owner(cmd.Context())
			if err != nil {
				return err
			}

			if err = app.Services().EventService.DeleteAllForOwner(cmd.Context(), owner); err != nil {
				return fmt.Errorf("failed to delete events: %w", err)
			}

			success.Fprintf(cmd.OutOrStdout(), "✓ Deleted every event of %s\n", owner)
			return nil
		},
	}
}

func newEventListCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List every event of the owner",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, owner, err := c.owner(cmd.Context())
			if err != nil {
				return err
			}

			events, err := app.Services().EventService.GetAll(cmd.Context(), owner)
			if err != nil {
				return fmt.Errorf("failed to list events: %w", err)
			}

			printEvents(cmd.OutOrStdout(), events)
			return nil
		},
	}
}

func newEventSearchCommand(c *cli) *cobra.Command {
	var search models.EventSearch

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find events",
		Long: `Find events whose title, description or date contains the query.

Restrict the match with --title, --description and --date; without them
every field is searched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, owner, err := c.owner(cmd.Context())
			if err != nil {
				return err
			}
			svc := app.Services().EventService

			var events []models.Evento
			if search.AnyFieldEnabled() {
				search.Query = args[0]
				events, err = svc.AdvancedSearch(cmd.Context(), owner, search)
			} else {
				events, err = svc.Search(cmd.Context(), owner, args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to search events: %w", err)
			}

			printEvents(cmd.OutOrStdout(), events)
			return nil
		},
	}

	cmd.Flags().BoolVar(&search.Title, "title", false, "match titles")
	cmd.Flags().BoolVar(&search.Description, "description", false, "match descriptions")
	cmd.Flags().BoolVar(&search.Date, "date", false, "match dates")
	return cmd
}
