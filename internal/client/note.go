package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/beer-battle/models"
)

// Notes live only in the local cache, so the commands need no owner.
func newNoteCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "note",
		Aliases: []string{"n", "notes"},
		Short:   "Manage local notes",
	}

	cmd.AddCommand(
		newNoteAddCommand(c),
		newNoteUpdateCommand(c),
		newNoteDeleteCommand(c),
		newNoteListCommand(c),
		newNoteSearchCommand(c),
	)
	return cmd
}

func newNoteAddCommand(c *cli) *cobra.Command {
	var form models.NoteForm

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.open(cmd.Context())
			if err != nil {
				return err
			}

			form.Title = args[0]
			note, err := app.Services().NoteService.Create(cmd.Context(), form)
			if err != nil {
				return fmt.Errorf("failed to add note: %w", err)
			}

			success.Fprintf(cmd.OutOrStdout(), "✓ Added note %s\n", note.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Content, "content", "", "note text")
	return cmd
}

func newNoteUpdateCommand(c *cli) *cobra.Command {
	var form models.NoteForm

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a note; omitted flags keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			svc := app.Services().NoteService

			current, err := svc.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to load note: %w", err)
			}
			if !cmd.Flags().Changed("title") {
				form.Title = current.Title
			}
			if !cmd.Flags().Changed("content") {
				form.Content = current.Content
			}

			if _, err = svc.Update(cmd.Context(), args[0], form); err != nil {
				return fmt.Errorf("failed to update note: %w", err)
			}

			success.Fprintf(cmd.OutOrStdout(), "✓ Updated note %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Title, "title", "", "note title")
	cmd.Flags().StringVar(&form.Content, "content", "", "note text")
	return cmd
}

func newNoteDeleteCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a note",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.open(cmd.Context())
			if err != nil {
				return err
			}

			if err = app.Services().NoteService.Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete note: %w", err)
			}

			success.Fprintf(cmd.OutOrStdout(), "✓ Deleted note %s\n", args[0])
			return nil
		},
	}
}

func newNoteListCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List notes, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.open(cmd.Context())
			if err != nil {
				return err
			}

			notes, err := app.Services().NoteService.GetAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list notes: %w", err)
			}

			printNotes(cmd.OutOrStdout(), notes)
			return nil
		},
	}
}

func newNoteSearchCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Find notes by title or content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.open(cmd.Context())
			if err != nil {
				return err
			}

			notes, err := app.Services().NoteService.Search(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to search notes: %w", err)
			}

			printNotes(cmd.OutOrStdout(), notes)
			return nil
		},
	}
}
