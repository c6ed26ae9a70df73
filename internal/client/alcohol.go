package client

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/beer-battle/models"
)

func newAlcoholCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "alcohol",
		Aliases: []string{"a", "drink"},
		Short:   "Log and browse alcohol records",
	}

	cmd.AddCommand(
		newAlcoholAddCommand(c),
		newAlcoholUpdateCommand(c),
		newAlcoholDeleteCommand(c),
		newAlcoholClearCommand(c),
		newAlcoholWeekCommand(c),
		newAlcoholSearchCommand(c),
		newAlcoholSummaryCommand(c),
	)
	return cmd
}

func newAlcoholAddCommand(c *cli) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "add <drink> <milliliters> <percentage>",
		Short: "Log a drink",
		Long: `Log a drink. Percentage accepts a decimal comma ("4,5").

Examples:
  beer-battle alcohol add Lager 500 5
  beer-battle alcohol add "Red wine" 150 12,5 --date 2026-03-01`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := c.dateFlag(date)
			if err != nil {
				return err
			}
			app, owner, err := c.owner(cmd.Context())
			if err != nil {
				return err
			}

			rec, err := app.Services().AlcoholService.Create(cmd.Context(), owner, models.AlcoholForm{
				DrinkName:   args[0],
				Milliliters: args[1],
				Percentage:  args[2],
				Date:        models.FormatDate(day),
			})
			if err != nil {
				return fmt.Errorf("failed to add record: %w", err)
			}

			success.Fprintln(cmd.OutOrStdout(), "✓ Added record")
			printRecord(cmd.OutOrStdout(), rec)
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "day of the drink, YYYY-MM-DD (default today)")
	return cmd
}

func newAlcoholUpdateCommand(c *cli) *cobra.Command {
	var form models.AlcoholForm

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a drink; omitted flags keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, owner, err := c.owner(cmd.Context())
			if err != nil {
				return err
			}
			svc := app.Services().AlcoholService

			current, err := svc.Get(cmd.Context(), owner, args[0])
			if err != nil {
				return fmt.Errorf("failed to load record: %w", err)
			}

			flags := cmd.Flags()
			if !flags.Changed("drink") {
				form.DrinkName = current.DrinkName
			}
			if !flags.Changed("ml") {
				form.Milliliters = strconv.Itoa(current.Milliliters)
			}
			if !flags.Changed("percentage") {
				form.Percentage = strconv.FormatFloat(current.Percentage, 'f', -1, 64)
			}

			rec, err := svc.Update(cmd.Context(), owner, args[0], form)
			if err != nil {
				return fmt.Errorf("failed to update record: %w", err)
			}

			success.Fprintln(cmd.OutOrStdout(), "✓ Updated record")
			printRecord(cmd.OutOrStdout(), rec)
			return nil
		},
	}

	cmd.Flags().StringVar(&form.DrinkName, "drink", "", "drink name")
	cmd.Flags().StringVar(&form.Milliliters, "ml", "", "volume in milliliters")
	cmd.Flags().StringVar(&form.Percentage, "percentage", "", "alcohol by volume, percent")
	cmd.Flags().StringVarP(&form.Date, "date", "d", "", "day of the drink, YYYY-MM-DD (default unchanged)")
	return cmd
}

func newAlcoholDeleteCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a drink",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, owner, err := c.owner(cmd.Context())
			if err != nil {
				return err
			}

			if err = app.Services().AlcoholService.Delete(cmd.Context(), owner, args[0]); err != nil {
				return fmt.Errorf("failed to delete record: %w", err)
			}

			success.Fprintf(cmd.OutOrStdout(), "✓ Deleted record %s\n", args[0])
			return nil
		},
	}
}

func newAlcoholClearCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every drink of the owner, locally and remotely",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, owner, err := c.owner(cmd.Context())
			if err != nil {
				return err
			}

			if err = app.Services().AlcoholService.DeleteAllForOwner(cmd.Context(), owner); err != nil {
				return fmt.Errorf("failed to delete records: %w", err)
			}

			success.Fprintf(cmd.OutOrStdout(), "✓ Deleted every record of %s\n", owner)
			return nil
		},
	}
}

func newAlcoholWeekCommand(c *cli) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:     "week",
		Aliases: []string{"ls", "list"},
		Short:   "List the drinks of a week",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := c.dateFlag(date)
			if err != nil {
				return err
			}
			app, owner, err := c.owner(cmd.Context())
			if err != nil {
				return err
			}

			records, err := app.Services().AlcoholService.GetWeek(cmd.Context(), owner, models.WeekStart(day))
			if err != nil {
				return fmt.Errorf("failed to list records: %w", err)
			}

			bold.Fprintf(cmd.OutOrStdout(), "Week of %s\n", models.FormatDate(models.WeekStart(day)))
			printRecords(cmd.OutOrStdout(), records)
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "any day of the week, YYYY-MM-DD (default today)")
	return cmd
}

func newAlcoholSearchCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Find drinks by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, owner, err := c.owner(cmd.Context())
			if err != nil {
				return err
			}

			records, err := app.Services().AlcoholService.Search(cmd.Context(), owner, args[0])
			if err != nil {
				return fmt.Errorf("failed to search records: %w", err)
			}

			printRecords(cmd.OutOrStdout(), records)
			return nil
		},
	}
}

func newAlcoholSummaryCommand(c *cli) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Pure alcohol per day and the health status of a week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := c.dateFlag(date)
			if err != nil {
				return err
			}
			app, owner, err := c.owner(cmd.Context())
			if err != nil {
				return err
			}

			summary, err := app.Services().AlcoholService.WeeklySummary(cmd.Context(), owner, models.WeekStart(day))
			if err != nil {
				return fmt.Errorf("failed to summarize week: %w", err)
			}

			printSummary(cmd.OutOrStdout(), summary)
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "any day of the week, YYYY-MM-DD (default today)")
	return cmd
}
