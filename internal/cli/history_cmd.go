package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/metis/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List completed assessments",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.History.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHistory(records))
			return nil
		},
	}

	cmd.AddCommand(newHistoryShowCmd(app), newHistoryDeleteCmd(app))
	return cmd
}

func newHistoryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one completed assessment report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := resolveRecord(context.Background(), app, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatResult(rec.Profile, rec.Result))
			return nil
		},
	}
}

func newHistoryDeleteCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a completed assessment",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rec, err := resolveRecord(ctx, app, args)
			if err != nil {
				return err
			}

			if !force {
				if !app.interactive() {
					return fmt.Errorf("refusing to delete without --force in non-interactive mode")
				}
				confirmed := false
				prompt := fmt.Sprintf("Delete assessment %s from %s?",
					rec.ID[:8], rec.CompletedAt.Format("Jan 2, 2006"))
				if err := confirmForm(prompt, &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Aborted."))
					return nil
				}
			}

			if err := app.History.Delete(ctx, rec.ID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Deleted "+rec.ID[:8]+"."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Delete without confirmation")
	return cmd
}
