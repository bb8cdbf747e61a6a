package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/metis/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newResetCmd(app *App) *cobra.Command {
	var force, all bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard the in-flight assessment",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			resumed, err := app.Assessment.Resume(ctx)
			if err != nil {
				return err
			}
			if !resumed && !all {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Nothing to reset."))
				return nil
			}

			if !force {
				if !app.interactive() {
					return fmt.Errorf("refusing to reset without --force in non-interactive mode")
				}
				answered, total := app.Assessment.Progress()
				prompt := fmt.Sprintf("Discard the saved assessment (%d of %d answered)?", answered, total)
				if all {
					prompt = "Discard the saved assessment AND all completed assessments?"
				}
				confirmed := false
				if err := confirmForm(prompt, &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Aborted."))
					return nil
				}
			}

			if err := app.Assessment.Reset(ctx); err != nil {
				return err
			}
			if all {
				records, err := app.History.List(ctx)
				if err != nil {
					return err
				}
				for _, rec := range records {
					if err := app.History.Delete(ctx, rec.ID); err != nil {
						return err
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim(
					fmt.Sprintf("Assessment discarded, %d history record(s) removed.", len(records))))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Assessment discarded."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Reset without confirmation")
	cmd.Flags().BoolVar(&all, "all", false, "Also delete completed assessment history")
	return cmd
}
