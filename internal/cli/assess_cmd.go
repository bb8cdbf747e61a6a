package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/metis/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newAssessCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Start or resume an AI readiness assessment",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("assess needs an interactive terminal")
			}
			ctx := context.Background()

			resumed, err := app.Assessment.Resume(ctx)
			if err != nil {
				return err
			}

			if app.Assessment.Profile() == nil {
				var in profileInput
				if err := profileForm(&in).Run(); err != nil {
					return err
				}
				profile, err := in.toProfile()
				if err != nil {
					return err
				}
				if err := app.Assessment.StartProfile(ctx, profile); err != nil {
					return err
				}
			} else if resumed && !app.Assessment.IsComplete() {
				answered, total := app.Assessment.Progress()
				fmt.Println(formatter.Dim("Resuming saved assessment."))
				fmt.Println(formatter.FormatProgress(answered, total))
			}

			if !app.Assessment.IsComplete() {
				if _, err := tea.NewProgram(newAssessModel(app)).Run(); err != nil {
					return err
				}
			}

			if app.Assessment.IsComplete() {
				profile := app.Assessment.Profile()
				result := app.Assessment.Result()
				fmt.Println(formatter.FormatResult(*profile, *result))
				fmt.Println(formatter.Dim("Saved. Run `metis explain` for a plain-language briefing."))
				return nil
			}

			answered, total := app.Assessment.Progress()
			fmt.Println(formatter.Dim(fmt.Sprintf(
				"Progress saved (%d of %d answered). Run `metis assess` to continue.", answered, total)))
			return nil
		},
	}

	return cmd
}
