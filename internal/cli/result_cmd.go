package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/metis/internal/cli/formatter"
	"github.com/alexanderramin/metis/internal/domain"
	"github.com/alexanderramin/metis/internal/repository"
	"github.com/spf13/cobra"
)

func newResultCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "result [id]",
		Short: "Show a completed assessment report (latest by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := resolveRecord(context.Background(), app, args)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatResult(rec.Profile, rec.Result))
			return nil
		},
	}

	return cmd
}

// resolveRecord fetches the record named by args[0], or the most recent one
// when no argument is given. Short ID prefixes are accepted.
func resolveRecord(ctx context.Context, app *App, args []string) (*domain.AssessmentRecord, error) {
	if len(args) == 0 {
		rec, err := app.History.Latest(ctx)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("no completed assessments yet, run `metis assess` first")
		}
		return rec, err
	}

	rec, err := app.History.Get(ctx, args[0])
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	// Fall back to prefix matching so truncated IDs from `metis history`
	// can be pasted directly.
	records, listErr := app.History.List(ctx)
	if listErr != nil {
		return nil, listErr
	}
	var match *domain.AssessmentRecord
	for _, r := range records {
		if len(args[0]) >= 4 && strings.HasPrefix(r.ID, args[0]) {
			if match != nil {
				return nil, fmt.Errorf("id prefix %q is ambiguous", args[0])
			}
			match = r
		}
	}
	if match == nil {
		return nil, fmt.Errorf("assessment %q: %w", args[0], repository.ErrNotFound)
	}
	return match, nil
}
