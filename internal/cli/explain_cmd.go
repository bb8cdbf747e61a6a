package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/metis/internal/cli/formatter"
	"github.com/alexanderramin/metis/internal/domain"
	"github.com/spf13/cobra"
)

func newExplainCmd(app *App) *cobra.Command {
	var domainFlag string

	cmd := &cobra.Command{
		Use:   "explain [id]",
		Short: "Plain-language briefing on an assessment (latest by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rec, err := resolveRecord(ctx, app, args)
			if err != nil {
				return err
			}

			if domainFlag != "" {
				target, err := parseDomain(domainFlag)
				if err != nil {
					return err
				}
				n, err := app.Explain.AdviseDomain(ctx, *rec, target)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatNarrative(n))
				return nil
			}

			n, err := app.Explain.Explain(ctx, *rec)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatNarrative(n))
			return nil
		},
	}

	cmd.Flags().StringVar(&domainFlag, "domain", "", "Focus on one readiness domain (e.g. data_infrastructure)")
	return cmd
}

// parseDomain validates a --domain flag value against the known domains.
func parseDomain(s string) (domain.ReadinessDomain, error) {
	for _, d := range domain.AllDomains {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown domain %q, one of: %s", s, domainList())
}

func domainList() string {
	out := ""
	for i, d := range domain.AllDomains {
		if i > 0 {
			out += ", "
		}
		out += string(d)
	}
	return out
}
