package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexanderramin/metis/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export [id]",
		Short: "Export a completed assessment as JSON (latest by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := resolveRecord(context.Background(), app, args)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(rec, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal assessment: %w", err)
			}
			data = append(data, '\n')

			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Exported "+rec.ID[:8]+" to "+outPath))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write JSON to a file instead of stdout")
	return cmd
}
