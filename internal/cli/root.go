package cli

import (
	"github.com/alexanderramin/metis/internal/intelligence"
	"github.com/alexanderramin/metis/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Assessment service.AssessmentService
	History    service.HistoryService
	Explain    intelligence.ExplainService

	// IsInteractive reports whether stdin/stdout are attached to a terminal.
	// Commands that need forms refuse to run when it returns false.
	IsInteractive func() bool
}

// interactive is a nil-safe accessor; a missing hook means non-interactive.
func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "metis" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "metis",
		Short: "AI readiness self-assessment for organizations",
	}

	root.AddCommand(
		newAssessCmd(app),
		newResultCmd(app),
		newHistoryCmd(app),
		newExportCmd(app),
		newExplainCmd(app),
		newResetCmd(app),
	)

	return root
}
