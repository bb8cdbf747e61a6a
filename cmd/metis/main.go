package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/metis/internal/cli"
	"github.com/alexanderramin/metis/internal/config"
	"github.com/alexanderramin/metis/internal/db"
	"github.com/alexanderramin/metis/internal/intelligence"
	"github.com/alexanderramin/metis/internal/llm"
	"github.com/alexanderramin/metis/internal/repository"
	"github.com/alexanderramin/metis/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cfg.ColorEnabled() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	snapshotRepo := repository.NewSQLiteSnapshotRepo(database)
	assessmentRepo := repository.NewSQLiteAssessmentRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var svcObserver service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.Debug {
		svcObserver = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Assessment: service.NewAssessmentService(snapshotRepo, uow, svcObserver),
		History:    service.NewHistoryService(assessmentRepo),
	}

	// Detect interactive terminal for form-based entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Wire the LLM-backed explain service; without a reachable model it
	// degrades to deterministic narratives.
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		app.Explain = intelligence.NewExplainService(llm.NewOllamaClient(llmCfg, observer))
	} else {
		app.Explain = intelligence.NewExplainService(nil)
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
