package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/breathe-sh/breathe/internal/config"
	"github.com/breathe-sh/breathe/internal/ecosystem"
	"github.com/breathe-sh/breathe/internal/history"
	"github.com/breathe-sh/breathe/internal/orchestrator"
	"github.com/breathe-sh/breathe/pkg/models"
)

var rootWorkers int

var rootCmd = &cobra.Command{
	Use:   "breathe",
	Short: "Multi-ecosystem project verification runner",
	Long: `Breathe detects which ecosystems are present in the current
directory (by their manifest files: Cargo.toml, package.json, go.mod,
pom.xml, ...) and runs each ecosystem's verification hooks — build,
test, lint, audit, format check, doc generation — as subprocesses.

Ecosystems are verified in parallel; hooks within one ecosystem run in
order, since later steps may depend on earlier artifacts. Every hook's
output is captured under breathes/<Ecosystem>/{stdout,stderr}/ and the
run ends with a summary table and a pass/fail exit code.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerification(cmd.Context())
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().IntVar(&rootWorkers, "workers", 0, "Max concurrent ecosystems (0 = one per ecosystem)")

	rootCmd.AddCommand(commitCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// runVerification is the default action: detect, verify, summarize.
func runVerification(ctx context.Context) error {
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := config.Load(workDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	workers := cfg.MaxWorkers
	if rootWorkers > 0 {
		workers = rootWorkers
	}

	orch := orchestrator.New(orchestrator.Config{
		WorkDir:    workDir,
		LogRoot:    cfg.LogRoot,
		MaxWorkers: workers,
		Disabled:   parseDisabled(cfg.Disabled),
	})

	result, err := orch.Run(ctx)
	if err != nil {
		if errors.Is(err, orchestrator.ErrNoEcosystem) {
			return fmt.Errorf("no ecosystem detected in %s", workDir)
		}
		return err
	}

	fmt.Println(orchestrator.Summary(result))

	if cfg.History {
		if err := recordRun(workDir, result); err != nil {
			// History is best effort; a broken database must not
			// change the verification verdict.
			fmt.Fprintf(os.Stderr, "warning: record run history: %v\n", err)
		}
	}

	if !result.Success() {
		return fmt.Errorf("some checks failed, see %s/ for logs", cfg.LogRoot)
	}
	return nil
}

func recordRun(workDir string, result *models.RunResult) error {
	store, err := history.OpenProject(workDir)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.Migrate(); err != nil {
		return err
	}
	return store.RecordRun(result)
}

func parseDisabled(names []string) []ecosystem.Ecosystem {
	var out []ecosystem.Ecosystem
	for _, name := range names {
		if eco := ecosystem.Parse(name); eco != ecosystem.Unknown {
			out = append(out, eco)
		}
	}
	return out
}
