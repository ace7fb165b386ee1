package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/breathe-sh/breathe/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent verification runs",
	Long: `List the most recent verification runs recorded in the
project-local history database (.breathe/history.db), newest first,
with each run's per-ecosystem outcomes.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Number of runs to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	store, err := history.OpenProject(workDir)
	if err != nil {
		return fmt.Errorf("open history database: %w", err)
	}
	defer store.Close()
	if err := store.Migrate(); err != nil {
		return fmt.Errorf("migrate history database: %w", err)
	}

	runs, err := store.ListRuns(historyLimit)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("No recorded runs.")
		return nil
	}

	for _, run := range runs {
		verdict := color.GreenString("passed")
		if !run.Success {
			verdict = color.RedString("failed")
		}
		fmt.Printf("%s  %s  %s  %ds\n",
			run.ID, run.StartedAt.Local().Format("2006-01-02 15:04:05"), verdict, run.ElapsedSeconds)
		for _, eco := range run.Ecosystems {
			mark := color.GreenString("✓")
			if !eco.AllSucceeded {
				mark = color.RedString("✗")
			}
			fmt.Printf("    %s %s (%ds)\n", mark, eco.Ecosystem, eco.ElapsedSeconds)
		}
	}
	return nil
}
