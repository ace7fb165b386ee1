package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/breathe-sh/breathe/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run verification when a manifest file changes",
	Long: `Watch the current directory and re-run the full verification
whenever a registered manifest file (go.mod, Cargo.toml, package.json,
...) is created, modified, or removed. Changes are debounced so an
editor save burst triggers a single run. Stop with Ctrl-C.`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// First run happens immediately; failures keep the watch alive.
	report := func(ctx context.Context) {
		if err := runVerification(ctx); err != nil {
			fmt.Printf("%s %v\n", color.RedString("✗"), err)
		}
	}
	report(ctx)

	watcher, err := watch.New(workDir, report)
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}

	fmt.Printf("%s Watching %s for manifest changes\n", color.CyanString("…"), workDir)
	if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("watch: %w", err)
	}
	return nil
}
