package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/breathe-sh/breathe/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the configuration breathe would use in the current
directory, after merging .breathe.yaml, the XDG config file, and
BREATHE_* environment variables over the defaults.`,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := config.Load(workDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	fmt.Printf("log_root:    %s\n", cfg.LogRoot)
	fmt.Printf("max_workers: %d\n", cfg.MaxWorkers)
	fmt.Printf("history:     %v\n", cfg.History)
	disabled := "(none)"
	if len(cfg.Disabled) > 0 {
		disabled = strings.Join(cfg.Disabled, ", ")
	}
	fmt.Printf("disabled:    %s\n", disabled)
	dictionary := "(default)"
	if cfg.Dictionary != "" {
		dictionary = cfg.Dictionary
	}
	fmt.Printf("dictionary:  %s\n", dictionary)
	return nil
}
