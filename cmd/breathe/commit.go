package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/breathe-sh/breathe/internal/commit"
	"github.com/breathe-sh/breathe/internal/config"
	"github.com/breathe-sh/breathe/internal/dict"
)

var commitNoVerify bool

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Author a conventional commit message interactively",
	Long: `Walk through the fields of a conventional commit message with
validation at every step: commit type (feat, fix, docs, ...), a
summary of at most 50 characters without a trailing period, and an
optional body wrapped at 72 characters. Summary and body are spell
checked against the configured dictionary.

By default the project is verified first and the commit is created
with git; use --no-verify to skip verification.`,
	RunE: runCommit,
}

func init() {
	commitCmd.Flags().BoolVar(&commitNoVerify, "no-verify", false, "Skip verification before committing")
}

func runCommit(cmd *cobra.Command, args []string) error {
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	if !commitNoVerify {
		if err := runVerification(cmd.Context()); err != nil {
			return err
		}
	}

	cfg, err := config.Load(workDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	d := dict.Default()
	if cfg.Dictionary != "" {
		if loaded, err := dict.Load(cfg.Dictionary); err == nil {
			d = loaded
		}
	}

	form := commit.NewForm(d)
	final, err := tea.NewProgram(form).Run()
	if err != nil {
		return fmt.Errorf("run commit form: %w", err)
	}
	result, ok := final.(*commit.Form)
	if !ok || result.Aborted {
		return fmt.Errorf("commit aborted")
	}

	if err := result.Message.Commit(cmd.Context(), workDir); err != nil {
		return err
	}
	fmt.Printf("%s Committed: %s\n", color.GreenString("✓"), result.Message.Render())
	return nil
}
