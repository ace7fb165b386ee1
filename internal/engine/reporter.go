package engine

import (
	"fmt"

	"github.com/fatih/color"
)

// Reporter receives per-hook progress events. The engine reports every
// hook's outcome individually; nothing is dropped on failure.
type Reporter interface {
	// HookStart is called before a hook's process is spawned.
	HookStart(description string)
	// HookSuccess is called when a hook exits with status 0.
	HookSuccess(message string)
	// HookFailure is called when a hook fails to spawn or exits
	// non-zero.
	HookFailure(message string)
}

// ConsoleReporter prints colored status lines to stdout.
type ConsoleReporter struct{}

// HookStart prints the hook description.
func (ConsoleReporter) HookStart(description string) {
	fmt.Printf("  %s %s\n", color.WhiteString("…"), description)
}

// HookSuccess prints a green checkmark line.
func (ConsoleReporter) HookSuccess(message string) {
	fmt.Printf("  %s %s\n", color.GreenString("✓"), color.CyanString(message))
}

// HookFailure prints a red marker line.
func (ConsoleReporter) HookFailure(message string) {
	fmt.Printf("  %s %s\n", color.RedString("!"), color.YellowString(message))
}

// NopReporter discards all events. Used in tests and watch mode
// re-runs where per-hook output would interleave across workers.
type NopReporter struct{}

// HookStart implements Reporter.
func (NopReporter) HookStart(string) {}

// HookSuccess implements Reporter.
func (NopReporter) HookSuccess(string) {}

// HookFailure implements Reporter.
func (NopReporter) HookFailure(string) {}
