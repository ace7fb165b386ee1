// Package engine runs an ecosystem's verification hooks as external
// subprocesses, capturing their output into the on-disk log tree.
package engine

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/breathe-sh/breathe/internal/catalog"
	"github.com/breathe-sh/breathe/internal/ecosystem"
	"github.com/breathe-sh/breathe/pkg/models"
)

// DefaultLogRoot is the working-directory-relative root of the log
// tree. The tree is never cleaned by the engine; cleanup is an
// external concern.
const DefaultLogRoot = "breathes"

// Engine executes one ecosystem's hook list sequentially. It is
// platform-agnostic: every OS-conditional choice lives in the shell
// strategy resolved at catalog build time.
type Engine struct {
	strategy catalog.ShellStrategy
	logRoot  string
	workDir  string
	reporter Reporter
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogRoot overrides the log tree root directory.
func WithLogRoot(root string) Option {
	return func(e *Engine) { e.logRoot = root }
}

// WithWorkDir sets the directory hook commands run in. Defaults to the
// process's current directory.
func WithWorkDir(dir string) Option {
	return func(e *Engine) { e.workDir = dir }
}

// WithReporter overrides the per-hook progress reporter.
func WithReporter(r Reporter) Option {
	return func(e *Engine) { e.reporter = r }
}

// New creates an Engine bound to a shell strategy.
func New(strategy catalog.ShellStrategy, opts ...Option) *Engine {
	e := &Engine{
		strategy: strategy,
		logRoot:  DefaultLogRoot,
		reporter: ConsoleReporter{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Verify runs the hook list in catalog order, one process at a time.
// Later hooks may depend on artifacts produced by earlier ones, so
// there is no intra-ecosystem parallelism and no short-circuit on hook
// failure: a failing hook is recorded and the remaining hooks still
// run, so the report never hides whether later steps would also have
// failed.
//
// An empty hook list, or the Unknown ecosystem, is vacuous success:
// Verify returns immediately without touching the filesystem. Only
// unrecoverable filesystem errors (log directory or file creation)
// return a non-nil error, aborting the ecosystem's remaining hooks.
func (e *Engine) Verify(ctx context.Context, eco ecosystem.Ecosystem, hooks []catalog.Hook) (models.EcosystemResult, error) {
	result := models.EcosystemResult{
		Ecosystem:    eco.String(),
		AllSucceeded: true,
	}
	if eco == ecosystem.Unknown || len(hooks) == 0 {
		return result, nil
	}

	start := time.Now()
	for _, hook := range hooks {
		hookResult, err := e.runHook(ctx, hook)
		if err != nil {
			result.AllSucceeded = false
			result.Err = err.Error()
			result.ElapsedSeconds = uint64(time.Since(start).Seconds())
			return result, err
		}
		if !hookResult.Succeeded {
			result.AllSucceeded = false
		}
		result.Hooks = append(result.Hooks, hookResult)
	}
	result.ElapsedSeconds = uint64(time.Since(start).Seconds())
	return result, nil
}

// runHook spawns one hook's command through the platform shell with
// stdout and stderr redirected to freshly truncated log files. A
// non-zero exit or a spawn failure is a hook failure, not an engine
// error; only filesystem failures propagate.
//
// Log paths are keyed by the hook's own ecosystem, so shared hooks
// (the Javascript steps inside the Typescript list) land under the
// directory of the ecosystem that declared them.
func (e *Engine) runHook(ctx context.Context, hook catalog.Hook) (models.HookResult, error) {
	result := models.HookResult{Description: hook.Description}

	ecoDir := filepath.Join(e.logRoot, hook.Ecosystem.String())
	stdoutDir := filepath.Join(ecoDir, "stdout")
	stderrDir := filepath.Join(ecoDir, "stderr")
	for _, dir := range []string{stdoutDir, stderrDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return result, fmt.Errorf("create log directory %s: %w", dir, err)
		}
	}

	stdoutPath := filepath.Join(stdoutDir, hook.LogFile)
	stderrPath := filepath.Join(stderrDir, hook.LogFile)
	stdout, err := os.Create(stdoutPath)
	if err != nil {
		return result, fmt.Errorf("create stdout log %s: %w", stdoutPath, err)
	}
	defer stdout.Close()
	stderr, err := os.Create(stderrPath)
	if err != nil {
		return result, fmt.Errorf("create stderr log %s: %w", stderrPath, err)
	}
	defer stderr.Close()

	result.StdoutPath = stdoutPath
	result.StderrPath = stderrPath

	e.reporter.HookStart(hook.Description)

	name, args := e.strategy.Invocation(hook.Command)
	cmd := exec.CommandContext(ctx, name, args...)
	if e.workDir != "" {
		cmd.Dir = e.workDir
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	// Exit status 0 is the only success signal; the engine never
	// interprets the tool's output.
	if err := cmd.Run(); err != nil {
		result.Ran = cmd.Process != nil
		e.reporter.HookFailure(hook.Failure)
		return result, nil
	}
	result.Ran = true
	result.Succeeded = true
	e.reporter.HookSuccess(hook.Success)
	return result, nil
}
