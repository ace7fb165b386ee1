// Package catalog holds the per-ecosystem verification hook tables and
// the platform shell strategy used to run them.
package catalog

import (
	"runtime"

	"github.com/breathe-sh/breathe/internal/ecosystem"
)

// Hook is one verification step bound to an ecosystem. Hooks are
// immutable values constructed from the static tables in this package.
type Hook struct {
	// Ecosystem owns this hook.
	Ecosystem ecosystem.Ecosystem
	// Description is shown while the hook runs.
	Description string
	// Success is the message printed when the hook passes.
	Success string
	// Failure is the message printed when the hook fails.
	Failure string
	// LogFile is the filename the hook's output is captured under,
	// inside both the stdout/ and stderr/ log subdirectories.
	LogFile string
	// Command is the shell command line, passed verbatim to the
	// platform shell.
	Command string
}

// ShellStrategy captures every platform-conditional choice at catalog
// build time, so the execution engine never consults the host OS.
type ShellStrategy struct {
	// Shell is the command interpreter binary (sh or cmd).
	Shell string
	// Flag is the interpreter's run-a-command-string flag (-c or /C).
	Flag string
	// GradleWrapper is the wrapper script name (gradlew or gradlew.bat).
	GradleWrapper string
}

// NewShellStrategy resolves the strategy for the given GOOS value.
func NewShellStrategy(goos string) ShellStrategy {
	if goos == "windows" {
		return ShellStrategy{Shell: "cmd", Flag: "/C", GradleWrapper: "gradlew.bat"}
	}
	return ShellStrategy{Shell: "sh", Flag: "-c", GradleWrapper: "gradlew"}
}

// Invocation returns the argv used to run a hook command through the
// platform shell.
func (s ShellStrategy) Invocation(command string) (name string, args []string) {
	return s.Shell, []string{s.Flag, command}
}

// Catalog is the registry of ordered hook lists keyed by ecosystem,
// built once at startup. Lookups never fail: ecosystems without hooks
// (Unknown, R) yield an empty list.
type Catalog struct {
	strategy ShellStrategy
	hooks    map[ecosystem.Ecosystem][]Hook
}

// New builds the catalog for the given shell strategy.
func New(strategy ShellStrategy) *Catalog {
	c := &Catalog{
		strategy: strategy,
		hooks:    make(map[ecosystem.Ecosystem][]Hook),
	}
	c.hooks[ecosystem.Rust] = rustHooks()
	c.hooks[ecosystem.Typescript] = typescriptHooks()
	c.hooks[ecosystem.Javascript] = javascriptHooks()
	c.hooks[ecosystem.Haskell] = haskellHooks()
	c.hooks[ecosystem.D] = dHooks()
	c.hooks[ecosystem.Maven] = mavenHooks()
	c.hooks[ecosystem.Gradle] = gradleHooks(strategy.GradleWrapper)
	c.hooks[ecosystem.Kotlin] = kotlinHooks()
	c.hooks[ecosystem.Go] = goHooks()
	c.hooks[ecosystem.Python] = pythonHooks()
	c.hooks[ecosystem.Php] = phpHooks()
	c.hooks[ecosystem.Ruby] = rubyHooks()
	c.hooks[ecosystem.CMake] = cmakeHooks()
	c.hooks[ecosystem.CSharp] = csharpHooks()
	c.hooks[ecosystem.Swift] = swiftHooks()
	c.hooks[ecosystem.Dart] = dartHooks()
	c.hooks[ecosystem.Elixir] = elixirHooks()
	return c
}

// Default builds the catalog for the host platform.
func Default() *Catalog {
	return New(NewShellStrategy(runtime.GOOS))
}

// Strategy returns the shell strategy the catalog was built with.
func (c *Catalog) Strategy() ShellStrategy {
	return c.strategy
}

// Hooks returns the ordered hook list for an ecosystem. The returned
// slice is a copy; callers can't disturb the registry.
func (c *Catalog) Hooks(eco ecosystem.Ecosystem) []Hook {
	hooks := c.hooks[eco]
	out := make([]Hook, len(hooks))
	copy(out, hooks)
	return out
}
