package catalog

import (
	"strings"
	"testing"

	"github.com/breathe-sh/breathe/internal/ecosystem"
)

func posixCatalog() *Catalog {
	return New(NewShellStrategy("linux"))
}

func TestHooksUnknownEmpty(t *testing.T) {
	c := posixCatalog()
	if hooks := c.Hooks(ecosystem.Unknown); len(hooks) != 0 {
		t.Errorf("Unknown should have no hooks, got %d", len(hooks))
	}
	if hooks := c.Hooks(ecosystem.R); len(hooks) != 0 {
		t.Errorf("R should have no hooks, got %d", len(hooks))
	}
}

func TestHookCounts(t *testing.T) {
	c := posixCatalog()
	counts := map[ecosystem.Ecosystem]int{
		ecosystem.Rust:       8,
		ecosystem.Typescript: 6,
		ecosystem.Javascript: 4,
		ecosystem.Haskell:    3,
		ecosystem.D:          2,
		ecosystem.Maven:      4,
		ecosystem.Gradle:     3,
		ecosystem.Kotlin:     1,
		ecosystem.Go:         2,
		ecosystem.Python:     2,
		ecosystem.Php:        4,
		ecosystem.Ruby:       3,
		ecosystem.CMake:      3,
		ecosystem.CSharp:     5,
		ecosystem.Swift:      5,
		ecosystem.Dart:       4,
		ecosystem.Elixir:     5,
	}
	for eco, want := range counts {
		if got := len(c.Hooks(eco)); got != want {
			t.Errorf("%s: expected %d hooks, got %d", eco, want, got)
		}
	}
}

func TestGoHooks(t *testing.T) {
	hooks := posixCatalog().Hooks(ecosystem.Go)
	if hooks[0].Command != "go test -v" {
		t.Errorf("first Go hook should be the test run, got %q", hooks[0].Command)
	}
	if hooks[1].Command != "go list -u -m -json all" {
		t.Errorf("second Go hook should be the audit, got %q", hooks[1].Command)
	}
	if hooks[0].LogFile != "test.log" || hooks[1].LogFile != "audit.log" {
		t.Errorf("unexpected log filenames: %q, %q", hooks[0].LogFile, hooks[1].LogFile)
	}
}

func TestTypescriptIncludesJavascript(t *testing.T) {
	hooks := posixCatalog().Hooks(ecosystem.Typescript)
	for i := 0; i < 4; i++ {
		if hooks[i].Ecosystem != ecosystem.Javascript {
			t.Errorf("hook %d should carry the Javascript ecosystem, got %s", i, hooks[i].Ecosystem)
		}
	}
	if hooks[4].Command != "npx tsc --noEmit" {
		t.Errorf("fifth Typescript hook should type-check, got %q", hooks[4].Command)
	}
	if hooks[5].Command != "npx prettier --check ." {
		t.Errorf("sixth Typescript hook should check formatting, got %q", hooks[5].Command)
	}
}

func TestGradleWrapperPerPlatform(t *testing.T) {
	posix := New(NewShellStrategy("linux")).Hooks(ecosystem.Gradle)
	for _, hook := range posix {
		if !strings.HasPrefix(hook.Command, "gradlew ") {
			t.Errorf("POSIX gradle command should use gradlew, got %q", hook.Command)
		}
	}

	windows := New(NewShellStrategy("windows")).Hooks(ecosystem.Gradle)
	for _, hook := range windows {
		if !strings.HasPrefix(hook.Command, "gradlew.bat ") {
			t.Errorf("Windows gradle command should use gradlew.bat, got %q", hook.Command)
		}
	}
}

func TestShellStrategyInvocation(t *testing.T) {
	name, args := NewShellStrategy("linux").Invocation("make test")
	if name != "sh" || len(args) != 2 || args[0] != "-c" || args[1] != "make test" {
		t.Errorf("POSIX invocation = %s %v", name, args)
	}

	name, args = NewShellStrategy("windows").Invocation("make test")
	if name != "cmd" || len(args) != 2 || args[0] != "/C" || args[1] != "make test" {
		t.Errorf("Windows invocation = %s %v", name, args)
	}
}

func TestHooksReturnsCopy(t *testing.T) {
	c := posixCatalog()
	hooks := c.Hooks(ecosystem.Go)
	hooks[0].Command = "tampered"
	if c.Hooks(ecosystem.Go)[0].Command == "tampered" {
		t.Error("mutating a returned hook list must not affect the registry")
	}
}

func TestHookMessagesPresent(t *testing.T) {
	c := posixCatalog()
	for _, eco := range ecosystem.All() {
		for i, hook := range c.Hooks(eco) {
			if hook.Description == "" || hook.Success == "" || hook.Failure == "" {
				t.Errorf("%s hook %d is missing a message", eco, i)
			}
			if hook.LogFile == "" || hook.Command == "" {
				t.Errorf("%s hook %d is missing its log file or command", eco, i)
			}
		}
	}
}
