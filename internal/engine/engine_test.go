package engine

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/breathe-sh/breathe/internal/catalog"
	"github.com/breathe-sh/breathe/internal/ecosystem"
)

func testEngine(t *testing.T) (*Engine, string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test hooks use sh")
	}
	dir := t.TempDir()
	eng := New(catalog.NewShellStrategy(runtime.GOOS),
		WithLogRoot(filepath.Join(dir, "breathes")),
		WithWorkDir(dir),
		WithReporter(NopReporter{}),
	)
	return eng, dir
}

func hook(eco ecosystem.Ecosystem, logFile, command string) catalog.Hook {
	return catalog.Hook{
		Ecosystem:   eco,
		Description: "test hook",
		Success:     "ok",
		Failure:     "failed",
		LogFile:     logFile,
		Command:     command,
	}
}

func TestVerifyEmptyHooks(t *testing.T) {
	eng, dir := testEngine(t)

	result, err := eng.Verify(context.Background(), ecosystem.Go, nil)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !result.AllSucceeded {
		t.Error("empty hook list should be vacuous success")
	}
	if result.ElapsedSeconds != 0 {
		t.Errorf("empty hook list should take 0 seconds, got %d", result.ElapsedSeconds)
	}
	if _, err := os.Stat(filepath.Join(dir, "breathes")); !os.IsNotExist(err) {
		t.Error("empty hook list must not create the log tree")
	}
}

func TestVerifyUnknownEcosystem(t *testing.T) {
	eng, dir := testEngine(t)

	hooks := []catalog.Hook{hook(ecosystem.Unknown, "x.log", "true")}
	result, err := eng.Verify(context.Background(), ecosystem.Unknown, hooks)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !result.AllSucceeded {
		t.Error("Unknown ecosystem should be vacuous success")
	}
	if _, err := os.Stat(filepath.Join(dir, "breathes")); !os.IsNotExist(err) {
		t.Error("Unknown ecosystem must not create the log tree")
	}
}

func TestVerifyCreatesLogFiles(t *testing.T) {
	eng, dir := testEngine(t)

	hooks := []catalog.Hook{
		hook(ecosystem.Go, "one.log", "echo hello"),
		hook(ecosystem.Go, "two.log", "echo world >&2"),
	}
	result, err := eng.Verify(context.Background(), ecosystem.Go, hooks)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !result.AllSucceeded {
		t.Error("both hooks should succeed")
	}
	if len(result.Hooks) != 2 {
		t.Fatalf("expected 2 hook results, got %d", len(result.Hooks))
	}

	for _, sub := range []string{"stdout", "stderr"} {
		entries, err := os.ReadDir(filepath.Join(dir, "breathes", "Go", sub))
		if err != nil {
			t.Fatalf("read %s dir: %v", sub, err)
		}
		if len(entries) != 2 {
			t.Errorf("%s should hold 2 files, got %d", sub, len(entries))
		}
	}

	out, err := os.ReadFile(filepath.Join(dir, "breathes", "Go", "stdout", "one.log"))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "hello\n" {
		t.Errorf("stdout capture = %q, want %q", out, "hello\n")
	}
	errOut, err := os.ReadFile(filepath.Join(dir, "breathes", "Go", "stderr", "two.log"))
	if err != nil {
		t.Fatal(err)
	}
	if string(errOut) != "world\n" {
		t.Errorf("stderr capture = %q, want %q", errOut, "world\n")
	}
}

func TestVerifyHookOrder(t *testing.T) {
	eng, dir := testEngine(t)

	marker := filepath.Join(dir, "marker")
	hooks := []catalog.Hook{
		hook(ecosystem.Go, "a.log", "touch "+marker),
		hook(ecosystem.Go, "b.log", "test -f "+marker),
	}
	result, err := eng.Verify(context.Background(), ecosystem.Go, hooks)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !result.AllSucceeded {
		t.Error("second hook must see the first hook's marker file")
	}
}

func TestVerifyNoShortCircuit(t *testing.T) {
	eng, dir := testEngine(t)

	hooks := []catalog.Hook{
		hook(ecosystem.Go, "a.log", "true"),
		hook(ecosystem.Go, "b.log", "false"),
		hook(ecosystem.Go, "c.log", "true"),
	}
	result, err := eng.Verify(context.Background(), ecosystem.Go, hooks)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if result.AllSucceeded {
		t.Error("a failing hook must fail the aggregate")
	}
	if len(result.Hooks) != 3 {
		t.Fatalf("all 3 hooks should run despite the failure, got %d results", len(result.Hooks))
	}
	if !result.Hooks[0].Succeeded || result.Hooks[1].Succeeded || !result.Hooks[2].Succeeded {
		t.Errorf("unexpected per-hook outcomes: %+v", result.Hooks)
	}

	entries, err := os.ReadDir(filepath.Join(dir, "breathes", "Go", "stdout"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Errorf("all 3 log files should exist, got %d", len(entries))
	}
}

func TestVerifyTruncatesPriorLogs(t *testing.T) {
	eng, dir := testEngine(t)

	first := []catalog.Hook{hook(ecosystem.Go, "out.log", "echo first run output")}
	if _, err := eng.Verify(context.Background(), ecosystem.Go, first); err != nil {
		t.Fatal(err)
	}

	second := []catalog.Hook{hook(ecosystem.Go, "out.log", "echo second")}
	if _, err := eng.Verify(context.Background(), ecosystem.Go, second); err != nil {
		t.Fatal(err)
	}

	out, err := os.ReadFile(filepath.Join(dir, "breathes", "Go", "stdout", "out.log"))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "second\n" {
		t.Errorf("log should be truncated per run, got %q", out)
	}
}

func TestVerifySpawnFailureIsHookFailure(t *testing.T) {
	eng, _ := testEngine(t)

	hooks := []catalog.Hook{
		hook(ecosystem.Go, "a.log", "this-command-does-not-exist-anywhere"),
		hook(ecosystem.Go, "b.log", "true"),
	}
	result, err := eng.Verify(context.Background(), ecosystem.Go, hooks)
	if err != nil {
		t.Fatalf("a failing command is not an engine error: %v", err)
	}
	if result.AllSucceeded {
		t.Error("unresolvable command should fail its hook")
	}
	if len(result.Hooks) != 2 {
		t.Fatalf("the second hook should still run, got %d results", len(result.Hooks))
	}
	if !result.Hooks[1].Succeeded {
		t.Error("second hook should succeed")
	}
}
