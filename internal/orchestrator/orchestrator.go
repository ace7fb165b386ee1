// Package orchestrator fans verification out across detected
// ecosystems and folds the results into a single run verdict.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/breathe-sh/breathe/internal/catalog"
	"github.com/breathe-sh/breathe/internal/ecosystem"
	"github.com/breathe-sh/breathe/internal/engine"
	"github.com/breathe-sh/breathe/pkg/models"
)

// ErrNoEcosystem is returned when detection finds nothing to verify.
var ErrNoEcosystem = errors.New("no ecosystem detected")

// HookSource supplies hook lists and the shell strategy they were
// built for. *catalog.Catalog is the production implementation; tests
// substitute fixed tables.
type HookSource interface {
	Hooks(eco ecosystem.Ecosystem) []catalog.Hook
	Strategy() catalog.ShellStrategy
}

// Config contains the orchestrator's collaborators and limits.
type Config struct {
	// WorkDir is the directory to detect and verify. Empty means the
	// process's current directory.
	WorkDir string
	// LogRoot is the log tree root, relative to WorkDir.
	LogRoot string
	// MaxWorkers bounds concurrent ecosystem verifications.
	// Zero or negative means one worker per detected ecosystem.
	MaxWorkers int
	// Disabled lists ecosystems to skip even when detected.
	Disabled []ecosystem.Ecosystem
	// Catalog supplies each ecosystem's hook list. Defaults to the
	// host platform catalog.
	Catalog HookSource
	// Reporter receives per-hook progress events.
	Reporter engine.Reporter
}

// Orchestrator runs the detection-to-execution pipeline.
type Orchestrator struct {
	cfg Config
}

// New creates an Orchestrator.
func New(cfg Config) *Orchestrator {
	if cfg.Catalog == nil {
		cfg.Catalog = catalog.Default()
	}
	if cfg.LogRoot == "" {
		cfg.LogRoot = engine.DefaultLogRoot
	}
	if cfg.Reporter == nil {
		cfg.Reporter = engine.ConsoleReporter{}
	}
	return &Orchestrator{cfg: cfg}
}

// Run detects the working directory's ecosystems and verifies them
// all, one worker per ecosystem, waiting for every worker before
// aggregating. Detection finding nothing is fatal (ErrNoEcosystem)
// and creates no log tree. A fatal filesystem error inside one
// ecosystem fails that ecosystem's row only; sibling workers keep
// running and the summary stays complete.
func (o *Orchestrator) Run(ctx context.Context) (*models.RunResult, error) {
	start := time.Now()
	result := &models.RunResult{
		ID:        uuid.New().String()[:8],
		StartedAt: start,
	}

	detected := ecosystem.Detect(o.cfg.WorkDir)
	// A glob matching several files reports its ecosystem once per
	// file; scheduling dedupes so an ecosystem never races itself on
	// the same log paths.
	detected = ecosystem.Dedupe(detected)
	detected = o.filterDisabled(detected)
	if len(detected) == 0 {
		return nil, ErrNoEcosystem
	}

	results := make([]models.EcosystemResult, len(detected))

	workers := o.cfg.MaxWorkers
	if workers <= 0 || workers > len(detected) {
		workers = len(detected)
	}
	sem := make(chan struct{}, workers)

	var wg sync.WaitGroup
	for i, eco := range detected {
		wg.Add(1)
		go func(slot int, eco ecosystem.Ecosystem) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[slot] = o.verifyOne(ctx, eco)
		}(i, eco)
	}
	wg.Wait()

	result.Ecosystems = results
	result.ElapsedSeconds = uint64(time.Since(start).Seconds())
	return result, nil
}

// verifyOne runs one ecosystem's hooks and never lets a worker
// failure escape: a panic or fatal filesystem error becomes a failed
// row in the aggregate instead of a dropped result.
func (o *Orchestrator) verifyOne(ctx context.Context, eco ecosystem.Ecosystem) (res models.EcosystemResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[orchestrator] %s worker panicked: %v", eco, r)
			res = models.EcosystemResult{
				Ecosystem: eco.String(),
				Err:       fmt.Sprintf("panic: %v", r),
			}
		}
	}()

	eng := engine.New(o.cfg.Catalog.Strategy(),
		engine.WithLogRoot(o.logRoot()),
		engine.WithWorkDir(o.cfg.WorkDir),
		engine.WithReporter(o.cfg.Reporter),
	)
	res, err := eng.Verify(ctx, eco, o.cfg.Catalog.Hooks(eco))
	if err != nil {
		log.Printf("[orchestrator] %s verification aborted: %v", eco, err)
	}
	return res
}

func (o *Orchestrator) logRoot() string {
	if o.cfg.WorkDir == "" {
		return o.cfg.LogRoot
	}
	return filepath.Join(o.cfg.WorkDir, o.cfg.LogRoot)
}

func (o *Orchestrator) filterDisabled(detected []ecosystem.Ecosystem) []ecosystem.Ecosystem {
	if len(o.cfg.Disabled) == 0 {
		return detected
	}
	disabled := make(map[ecosystem.Ecosystem]bool, len(o.cfg.Disabled))
	for _, eco := range o.cfg.Disabled {
		disabled[eco] = true
	}
	var out []ecosystem.Ecosystem
	for _, eco := range detected {
		if !disabled[eco] {
			out = append(out, eco)
		}
	}
	return out
}
