package models

import "time"

// HookResult records the outcome of a single verification hook.
type HookResult struct {
	// Description is the hook's human-readable description.
	Description string `json:"description"`
	// Ran indicates whether the hook's process was actually spawned.
	Ran bool `json:"ran"`
	// Succeeded indicates the process exited with status 0.
	Succeeded bool `json:"succeeded"`
	// StdoutPath is the file the hook's stdout was captured to.
	StdoutPath string `json:"stdout_path,omitempty"`
	// StderrPath is the file the hook's stderr was captured to.
	StderrPath string `json:"stderr_path,omitempty"`
}

// EcosystemResult aggregates the hook outcomes for one ecosystem.
type EcosystemResult struct {
	// Ecosystem is the canonical ecosystem name.
	Ecosystem string `json:"ecosystem"`
	// AllSucceeded is the logical AND over all hook results.
	// Vacuously true when the ecosystem has no hooks.
	AllSucceeded bool `json:"all_succeeded"`
	// ElapsedSeconds is the wall-clock duration of the ecosystem's run.
	ElapsedSeconds uint64 `json:"elapsed_seconds"`
	// Hooks holds the per-hook outcomes in catalog order.
	Hooks []HookResult `json:"hooks,omitempty"`
	// Err records a fatal filesystem error that aborted this
	// ecosystem's remaining hooks, if any.
	Err string `json:"error,omitempty"`
}

// RunResult is the write-once record of a full verification run.
type RunResult struct {
	// ID is a short unique identifier for this run.
	ID string `json:"id"`
	// StartedAt is when detection began.
	StartedAt time.Time `json:"started_at"`
	// ElapsedSeconds is the total wall-clock duration of the run.
	ElapsedSeconds uint64 `json:"elapsed_seconds"`
	// Ecosystems holds per-ecosystem results in completion-independent
	// detection order.
	Ecosystems []EcosystemResult `json:"ecosystems"`
}

// Success returns the logical AND over all ecosystem results.
func (r *RunResult) Success() bool {
	for _, eco := range r.Ecosystems {
		if !eco.AllSucceeded {
			return false
		}
	}
	return true
}

// Failed returns the names of ecosystems whose verification failed.
func (r *RunResult) Failed() []string {
	var failed []string
	for _, eco := range r.Ecosystems {
		if !eco.AllSucceeded {
			failed = append(failed, eco.Ecosystem)
		}
	}
	return failed
}
