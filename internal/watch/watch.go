// Package watch re-runs verification whenever a registered manifest
// file changes in the working directory.
package watch

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/breathe-sh/breathe/internal/ecosystem"
)

// debounce collapses editor save bursts into one trigger.
const debounce = 500 * time.Millisecond

// Watcher triggers a callback when a manifest file changes.
type Watcher struct {
	dir     string
	watcher *fsnotify.Watcher
	trigger func(ctx context.Context)
}

// New creates a Watcher over dir. The trigger callback runs after each
// debounced batch of manifest changes.
func New(dir string, trigger func(ctx context.Context)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}
	return &Watcher{dir: dir, watcher: fsw, trigger: trigger}, nil
}

// Run blocks, dispatching the trigger on manifest changes, until the
// context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !isManifest(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			w.trigger(ctx)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("[watch] watcher error: %v", err)
		}
	}
}

// isManifest reports whether path's base name matches any registered
// detection pattern.
func isManifest(path string) bool {
	base := filepath.Base(path)
	for _, rule := range ecosystem.Rules() {
		matched, err := filepath.Match(rule.Pattern, base)
		if err != nil {
			continue
		}
		if matched {
			return true
		}
	}
	return false
}
