package ecosystem

import (
	"os"
	"path/filepath"
)

// Detect scans dir against the registry and returns the detected
// ecosystems in registry order.
//
// A glob rule records one detection per regular file it matches, so an
// ecosystem whose pattern matches multiple files (two .csproj files,
// say) appears more than once in the result. Callers that need
// uniqueness must go through Dedupe.
func Detect(dir string) []Ecosystem {
	var detected []Ecosystem
	for _, rule := range rules {
		if rule.Glob {
			detected = append(detected, matchGlob(dir, rule)...)
			continue
		}
		if isFile(filepath.Join(dir, rule.Pattern)) {
			detected = append(detected, rule.Ecosystem)
		}
	}
	return detected
}

// Dedupe removes repeated ecosystems, keeping the first occurrence so
// detection order is preserved.
func Dedupe(detected []Ecosystem) []Ecosystem {
	seen := make(map[Ecosystem]bool, len(detected))
	var out []Ecosystem
	for _, eco := range detected {
		if seen[eco] {
			continue
		}
		seen[eco] = true
		out = append(out, eco)
	}
	return out
}

// matchGlob expands a glob rule under dir. A malformed pattern or any
// expansion error simply contributes no detections; it must not abort
// the scan of the remaining rules.
func matchGlob(dir string, rule Rule) []Ecosystem {
	matches, err := filepath.Glob(filepath.Join(dir, rule.Pattern))
	if err != nil {
		return nil
	}
	var detected []Ecosystem
	for _, match := range matches {
		if isFile(match) {
			detected = append(detected, rule.Ecosystem)
		}
	}
	return detected
}

// isFile reports whether path exists and is a regular file.
func isFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
