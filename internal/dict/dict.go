// Package dict provides the read-only spell-check dictionary used by
// the commit assistant. The wordlist is loaded once, on first use, and
// never mutated afterward; the Dictionary value is passed explicitly
// to whichever validator needs it rather than consulted as ambient
// global state.
package dict

import (
	"bufio"
	"io"
	"os"
	"strings"
	"sync"
)

// DefaultPath is the wordlist shipped alongside the binary.
const DefaultPath = "dict/en_US.dic"

// Dictionary is an immutable word set with suggestion support.
type Dictionary struct {
	words map[string]bool
}

var (
	defaultOnce sync.Once
	defaultDict *Dictionary
)

// Default returns the process-wide dictionary, loading the default
// wordlist on first use. A missing or unreadable wordlist degrades to
// an empty dictionary, which accepts every word: spell checking is
// advisory and must never block commit authoring.
func Default() *Dictionary {
	defaultOnce.Do(func() {
		d, err := Load(DefaultPath)
		if err != nil {
			d = &Dictionary{}
		}
		defaultDict = d
	})
	return defaultDict
}

// Load reads a wordlist file, one word per line. Hunspell-style .dic
// files carry a leading entry count and affix flags after a slash;
// both are tolerated and stripped.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a wordlist from r with the same format Load accepts.
func Parse(r io.Reader) (*Dictionary, error) {
	words := make(map[string]bool)
	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if first {
			first = false
			// .dic header: a bare entry count.
			if isDigits(line) {
				continue
			}
		}
		if i := strings.IndexByte(line, '/'); i >= 0 {
			line = line[:i]
		}
		words[strings.ToLower(line)] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return &Dictionary{words: words}, nil
}

// Check reports whether word is in the dictionary. An empty dictionary
// accepts everything.
func (d *Dictionary) Check(word string) bool {
	if len(d.words) == 0 {
		return true
	}
	return d.words[strings.ToLower(word)]
}

// Suggest returns dictionary words within edit distance one of word,
// capped at five suggestions.
func (d *Dictionary) Suggest(word string) []string {
	const maxSuggestions = 5
	lower := strings.ToLower(word)
	var out []string
	for _, candidate := range edits(lower) {
		if d.words[candidate] {
			out = append(out, candidate)
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out
}

// edits generates every string within edit distance one of word
// (deletions, substitutions, insertions, transpositions), deduplicated
// and in deterministic order.
func edits(word string) []string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	seen := map[string]bool{word: true}
	var out []string
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	runes := []rune(word)
	for i := 0; i <= len(runes); i++ {
		if i < len(runes) {
			add(string(runes[:i]) + string(runes[i+1:]))
			for _, c := range letters {
				add(string(runes[:i]) + string(c) + string(runes[i+1:]))
			}
			if i+1 < len(runes) {
				swapped := make([]rune, len(runes))
				copy(swapped, runes)
				swapped[i], swapped[i+1] = swapped[i+1], swapped[i]
				add(string(swapped))
			}
		}
		for _, c := range letters {
			add(string(runes[:i]) + string(c) + string(runes[i:]))
		}
	}
	return out
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
