// Package validate holds the commit-message field validators. Each
// validator is a pure predicate over its input returning nil when the
// input is acceptable and a descriptive error otherwise; there is no
// shared state between them.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/breathe-sh/breathe/internal/dict"
)

// ValidTypes lists the accepted conventional commit types.
var ValidTypes = []string{
	"feat", "fix", "docs", "style", "refactor", "perf", "test", "chore", "ci", "build",
}

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._+-]+@([a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}$`)

// NotEmpty rejects blank input.
func NotEmpty(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("input cannot be empty")
	}
	return nil
}

// Email rejects input that is not a plausible email address.
func Email(input string) error {
	if !emailRe.MatchString(input) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// Password rejects passwords shorter than eight characters.
func Password(input string) error {
	if len(input) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	return nil
}

// CommitType rejects commit types outside ValidTypes.
func CommitType(input string) error {
	trimmed := strings.TrimSpace(input)
	for _, t := range ValidTypes {
		if trimmed == t {
			return nil
		}
	}
	return fmt.Errorf("type %q invalid, must be one of: %s", trimmed, strings.Join(ValidTypes, ", "))
}

// SummaryLength rejects summaries over 50 characters.
func SummaryLength(input string) error {
	const maxLength = 50
	n := len(strings.TrimSpace(input))
	if n > maxLength {
		return fmt.Errorf("summary is too long: %d chars, the limit is %d", n, maxLength)
	}
	return nil
}

// SummaryPunctuation rejects summaries ending with a period.
func SummaryPunctuation(input string) error {
	if strings.HasSuffix(strings.TrimSpace(input), ".") {
		return fmt.Errorf("summary should not end with a period")
	}
	return nil
}

// BodyLineLength rejects body lines over 72 characters.
func BodyLineLength(input string) error {
	const maxLineLength = 72
	for _, line := range strings.Split(input, "\n") {
		if len(line) > maxLineLength {
			truncated := line
			if len(truncated) > 20 {
				truncated = truncated[:20]
			}
			return fmt.Errorf("the line %q... is too long (%d chars), limit: %d",
				truncated, len(line), maxLineLength)
		}
	}
	return nil
}

// Spelling checks every word of the input against the dictionary,
// reporting the first unknown word with suggestions. Words are reduced
// to their alphabetic characters before lookup; purely non-alphabetic
// tokens are skipped.
func Spelling(d *dict.Dictionary, input string) error {
	for _, word := range strings.Fields(input) {
		var clean strings.Builder
		for _, r := range word {
			if unicode.IsLetter(r) {
				clean.WriteRune(r)
			}
		}
		if clean.Len() == 0 {
			continue
		}
		w := clean.String()
		if !d.Check(w) {
			suggestions := d.Suggest(w)
			return fmt.Errorf("spelling error: %q, suggestions: [%s]",
				w, strings.Join(suggestions, ", "))
		}
	}
	return nil
}
