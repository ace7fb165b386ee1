// Package commit implements the interactive commit-message authoring
// assistant.
package commit

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/breathe-sh/breathe/internal/dict"
	"github.com/breathe-sh/breathe/internal/validate"
)

// Message is a conventional commit message under construction.
type Message struct {
	// Type is one of validate.ValidTypes.
	Type string
	// Summary is the one-line description (≤50 chars, no trailing
	// period).
	Summary string
	// Body is the optional long description (≤72 chars per line).
	Body string
}

// Validate runs every field validator, returning the first violation.
// The dictionary is the spell-check capability; spelling applies to
// the summary and body only.
func (m *Message) Validate(d *dict.Dictionary) error {
	if err := validate.CommitType(m.Type); err != nil {
		return fmt.Errorf("type: %w", err)
	}
	if err := validate.NotEmpty(m.Summary); err != nil {
		return fmt.Errorf("summary: %w", err)
	}
	if err := validate.SummaryLength(m.Summary); err != nil {
		return fmt.Errorf("summary: %w", err)
	}
	if err := validate.SummaryPunctuation(m.Summary); err != nil {
		return fmt.Errorf("summary: %w", err)
	}
	if err := validate.Spelling(d, m.Summary); err != nil {
		return fmt.Errorf("summary: %w", err)
	}
	if m.Body != "" {
		if err := validate.BodyLineLength(m.Body); err != nil {
			return fmt.Errorf("body: %w", err)
		}
		if err := validate.Spelling(d, m.Body); err != nil {
			return fmt.Errorf("body: %w", err)
		}
	}
	return nil
}

// Render produces the final commit message text.
func (m *Message) Render() string {
	header := fmt.Sprintf("%s: %s", strings.TrimSpace(m.Type), strings.TrimSpace(m.Summary))
	body := strings.TrimRight(m.Body, "\n")
	if body == "" {
		return header
	}
	return header + "\n\n" + body
}

// Commit runs git commit with the rendered message in workDir.
func (m *Message) Commit(ctx context.Context, workDir string) error {
	cmd := exec.CommandContext(ctx, "git", "commit", "-m", m.Render())
	if workDir != "" {
		cmd.Dir = workDir
	}
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git commit: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}
