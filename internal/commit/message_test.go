package commit

import (
	"strings"
	"testing"

	"github.com/breathe-sh/breathe/internal/dict"
)

func testDict(t *testing.T, words string) *dict.Dictionary {
	t.Helper()
	d, err := dict.Parse(strings.NewReader(words))
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestMessageValidate(t *testing.T) {
	d := testDict(t, "add\nretry\nlogic\nto\nthe\nrunner")

	msg := &Message{Type: "feat", Summary: "add retry logic"}
	if err := msg.Validate(d); err != nil {
		t.Errorf("valid message rejected: %v", err)
	}
}

func TestMessageValidateBadType(t *testing.T) {
	msg := &Message{Type: "feature", Summary: "add retry logic"}
	if err := msg.Validate(&dict.Dictionary{}); err == nil {
		t.Error("invalid commit type should fail")
	}
}

func TestMessageValidateLongSummary(t *testing.T) {
	msg := &Message{Type: "fix", Summary: strings.Repeat("a", 51)}
	if err := msg.Validate(&dict.Dictionary{}); err == nil {
		t.Error("over-long summary should fail")
	}
}

func TestMessageValidateSummaryPeriod(t *testing.T) {
	msg := &Message{Type: "fix", Summary: "fix the bug."}
	if err := msg.Validate(&dict.Dictionary{}); err == nil {
		t.Error("summary ending with a period should fail")
	}
}

func TestMessageValidateLongBodyLine(t *testing.T) {
	msg := &Message{
		Type:    "fix",
		Summary: "fix the bug",
		Body:    strings.Repeat("b", 73),
	}
	if err := msg.Validate(&dict.Dictionary{}); err == nil {
		t.Error("over-long body line should fail")
	}
}

func TestMessageValidateMisspelledSummary(t *testing.T) {
	d := testDict(t, "fix\nthe\nbug")
	msg := &Message{Type: "fix", Summary: "fix the bgu"}
	if err := msg.Validate(d); err == nil {
		t.Error("misspelled summary should fail")
	}
}

func TestMessageRender(t *testing.T) {
	msg := &Message{Type: "feat", Summary: "add retry logic"}
	if got := msg.Render(); got != "feat: add retry logic" {
		t.Errorf("Render() = %q", got)
	}

	msg.Body = "Retries transient failures up to three times."
	want := "feat: add retry logic\n\nRetries transient failures up to three times."
	if got := msg.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestMessageRenderTrimsBody(t *testing.T) {
	msg := &Message{Type: "docs", Summary: "update readme", Body: "details\n\n"}
	if got := msg.Render(); !strings.HasSuffix(got, "details") {
		t.Errorf("trailing newlines should be trimmed: %q", got)
	}
}
