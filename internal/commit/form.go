package commit

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/breathe-sh/breathe/internal/dict"
	"github.com/breathe-sh/breathe/internal/validate"
)

// form steps, in authoring order.
const (
	stepType = iota
	stepSummary
	stepBody
	stepDone
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Form is the interactive commit-message authoring model.
type Form struct {
	step    int
	typeIn  textinput.Model
	summary textinput.Model
	body    textarea.Model
	dict    *dict.Dictionary
	errMsg  string

	// Message holds the accepted fields once the form completes.
	Message Message
	// Aborted is set when the user cancels instead of submitting.
	Aborted bool
}

// NewForm creates the authoring form. The dictionary is the
// spell-check capability used by the summary and body validators.
func NewForm(d *dict.Dictionary) *Form {
	typeIn := textinput.New()
	typeIn.Placeholder = strings.Join(validate.ValidTypes, ", ")
	typeIn.Focus()
	typeIn.CharLimit = 16
	typeIn.Width = 40

	summary := textinput.New()
	summary.Placeholder = "Short summary of the change"
	summary.CharLimit = 120
	summary.Width = 60

	body := textarea.New()
	body.Placeholder = "Longer description (optional)"
	body.SetWidth(72)
	body.SetHeight(6)

	return &Form{
		typeIn:  typeIn,
		summary: summary,
		body:    body,
		dict:    d,
	}
}

// Init implements tea.Model.
func (f *Form) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			f.Aborted = true
			return f, tea.Quit
		case "enter":
			if f.step != stepBody {
				return f.advance()
			}
		case "ctrl+d":
			if f.step == stepBody {
				return f.advance()
			}
		}
	}

	var cmd tea.Cmd
	switch f.step {
	case stepType:
		f.typeIn, cmd = f.typeIn.Update(msg)
	case stepSummary:
		f.summary, cmd = f.summary.Update(msg)
	case stepBody:
		f.body, cmd = f.body.Update(msg)
	}
	return f, cmd
}

// advance validates the current field; on success it moves to the next
// step, on failure it keeps the step and shows the violation.
func (f *Form) advance() (tea.Model, tea.Cmd) {
	switch f.step {
	case stepType:
		if err := validate.CommitType(f.typeIn.Value()); err != nil {
			f.errMsg = err.Error()
			return f, nil
		}
		f.Message.Type = strings.TrimSpace(f.typeIn.Value())
		f.errMsg = ""
		f.step = stepSummary
		f.typeIn.Blur()
		return f, f.summary.Focus()
	case stepSummary:
		if err := f.checkSummary(); err != nil {
			f.errMsg = err.Error()
			return f, nil
		}
		f.Message.Summary = strings.TrimSpace(f.summary.Value())
		f.errMsg = ""
		f.step = stepBody
		f.summary.Blur()
		return f, f.body.Focus()
	case stepBody:
		body := strings.TrimRight(f.body.Value(), "\n")
		if body != "" {
			if err := validate.BodyLineLength(body); err != nil {
				f.errMsg = err.Error()
				return f, nil
			}
			if err := validate.Spelling(f.dict, body); err != nil {
				f.errMsg = err.Error()
				return f, nil
			}
		}
		f.Message.Body = body
		f.errMsg = ""
		f.step = stepDone
		return f, tea.Quit
	}
	return f, nil
}

func (f *Form) checkSummary() error {
	value := f.summary.Value()
	if err := validate.NotEmpty(value); err != nil {
		return err
	}
	if err := validate.SummaryLength(value); err != nil {
		return err
	}
	if err := validate.SummaryPunctuation(value); err != nil {
		return err
	}
	return validate.Spelling(f.dict, value)
}

// View implements tea.Model.
func (f *Form) View() string {
	var b strings.Builder
	switch f.step {
	case stepType:
		b.WriteString(labelStyle.Render("Commit type") + "\n")
		b.WriteString(f.typeIn.View() + "\n")
	case stepSummary:
		b.WriteString(labelStyle.Render("Summary") + "\n")
		b.WriteString(f.summary.View() + "\n")
		b.WriteString(hintStyle.Render("50 characters max, no trailing period") + "\n")
	case stepBody:
		b.WriteString(labelStyle.Render("Body") + "\n")
		b.WriteString(f.body.View() + "\n")
		b.WriteString(hintStyle.Render("72 characters per line, ctrl+d to finish") + "\n")
	case stepDone:
		return ""
	}
	if f.errMsg != "" {
		b.WriteString(errStyle.Render(fmt.Sprintf("✗ %s", f.errMsg)) + "\n")
	}
	return b.String()
}
