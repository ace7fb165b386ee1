package orchestrator

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/breathe-sh/breathe/pkg/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Summary renders the run as a rounded table: one row per ecosystem
// plus a trailing aggregate "All" row carrying the total wall-clock
// time.
func Summary(result *models.RunResult) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("Ecosystem", "Status", "Take")

	for _, eco := range result.Ecosystems {
		t.Row(eco.Ecosystem, statusWord(eco.AllSucceeded), fmt.Sprintf("%ds", eco.ElapsedSeconds))
	}
	t.Row("All", statusWord(result.Success()), fmt.Sprintf("%ds", result.ElapsedSeconds))

	return t.String()
}

func statusWord(ok bool) string {
	if ok {
		return okStyle.Render("Success")
	}
	return failStyle.Render("Failure")
}
