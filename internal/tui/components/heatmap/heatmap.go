// Package heatmap renders a month of check-in statuses as a calendar grid.
package heatmap

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/OneZee23/life-track/internal/models"
	"github.com/OneZee23/life-track/internal/progress"
)

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	partialStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	missedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	todayStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
)

// Render draws the grid with one styled cell per day, Monday first.
func Render(summary progress.MonthSummary) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Mo Tu We Th Fr Sa Su"))
	b.WriteString("\n")

	for _, week := range summary.Weeks {
		cells := make([]string, 0, 7)
		for _, cell := range week {
			cells = append(cells, renderCell(cell))
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}

	return b.String()
}

func renderCell(cell progress.Cell) string {
	if cell.Day == 0 {
		return "  "
	}

	label := fmt.Sprintf("%2d", cell.Day)

	var style lipgloss.Style
	switch cell.Status {
	case models.StatusAllDone:
		style = doneStyle
	case models.StatusPartial:
		style = partialStyle
	case models.StatusNoneDone:
		style = missedStyle
	default:
		style = emptyStyle
	}

	if cell.Today {
		return todayStyle.Inherit(style).Render(label)
	}
	return style.Render(label)
}
