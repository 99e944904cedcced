package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/OneZee23/life-track/internal/tui/components/heatmap"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateCheckin:
		content = m.viewCheckin()
	case StateMonth:
		content = m.viewMonthTab()
	case StateYear:
		content = m.viewYearTab()
	case StateHabits:
		content = m.viewHabits()
	case StateAddHabit, StateEditHabit:
		content = m.form.View()
	case StateConfirmArchive:
		content = m.viewConfirmArchive()
	}

	var footer []string
	if m.errMsg != "" {
		footer = append(footer, m.styles.Danger.Render(m.errMsg))
	}
	if m.statusMsg != "" {
		footer = append(footer, m.styles.Status.Render(m.statusMsg))
	}
	footer = append(footer, m.help.View(m))

	sections := []string{m.viewTabs(), content}
	sections = append(sections, footer...)

	return m.styles.Doc.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Check-in", "Month", "Year", "Habits"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, m.styles.ActiveTab.Render(title))
		} else {
			tabs = append(tabs, m.styles.InactiveTab.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewCheckin() string {
	habits := m.tracker.ActiveHabits()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.date))
	if m.dirty {
		b.WriteString(m.styles.Muted.Render("  (unsaved)"))
	}
	b.WriteString("\n\n")

	if len(habits) == 0 {
		b.WriteString(m.styles.Muted.Render("No habits yet. Press tab to reach the Habits screen and add one."))
		return b.String()
	}

	for i, h := range habits {
		cursor := "  "
		if i == m.cursor {
			cursor = m.styles.Cursor.Render("> ")
		}
		mark := "[ ]"
		if m.values[h.ID] {
			mark = m.styles.Done.Render("[x]")
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s\n", cursor, mark, h.Emoji, h.Name))
	}

	if m.streak > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("🔥 %d-day streak", m.streak)))
	}
	return b.String()
}

func (m Model) viewMonthTab() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(fmt.Sprintf("%s %d", m.viewMonth.String(), m.viewYear)))
	b.WriteString("\n\n")
	b.WriteString(heatmap.Render(m.month))
	b.WriteString("\n")

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Card.Render(fmt.Sprintf("Current\n%d days", m.month.CurrentStreak)),
		" ",
		m.styles.Card.Render(fmt.Sprintf("Best\n%d days", m.month.BestStreak)),
		" ",
		m.styles.Card.Render(fmt.Sprintf("Done\n%d/%d", m.month.DoneDays, m.month.TrackedDays)),
	)
	b.WriteString(cards)
	return b.String()
}

func (m Model) viewYearTab() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(fmt.Sprintf("%d", m.viewYear)))
	b.WriteString("\n\n")

	for _, month := range m.year.Months {
		pct := "  —"
		if month.Percent != nil {
			pct = fmt.Sprintf("%3d%%", *month.Percent)
		}
		bar := renderBar(month.Percent, 20)
		b.WriteString(fmt.Sprintf("  %-9s %s %s\n", month.Month.String(), pct, bar))
	}

	b.WriteString("\n")
	total := "—"
	if m.year.Percent != nil {
		total = fmt.Sprintf("%d%%", *m.year.Percent)
	}
	b.WriteString(m.styles.Muted.Render(
		fmt.Sprintf("Year: %s (%d/%d days)", total, m.year.DoneDays, m.year.TrackedDays)))
	return b.String()
}

func renderBar(percent *int, width int) string {
	if percent == nil {
		return strings.Repeat("·", width)
	}
	filled := *percent * width / 100
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func (m Model) viewHabits() string {
	habits := m.tracker.ActiveHabits()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Habits"))
	b.WriteString("\n\n")

	if len(habits) == 0 {
		b.WriteString(m.styles.Muted.Render("No habits. Press 'a' to add one."))
		return b.String()
	}

	for i, h := range habits {
		cursor := "  "
		if i == m.habitCursor {
			cursor = m.styles.Cursor.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, h.Emoji, h.Name))
	}
	return b.String()
}

func (m Model) viewConfirmArchive() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			m.styles.Danger.Render("Archive this habit? Its history is kept."),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
