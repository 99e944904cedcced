package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/OneZee23/life-track/internal/constants"
)

type Styles struct {
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Title       lipgloss.Style
	Done        lipgloss.Style
	Muted       lipgloss.Style
	Cursor      lipgloss.Style
	Status      lipgloss.Style
	Danger      lipgloss.Style
	Card        lipgloss.Style
	Doc         lipgloss.Style
}

// NewStyles builds a palette for the stored theme preference. The dark
// palette uses brighter foregrounds; the structure is the same.
func NewStyles(theme string) Styles {
	muted := lipgloss.Color("245")
	accent := lipgloss.Color("205")
	if theme == constants.ThemeDark {
		muted = lipgloss.Color("240")
		accent = lipgloss.Color("212")
	}

	return Styles{
		ActiveTab: lipgloss.NewStyle().
			Foreground(accent).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true),
		InactiveTab: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),
		Done:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Muted: lipgloss.NewStyle().Foreground(muted),
		Cursor: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 2),
		Doc: lipgloss.NewStyle().Margin(1, 2),
	}
}
