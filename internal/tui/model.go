package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/OneZee23/life-track/internal/app"
	"github.com/OneZee23/life-track/internal/constants"
	"github.com/OneZee23/life-track/internal/dates"
	"github.com/OneZee23/life-track/internal/progress"
	"github.com/OneZee23/life-track/internal/validation"
)

type SessionState int

const (
	StateCheckin SessionState = iota
	StateMonth
	StateYear
	StateHabits
	StateAddHabit
	StateEditHabit
	StateConfirmArchive
)

const tabCount = 4

type HabitFormModel struct {
	Name  string
	Emoji string
}

type Model struct {
	tracker *app.Tracker
	state   SessionState
	keys    KeyMap
	help    help.Model
	styles  Styles

	// Check-in tab
	date   string
	values map[string]bool
	cursor int
	dirty  bool

	// Month/year tabs
	viewYear  int
	viewMonth time.Month
	month     progress.MonthSummary
	year      progress.YearSummary
	streak    int

	// Habit management
	habitCursor    int
	form           *huh.Form
	habitForm      *HabitFormModel
	editingHabitID string
	archiveID      string

	statusMsg string
	errMsg    string
	quitting  bool
	width     int
	height    int
}

func NewModel(tracker *app.Tracker, theme string) Model {
	now := time.Now()
	m := Model{
		tracker:   tracker,
		state:     StateCheckin,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		styles:    NewStyles(theme),
		date:      dates.Today(),
		values:    map[string]bool{},
		viewYear:  now.Year(),
		viewMonth: now.Month(),
	}

	m.loadDay()
	m.loadMonth()
	m.loadYear()
	m.loadStreak()
	return m
}

// loadDay hydrates the check-in toggles from the stored day, defaulting
// untouched habits to not-done.
func (m *Model) loadDay() {
	stored, err := m.tracker.LoadDate(m.date)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	values := map[string]bool{}
	for _, h := range m.tracker.ActiveHabits() {
		values[h.ID] = stored[h.ID] == 1
	}
	m.values = values
	m.dirty = false
}

func (m *Model) loadMonth() {
	summary, err := m.tracker.MonthSummary(m.viewYear, m.viewMonth, "")
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.month = summary
}

func (m *Model) loadYear() {
	summary, err := m.tracker.YearSummary(m.viewYear, "")
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.year = summary
}

func (m *Model) loadStreak() {
	streak, err := m.tracker.Streak()
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.streak = streak
}

func (m *Model) saveDay() {
	if err := m.tracker.SaveDay(m.date, m.values); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	m.dirty = false
	m.loadMonth()
	m.loadStreak()
	if m.streak >= constants.CelebrationStreak {
		m.statusMsg = fmt.Sprintf("Saved. 🔥 %d-day streak!", m.streak)
	} else {
		m.statusMsg = "Saved."
	}
}

func newHabitForm(fm *HabitFormModel) *huh.Form {
	emojiOptions := make([]huh.Option[string], 0, len(constants.EmojiPalette))
	for _, e := range constants.EmojiPalette {
		emojiOptions = append(emojiOptions, huh.NewOption(e, e))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					return validation.HabitName(s)
				}),
			huh.NewSelect[string]().
				Title("Emoji").
				Options(emojiOptions...).
				Value(&fm.Emoji),
		),
	).WithTheme(huh.ThemeDracula())
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateCheckin:
		keys = append(keys, m.keys.Toggle, m.keys.Save)
	case StateMonth:
		keys = append(keys, m.keys.Left, m.keys.Right)
	case StateHabits:
		keys = append(keys, m.keys.Add, m.keys.Edit, m.keys.Archive)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right}

	var actions []key.Binding
	switch m.state {
	case StateCheckin:
		actions = []key.Binding{m.keys.Toggle, m.keys.Save}
	case StateHabits:
		actions = []key.Binding{m.keys.Add, m.keys.Edit, m.keys.Archive, m.keys.MoveUp, m.keys.MoveDown}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}
