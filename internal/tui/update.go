package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/OneZee23/life-track/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	switch m.state {
	case StateAddHabit, StateEditHabit:
		return m.updateForm(msg)
	case StateConfirmArchive:
		return m.updateConfirmArchive(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	// Tab switching and quit are shared across the main tabs
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Tab):
		m.state = (m.state + 1) % tabCount
		m.statusMsg = ""
		return m, nil
	case key.Matches(keyMsg, m.keys.ShiftTab):
		m.state = (m.state - 1 + tabCount) % tabCount
		m.statusMsg = ""
		return m, nil
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.state {
	case StateCheckin:
		return m.updateCheckin(keyMsg)
	case StateMonth:
		return m.updateMonth(keyMsg)
	case StateHabits:
		return m.updateHabits(keyMsg)
	}
	return m, nil
}

func (m Model) updateCheckin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	habits := m.tracker.ActiveHabits()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(habits)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if m.cursor < len(habits) {
			id := habits[m.cursor].ID
			m.values[id] = !m.values[id]
			m.dirty = true
			m.statusMsg = ""
		}
	case key.Matches(msg, m.keys.Save):
		m.saveDay()
	}
	return m, nil
}

func (m Model) updateMonth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.viewMonth--
		if m.viewMonth < 1 {
			m.viewMonth = 12
			m.viewYear--
			m.loadYear()
		}
		m.loadMonth()
	case key.Matches(msg, m.keys.Right):
		m.viewMonth++
		if m.viewMonth > 12 {
			m.viewMonth = 1
			m.viewYear++
			m.loadYear()
		}
		m.loadMonth()
	}
	return m, nil
}

func (m Model) updateHabits(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	habits := m.tracker.ActiveHabits()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.habitCursor > 0 {
			m.habitCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.habitCursor < len(habits)-1 {
			m.habitCursor++
		}
	case key.Matches(msg, m.keys.Add):
		m.habitForm = &HabitFormModel{}
		m.form = newHabitForm(m.habitForm)
		m.editingHabitID = ""
		m.state = StateAddHabit
		return m, m.form.Init()
	case key.Matches(msg, m.keys.Edit):
		if m.habitCursor < len(habits) {
			h := habits[m.habitCursor]
			m.habitForm = &HabitFormModel{Name: h.Name, Emoji: h.Emoji}
			m.form = newHabitForm(m.habitForm)
			m.editingHabitID = h.ID
			m.state = StateEditHabit
			return m, m.form.Init()
		}
	case key.Matches(msg, m.keys.Archive):
		if m.habitCursor < len(habits) {
			m.archiveID = habits[m.habitCursor].ID
			m.state = StateConfirmArchive
		}
	case key.Matches(msg, m.keys.MoveUp):
		if m.habitCursor > 0 {
			if err := m.tracker.MoveHabit(m.habitCursor, m.habitCursor-1); err != nil {
				m.errMsg = err.Error()
			} else {
				m.habitCursor--
			}
		}
	case key.Matches(msg, m.keys.MoveDown):
		if m.habitCursor < len(habits)-1 {
			if err := m.tracker.MoveHabit(m.habitCursor, m.habitCursor+1); err != nil {
				m.errMsg = err.Error()
			} else {
				m.habitCursor++
			}
		}
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateHabits
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.submitHabitForm(); err != nil {
			m.errMsg = err.Error()
			m.form.State = huh.StateNormal
		} else {
			m.errMsg = ""
			m.state = StateHabits
			m.loadDay()
		}
	case huh.StateAborted:
		m.state = StateHabits
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) submitHabitForm() error {
	if m.editingHabitID == "" {
		_, err := m.tracker.AddHabit(m.habitForm.Name, m.habitForm.Emoji)
		return err
	}
	patch := models.HabitPatch{
		Name:  &m.habitForm.Name,
		Emoji: &m.habitForm.Emoji,
	}
	return m.tracker.UpdateHabit(m.editingHabitID, patch)
}

func (m Model) updateConfirmArchive(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		if err := m.tracker.RemoveHabit(m.archiveID); err != nil {
			m.errMsg = err.Error()
		} else {
			m.errMsg = ""
			if m.habitCursor >= len(m.tracker.ActiveHabits()) && m.habitCursor > 0 {
				m.habitCursor--
			}
			m.loadDay()
			m.loadMonth()
		}
		m.archiveID = ""
		m.state = StateHabits
	case "n", "N", "esc", "q":
		m.archiveID = ""
		m.state = StateHabits
	}
	return m, nil
}
