package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/OneZee23/life-track/internal/app"
	"github.com/OneZee23/life-track/internal/dates"
	"github.com/OneZee23/life-track/internal/models"
	"github.com/OneZee23/life-track/internal/storage"
)

type Context struct {
	Store  storage.Provider
	DBPath string

	tracker *app.Tracker
}

// App opens the store and builds the tracker on first use so every command
// shares one connection.
func (ctx *Context) App() (*app.Tracker, error) {
	if ctx.tracker != nil {
		return ctx.tracker, nil
	}
	if err := ctx.Store.Init(); err != nil {
		return nil, err
	}
	t, err := app.New(ctx.Store)
	if err != nil {
		return nil, err
	}
	ctx.tracker = t
	return t, nil
}

// resolveDate accepts an empty string (today), "yesterday", or an ISO date.
func resolveDate(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return dates.Today(), nil
	case "yesterday":
		return dates.Yesterday(), nil
	}
	if _, err := dates.Parse(s); err != nil {
		return "", err
	}
	return s, nil
}

func statusGlyph(status models.DayStatus) string {
	switch status {
	case models.StatusAllDone:
		return "●"
	case models.StatusPartial:
		return "◐"
	case models.StatusNoneDone:
		return "○"
	default:
		return "·"
	}
}

func formatPercent(p *int) string {
	if p == nil {
		return "—"
	}
	return fmt.Sprintf("%d%%", *p)
}

// findHabit matches by id prefix first, then by case-insensitive name.
func findHabit(habits []models.Habit, ref string) (models.Habit, error) {
	for _, h := range habits {
		if h.ID == ref {
			return h, nil
		}
	}
	var prefixMatches []models.Habit
	for _, h := range habits {
		if strings.HasPrefix(h.ID, ref) {
			prefixMatches = append(prefixMatches, h)
		}
	}
	if len(prefixMatches) == 1 {
		return prefixMatches[0], nil
	}
	if len(prefixMatches) > 1 {
		return models.Habit{}, fmt.Errorf("habit reference %q is ambiguous", ref)
	}
	for _, h := range habits {
		if strings.EqualFold(h.Name, ref) {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("no habit matches %q", ref)
}

func monthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", month.String(), year)
}
