package cli

import (
	"fmt"

	"github.com/OneZee23/life-track/internal/constants"
)

type CheckinCmd struct {
	Habits []string `arg:"" optional:"" help:"Habits to mark done. Others keep their recorded value."`
	Date   string   `short:"d" help:"Day to record (YYYY-MM-DD, 'today', or 'yesterday')." default:"today"`
	Miss   []string `short:"m" help:"Habits to mark not done."`
	All    bool     `short:"a" help:"Mark every habit done."`
}

func (c *CheckinCmd) Run(ctx *Context) error {
	tracker, err := ctx.App()
	if err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	existing, err := tracker.LoadDate(date)
	if err != nil {
		return err
	}

	habits := tracker.ActiveHabits()
	if len(habits) == 0 {
		return fmt.Errorf("no habits to check in: add one with 'lifetrack habit add'")
	}

	values := make(map[string]bool, len(habits))
	for _, h := range habits {
		values[h.ID] = c.All || existing[h.ID] == 1
	}
	for _, ref := range c.Habits {
		habit, err := findHabit(habits, ref)
		if err != nil {
			return err
		}
		values[habit.ID] = true
	}
	for _, ref := range c.Miss {
		habit, err := findHabit(habits, ref)
		if err != nil {
			return err
		}
		values[habit.ID] = false
	}

	if err := tracker.SaveDay(date, values); err != nil {
		return err
	}

	done := 0
	for _, v := range values {
		if v {
			done++
		}
	}
	fmt.Printf("Saved %s: %d/%d done\n", date, done, len(habits))

	streak, err := tracker.Streak()
	if err != nil {
		return err
	}
	if streak >= constants.CelebrationStreak {
		fmt.Printf("🔥 %d-day streak!\n", streak)
	}
	return nil
}

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Day to show (YYYY-MM-DD, 'today', or 'yesterday')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	tracker, err := ctx.App()
	if err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	values, err := tracker.LoadDate(date)
	if err != nil {
		return err
	}

	status, err := tracker.DayStatus(date, "")
	if err != nil {
		return err
	}

	fmt.Printf("%s  %s\n", date, statusGlyph(status))
	if len(values) == 0 {
		fmt.Println("  (no check-ins recorded)")
		return nil
	}

	for _, h := range tracker.ActiveHabits() {
		mark := " "
		if v, ok := values[h.ID]; ok && v == 1 {
			mark = "x"
		}
		fmt.Printf("  [%s] %s %s\n", mark, h.Emoji, h.Name)
	}
	return nil
}
