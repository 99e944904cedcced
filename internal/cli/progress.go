package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/OneZee23/life-track/internal/models"
)

type MonthCmd struct {
	Month string `arg:"" optional:"" help:"Month to show (YYYY-MM). Defaults to the current month."`
	Habit string `short:"H" help:"Limit the view to one habit."`
}

func (c *MonthCmd) Run(ctx *Context) error {
	tracker, err := ctx.App()
	if err != nil {
		return err
	}

	year, month, err := resolveMonth(c.Month)
	if err != nil {
		return err
	}

	filter, err := resolveFilter(tracker.ActiveHabits(), c.Habit)
	if err != nil {
		return err
	}

	summary, err := tracker.MonthSummary(year, month, filter)
	if err != nil {
		return err
	}

	fmt.Println(monthLabel(year, month))
	fmt.Println("  Mo Tu We Th Fr Sa Su")
	for _, week := range summary.Weeks {
		var row strings.Builder
		row.WriteString("  ")
		for _, cell := range week {
			if cell.Day == 0 {
				row.WriteString("   ")
				continue
			}
			glyph := statusGlyph(cell.Status)
			if cell.Today {
				glyph = "[" + glyph + "]"
				row.WriteString(fmt.Sprintf("%3s", glyph))
				continue
			}
			row.WriteString(fmt.Sprintf(" %s ", glyph))
		}
		fmt.Println(row.String())
	}
	fmt.Println()
	fmt.Printf("  Done %d of %d tracked days\n", summary.DoneDays, summary.TrackedDays)
	fmt.Printf("  Current streak: %d  Best streak: %d\n", summary.CurrentStreak, summary.BestStreak)
	return nil
}

type YearCmd struct {
	Year  int    `arg:"" optional:"" help:"Year to show. Defaults to the current year."`
	Habit string `short:"H" help:"Limit the view to one habit."`
}

func (c *YearCmd) Run(ctx *Context) error {
	tracker, err := ctx.App()
	if err != nil {
		return err
	}

	year := c.Year
	if year == 0 {
		year = time.Now().Year()
	}

	filter, err := resolveFilter(tracker.ActiveHabits(), c.Habit)
	if err != nil {
		return err
	}

	summary, err := tracker.YearSummary(year, filter)
	if err != nil {
		return err
	}

	fmt.Printf("%d\n", year)
	for _, m := range summary.Months {
		fmt.Printf("  %-9s  %4s  (%d/%d days)\n",
			m.Month.String(), formatPercent(m.Percent), m.DoneDays, m.TrackedDays)
	}
	fmt.Println()
	fmt.Printf("  Year: %s (%d/%d days)\n",
		formatPercent(summary.Percent), summary.DoneDays, summary.TrackedDays)
	return nil
}

type StreakCmd struct{}

func (c *StreakCmd) Run(ctx *Context) error {
	tracker, err := ctx.App()
	if err != nil {
		return err
	}

	streak, err := tracker.Streak()
	if err != nil {
		return err
	}

	switch {
	case streak == 0:
		fmt.Println("No active streak. Check in today to start one!")
	case streak == 1:
		fmt.Println("1-day streak")
	default:
		fmt.Printf("🔥 %d-day streak\n", streak)
	}
	return nil
}

func resolveMonth(s string) (int, time.Month, error) {
	if s == "" {
		now := time.Now()
		return now.Year(), now.Month(), nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q, expected YYYY-MM", s)
	}
	return t.Year(), t.Month(), nil
}

func resolveFilter(habits []models.Habit, ref string) (string, error) {
	if ref == "" {
		return "", nil
	}
	habit, err := findHabit(habits, ref)
	if err != nil {
		return "", err
	}
	return habit.ID, nil
}
