package cli

import (
	"fmt"

	"github.com/OneZee23/life-track/internal/models"
)

type HabitAddCmd struct {
	Name  string `arg:"" help:"Habit name (20 characters max)."`
	Emoji string `short:"e" help:"Emoji shown next to the habit." default:"✅"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	tracker, err := ctx.App()
	if err != nil {
		return err
	}

	habit, err := tracker.AddHabit(c.Name, c.Emoji)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s %s (ID: %s)\n", habit.Emoji, habit.Name, habit.ID)
	return nil
}

type HabitListCmd struct {
	All bool `short:"a" help:"Include archived habits."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	tracker, err := ctx.App()
	if err != nil {
		return err
	}

	if c.All {
		records := tracker.AllHabits()
		if len(records) == 0 {
			fmt.Println("No habits found")
			return nil
		}
		fmt.Println("Habits:")
		for _, rec := range records {
			marker := ""
			if rec.Deleted() {
				marker = "  (archived)"
			}
			fmt.Printf("  %s %s%s\n      ID: %s\n", rec.Emoji, rec.Name, marker, rec.ID)
		}
		return nil
	}

	habits := tracker.ActiveHabits()
	if len(habits) == 0 {
		fmt.Println("No habits found")
		return nil
	}
	fmt.Println("Habits:")
	for i, h := range habits {
		fmt.Printf("  %d. %s %s\n      ID: %s\n", i+1, h.Emoji, h.Name, h.ID)
	}
	return nil
}

type HabitEditCmd struct {
	Habit string `arg:"" help:"Habit ID, ID prefix, or name."`
	Name  string `short:"n" help:"New name."`
	Emoji string `short:"e" help:"New emoji."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	tracker, err := ctx.App()
	if err != nil {
		return err
	}

	habit, err := findHabit(tracker.ActiveHabits(), c.Habit)
	if err != nil {
		return err
	}

	var patch models.HabitPatch
	if c.Name != "" {
		patch.Name = &c.Name
	}
	if c.Emoji != "" {
		patch.Emoji = &c.Emoji
	}
	if patch.Name == nil && patch.Emoji == nil {
		return fmt.Errorf("nothing to change: pass --name or --emoji")
	}

	if err := tracker.UpdateHabit(habit.ID, patch); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", habit.ID)
	return nil
}

type HabitRmCmd struct {
	Habit string `arg:"" help:"Habit ID, ID prefix, or name."`
}

func (c *HabitRmCmd) Run(ctx *Context) error {
	tracker, err := ctx.App()
	if err != nil {
		return err
	}

	habit, err := findHabit(tracker.ActiveHabits(), c.Habit)
	if err != nil {
		return err
	}

	if err := tracker.RemoveHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Archived habit: %s %s (history kept)\n", habit.Emoji, habit.Name)
	return nil
}

type HabitMoveCmd struct {
	Habit string `arg:"" help:"Habit ID, ID prefix, or name."`
	To    int    `arg:"" help:"Target position (1-based)."`
}

func (c *HabitMoveCmd) Run(ctx *Context) error {
	tracker, err := ctx.App()
	if err != nil {
		return err
	}

	habits := tracker.ActiveHabits()
	habit, err := findHabit(habits, c.Habit)
	if err != nil {
		return err
	}

	if c.To < 1 || c.To > len(habits) {
		return fmt.Errorf("position must be between 1 and %d", len(habits))
	}

	from := -1
	for i, h := range habits {
		if h.ID == habit.ID {
			from = i
			break
		}
	}

	if err := tracker.MoveHabit(from, c.To-1); err != nil {
		return err
	}

	fmt.Printf("Moved %s %s to position %d\n", habit.Emoji, habit.Name, c.To)
	return nil
}
