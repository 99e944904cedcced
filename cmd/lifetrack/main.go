package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/OneZee23/life-track/internal/cli"
	errs "github.com/OneZee23/life-track/internal/errors"
	"github.com/OneZee23/life-track/internal/logger"
	"github.com/OneZee23/life-track/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path." type:"path" default:"~/.local/share/lifetrack/lifetrack.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init   cli.InitCmd    `cmd:"" help:"Initialize lifetrack storage."`
	Tui    cli.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Day    cli.DayCmd     `cmd:"" help:"Show one day's check-ins."`
	Check  cli.CheckinCmd `cmd:"" help:"Record check-ins for a day."`
	Month  cli.MonthCmd   `cmd:"" help:"Show the month heatmap."`
	Year   cli.YearCmd    `cmd:"" help:"Show per-month completion for a year."`
	Streak cli.StreakCmd  `cmd:"" help:"Show the current streak."`
	Theme  cli.ThemeCmd   `cmd:"" help:"Show or set the color theme."`
	Habit  struct {
		Add  cli.HabitAddCmd  `cmd:"" help:"Add a new habit."`
		List cli.HabitListCmd `cmd:"" help:"List habits."`
		Edit cli.HabitEditCmd `cmd:"" help:"Edit a habit."`
		Rm   cli.HabitRmCmd   `cmd:"" help:"Archive a habit, keeping its history."`
		Move cli.HabitMoveCmd `cmd:"" help:"Move a habit to a new position."`
	} `cmd:"" help:"Manage habits."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a database backup."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the database from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("lifetrack"),
		kong.Description("Daily habit tracker with streaks and calendar views"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:   CLI.Debug,
		DataDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	appCtx := &cli.Context{
		Store:  storage.NewSQLiteStore(CLI.Config),
		DBPath: CLI.Config,
	}

	if err := ctx.Run(appCtx); err != nil {
		errs.Fatal(err)
	}
}
