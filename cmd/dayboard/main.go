package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"dayboard/internal/cli"
	"dayboard/internal/cli/backups"
	"dayboard/internal/cli/expenses"
	"dayboard/internal/cli/habits"
	"dayboard/internal/cli/pomo"
	"dayboard/internal/cli/system"
	"dayboard/internal/cli/tasks"
	"dayboard/internal/constants"
	apperrors "dayboard/internal/errors"
	"dayboard/internal/logger"
	"dayboard/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Data file path. A .json extension selects the JSON file backend, anything else uses SQLite." type:"path" default:"~/.config/dayboard/dayboard.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init    system.InitCmd   `cmd:"" help:"Initialize dayboard storage."`
	Doctor  system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Tui     system.TuiCmd    `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Expense expenses.Cmd     `cmd:"" help:"Track expenses."`
	Task    tasks.Cmd        `cmd:"" help:"Manage the to-do list."`
	Habit   habits.Cmd       `cmd:"" help:"Track daily habits."`
	Pomo    pomo.Cmd         `cmd:"" help:"Inspect the pomodoro timer."`
	Backup  backups.Cmd      `cmd:"" help:"Manage data file backups."`
	Notify  system.NotifyCmd `cmd:"" hidden:"" help:"Send a notification (used internally)."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal productivity dashboard: budget, pomodoro, todos, habits"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	var store storage.Provider
	if strings.EqualFold(filepath.Ext(CLI.Config), ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store:      store,
		ConfigPath: CLI.Config,
		Debug:      CLI.Debug,
	}

	// Load the store before running the command (init handles its own setup)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
	}

	err := ctx.Run(appCtx)
	store.Close()
	if err != nil {
		apperrors.Fatal(err)
	}
}
