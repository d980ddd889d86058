package system

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"dayboard/internal/backup"
	"dayboard/internal/cli"
	"dayboard/internal/constants"
	"dayboard/internal/dateutil"
	"dayboard/internal/models"
	"dayboard/internal/notifier"
	"dayboard/internal/storage"
	"dayboard/internal/tui"
)

// InitCmd creates the data file. It is the only command that runs without
// loading the store first.
type InitCmd struct{}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized data file at %s\n", ctx.ConfigPath)
	return nil
}

// TuiCmd launches the interactive dashboard. It is also the default when
// no subcommand is given.
type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()
	return tui.Run(ctx.Store)
}

// DoctorCmd checks the local setup and reports each result.
type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Checking dayboard setup...")
	fmt.Println()

	configDir := filepath.Dir(ctx.ConfigPath)
	if info, err := os.Stat(configDir); err == nil && info.IsDir() {
		fmt.Printf("✓ Config directory exists (%s)\n", configDir)
	} else {
		fmt.Printf("❌ Config directory missing (%s)\n", configDir)
	}

	if _, err := os.Stat(ctx.ConfigPath); err == nil {
		fmt.Printf("✓ Data file exists (%s)\n", ctx.ConfigPath)
	} else {
		fmt.Printf("❌ Data file missing, run 'dayboard init' (%s)\n", ctx.ConfigPath)
	}

	logDir := filepath.Join(configDir, "logs")
	if _, err := os.Stat(logDir); err == nil {
		fmt.Printf("✓ Log directory exists (%s)\n", logDir)
	} else {
		fmt.Printf("⊘ Log directory not created yet (%s)\n", logDir)
	}

	for _, sc := range []struct {
		key string
		err error
	}{
		{constants.SlotExpenses, checkSlot[[]models.Expense](ctx.Store, constants.SlotExpenses)},
		{constants.SlotTasks, checkSlot[[]models.Task](ctx.Store, constants.SlotTasks)},
		{constants.SlotHabits, checkSlot[[]models.Habit](ctx.Store, constants.SlotHabits)},
		{constants.SlotPomodoro, checkSlot[[]models.SessionRecord](ctx.Store, constants.SlotPomodoro)},
		{constants.SlotSettings, checkSlot[models.Settings](ctx.Store, constants.SlotSettings)},
	} {
		if sc.err != nil {
			fmt.Printf("❌ Slot %q unreadable, will be reset on next write (%v)\n", sc.key, sc.err)
		} else {
			fmt.Printf("✓ Slot %q readable\n", sc.key)
		}
	}

	if backups, err := backup.NewManager(ctx.Store.GetConfigPath()).ListBackups(); err != nil {
		fmt.Printf("❌ Backup directory unreadable (%v)\n", err)
	} else if len(backups) == 0 {
		fmt.Println("⊘ No backups yet, run 'dayboard backup create'")
	} else {
		fmt.Printf("✓ %d backup(s), newest from %s\n", len(backups), backups[0].Timestamp.Format("2006-01-02 15:04:05"))
	}

	today := dateutil.Today()
	if _, err := dateutil.ParseDay(today); err != nil {
		fmt.Printf("❌ System clock produced an invalid date (%q)\n", today)
	} else {
		fmt.Printf("✓ Clock sane, today is %s\n", today)
	}

	if err := notifier.New().Notify("dayboard doctor check"); err == nil {
		fmt.Println("✓ Tray app reachable, test notification sent")
	} else {
		fmt.Printf("⊘ Tray app not reachable (%v)\n", err)
	}

	return nil
}

// checkSlot reports whether the slot's raw content deserializes into its
// collection type. An absent slot is healthy.
func checkSlot[T any](store storage.Provider, key string) error {
	raw, ok := store.Get(key)
	if !ok {
		return nil
	}
	var v T
	return json.Unmarshal(raw, &v)
}

// NotifyCmd sends a notification through the tray app. Used by scripts and
// for debugging the tray integration.
type NotifyCmd struct {
	Text string `arg:"" help:"Notification text."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	return notifier.New().Notify(c.Text)
}
