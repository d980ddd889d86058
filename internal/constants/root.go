package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName           = "dayboard"
	DefaultConfigPath = "~/.config/dayboard/dayboard.db"
	Version           = "v0.3.0"

	// Storage slot keys. Each widget owns exactly one slot.
	SlotExpenses = "expenses"
	SlotTasks    = "tasks"
	SlotHabits   = "habits"
	SlotPomodoro = "pomodoroHistory"
	SlotSettings = "settings"

	// Timer defaults (minutes)
	DefaultFocusMin = 25
	DefaultBreakMin = 5

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "dayboard-"

	// Notify constants
	NotifierLockfileName   = "dayboard-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.dayboard.tray"
)

// Session states. The first five are the main tab views, in tab order.
const (
	StateDashboard SessionState = iota
	StateBudget
	StateTimer
	StateTodo
	StateHabits
	StateHabitGrid
	StateAddExpense
	StateAddTask
	StateAddHabit
	StateEditSettings
	StateConfirmDeleteExpense
	StateConfirmDeleteTask
	StateConfirmDeleteHabit
)
