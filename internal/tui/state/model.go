package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/huh"

	"dayboard/internal/constants"
	"dayboard/internal/dateutil"
	"dayboard/internal/models"
	"dayboard/internal/notifier"
	"dayboard/internal/storage"
	"dayboard/internal/tui/components/budget"
	"dayboard/internal/tui/components/dashboard"
	"dayboard/internal/tui/components/habits"
	"dayboard/internal/tui/components/pomodoro"
	"dayboard/internal/tui/components/todo"
)

// ExpenseFormModel holds in-progress expense form values.
type ExpenseFormModel struct {
	Title    string
	Amount   string
	Category models.Category
}

// TaskFormModel holds in-progress task form values.
type TaskFormModel struct {
	Title   string
	DueDate string
}

// HabitFormModel holds in-progress habit form values.
type HabitFormModel struct {
	Name string
}

// SettingsFormModel holds in-progress timer settings form values.
type SettingsFormModel struct {
	FocusMin             string
	BreakMin             string
	NotificationsEnabled bool
}

// Model is the shared state every message handler operates on.
type Model struct {
	Store    storage.Provider
	Notifier *notifier.Notifier

	State         constants.SessionState
	PreviousState constants.SessionState

	Keys KeyMap
	Help help.Model

	Dashboard dashboard.Model
	Budget    budget.Model
	Todo      todo.Model
	Habits    habits.Model
	Grid      habits.GridModel
	Pomodoro  pomodoro.Model

	// Collections are the in-memory source of truth. Persist failures are
	// logged and the UI keeps serving these.
	Expenses  []models.Expense
	Tasks     []models.Task
	HabitList []models.Habit
	History   []models.SessionRecord
	Settings  models.Settings

	Form         *huh.Form
	ExpenseForm  *ExpenseFormModel
	TaskForm     *TaskFormModel
	HabitForm    *HabitFormModel
	SettingsForm *SettingsFormModel
	FormError    string

	PendingExpenseID string
	PendingTaskID    string
	PendingHabitID   string

	Width  int
	Height int
}

func NewModel(store storage.Provider) *Model {
	expenses := storage.LoadSlot(store, constants.SlotExpenses, []models.Expense{})
	tasks := storage.LoadSlot(store, constants.SlotTasks, []models.Task{})
	habitList := storage.LoadSlot(store, constants.SlotHabits, []models.Habit{})
	history := storage.LoadSlot(store, constants.SlotPomodoro, []models.SessionRecord{})
	settings := storage.LoadSlot(store, constants.SlotSettings, models.DefaultSettings())

	dash := dashboard.New()
	dash.Refresh(expenses, tasks, habitList, history)

	m := &Model{
		Store:     store,
		Notifier:  notifier.New(),
		State:     constants.StateDashboard,
		Keys:      DefaultKeyMap(),
		Help:      help.New(),
		Dashboard: dash,
		Budget:    budget.New(expenses, 60, 20),
		Todo:      todo.New(tasks, 60, 20),
		Habits:    habits.New(habitList, 60, 20),
		Pomodoro:  pomodoro.New(settings, models.SessionsOn(history, dateutil.Today())),
		Expenses:  expenses,
		Tasks:     tasks,
		HabitList: habitList,
		History:   history,
		Settings:  settings,
	}
	return m
}

// RefreshDashboard recomputes the summary cards from the in-memory collections.
func (m *Model) RefreshDashboard() {
	m.Dashboard.Refresh(m.Expenses, m.Tasks, m.HabitList, m.History)
}

// ClearForm drops any in-progress form state.
func (m *Model) ClearForm() {
	m.Form = nil
	m.ExpenseForm = nil
	m.TaskForm = nil
	m.HabitForm = nil
	m.SettingsForm = nil
	m.FormError = ""
}
