package handlers

import (
	tea "github.com/charmbracelet/bubbletea"

	"dayboard/internal/models"
	"dayboard/internal/tui/state"
)

// HandleConfirmDeleteExpense resolves the pending expense deletion.
func HandleConfirmDeleteExpense(m *state.Model, msg tea.KeyMsg) {
	switch msg.String() {
	case "y", "enter":
		m.Expenses = models.RemoveExpense(m.Expenses, m.PendingExpenseID)
		persistExpenses(m)
		fallthrough
	case "n", "esc":
		m.PendingExpenseID = ""
		m.State = m.PreviousState
	}
}

// HandleConfirmDeleteTask resolves the pending task deletion.
func HandleConfirmDeleteTask(m *state.Model, msg tea.KeyMsg) {
	switch msg.String() {
	case "y", "enter":
		m.Tasks = models.RemoveTask(m.Tasks, m.PendingTaskID)
		persistTasks(m)
		fallthrough
	case "n", "esc":
		m.PendingTaskID = ""
		m.State = m.PreviousState
	}
}

// HandleConfirmDeleteHabit resolves the pending habit deletion.
func HandleConfirmDeleteHabit(m *state.Model, msg tea.KeyMsg) {
	switch msg.String() {
	case "y", "enter":
		m.HabitList = models.RemoveHabit(m.HabitList, m.PendingHabitID)
		persistHabits(m)
		fallthrough
	case "n", "esc":
		m.PendingHabitID = ""
		m.State = m.PreviousState
	}
}
