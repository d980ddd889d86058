package handlers

import (
	"dayboard/internal/constants"
	"dayboard/internal/dateutil"
	"dayboard/internal/logger"
	"dayboard/internal/models"
	"dayboard/internal/storage"
	"dayboard/internal/tui/state"
)

// The persist helpers write through to storage and refresh the affected
// widgets. A failed write is logged and the in-memory state stays current.

func persistExpenses(m *state.Model) {
	if err := storage.SaveSlot(m.Store, constants.SlotExpenses, m.Expenses); err != nil {
		logger.Error("Failed to persist expenses", "error", err)
	}
	m.Budget.SetExpenses(m.Expenses)
	m.RefreshDashboard()
}

func persistTasks(m *state.Model) {
	if err := storage.SaveSlot(m.Store, constants.SlotTasks, m.Tasks); err != nil {
		logger.Error("Failed to persist tasks", "error", err)
	}
	m.Todo.SetTasks(m.Tasks)
	m.RefreshDashboard()
}

func persistHabits(m *state.Model) {
	if err := storage.SaveSlot(m.Store, constants.SlotHabits, m.HabitList); err != nil {
		logger.Error("Failed to persist habits", "error", err)
	}
	m.Habits.SetHabits(m.HabitList)
	m.RefreshDashboard()
}

func persistHistory(m *state.Model) {
	if err := storage.SaveSlot(m.Store, constants.SlotPomodoro, m.History); err != nil {
		logger.Error("Failed to persist session history", "error", err)
	}
	m.Pomodoro.SetSessionsToday(models.SessionsOn(m.History, dateutil.Today()))
	m.RefreshDashboard()
}

func persistSettings(m *state.Model) {
	if err := storage.SaveSlot(m.Store, constants.SlotSettings, m.Settings); err != nil {
		logger.Error("Failed to persist settings", "error", err)
	}
	m.Pomodoro.ApplySettings(m.Settings)
}
