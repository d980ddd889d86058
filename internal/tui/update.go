package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"dayboard/internal/constants"
	"dayboard/internal/tui/handlers"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.Width, m.Height = msg.Width, msg.Height
		h, v := docStyle.GetFrameSize()
		contentW := msg.Width - h
		contentH := msg.Height - v - 3
		m.Dashboard.SetSize(contentW, contentH)
		m.Budget.SetSize(contentW, contentH)
		m.Todo.SetSize(contentW, contentH)
		m.Habits.SetSize(contentW, contentH)
		m.Pomodoro.SetSize(contentW, contentH)
		return m, nil
	}

	// Timer messages are handled regardless of the active tab so the
	// countdown keeps running in the background.
	if handled, cmd := handlers.HandlePomodoroMsgs(m.Model, msg); handled {
		return m, cmd
	}

	switch m.State {
	case constants.StateAddExpense:
		return m, handlers.HandleExpenseFormState(m.Model, msg)
	case constants.StateAddTask:
		return m, handlers.HandleTaskFormState(m.Model, msg)
	case constants.StateAddHabit:
		return m, handlers.HandleHabitFormState(m.Model, msg)
	case constants.StateEditSettings:
		return m, handlers.HandleSettingsFormState(m.Model, msg)
	case constants.StateConfirmDeleteExpense:
		if k, ok := msg.(tea.KeyMsg); ok {
			handlers.HandleConfirmDeleteExpense(m.Model, k)
		}
		return m, nil
	case constants.StateConfirmDeleteTask:
		if k, ok := msg.(tea.KeyMsg); ok {
			handlers.HandleConfirmDeleteTask(m.Model, k)
		}
		return m, nil
	case constants.StateConfirmDeleteHabit:
		if k, ok := msg.(tea.KeyMsg); ok {
			handlers.HandleConfirmDeleteHabit(m.Model, k)
		}
		return m, nil
	case constants.StateHabitGrid:
		if k, ok := msg.(tea.KeyMsg); ok {
			if k.String() == "ctrl+c" {
				return m, tea.Quit
			}
			handlers.HandleGridKeys(m.Model, k)
		}
		return m, nil
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		if handled, cmd := handlers.HandleGlobalKeys(m.Model, k); handled {
			return m, cmd
		}
	}

	if handled, cmd := handlers.HandleBudgetMsgs(m.Model, msg); handled {
		return m, cmd
	}
	if handled, cmd := handlers.HandleTodoMsgs(m.Model, msg); handled {
		return m, cmd
	}
	if handled, cmd := handlers.HandleHabitsMsgs(m.Model, msg); handled {
		return m, cmd
	}

	var cmd tea.Cmd
	switch m.State {
	case constants.StateBudget:
		m.Budget, cmd = m.Budget.Update(msg)
	case constants.StateTimer:
		m.Pomodoro, cmd = m.Pomodoro.Update(msg)
	case constants.StateTodo:
		m.Todo, cmd = m.Todo.Update(msg)
	case constants.StateHabits:
		m.Habits, cmd = m.Habits.Update(msg)
	}
	return m, cmd
}
