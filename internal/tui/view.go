package tui

import (
	"github.com/charmbracelet/lipgloss"

	"dayboard/internal/constants"
)

func (m Model) View() string {
	switch m.State {
	case constants.StateAddExpense:
		return m.viewForm("New Expense")
	case constants.StateAddTask:
		return m.viewForm("New Task")
	case constants.StateAddHabit:
		return m.viewForm("New Habit")
	case constants.StateEditSettings:
		return m.viewForm("Timer Settings")
	case constants.StateConfirmDeleteExpense:
		return m.viewConfirm("expense")
	case constants.StateConfirmDeleteTask:
		return m.viewConfirm("task")
	case constants.StateConfirmDeleteHabit:
		return m.viewConfirm("habit")
	case constants.StateHabitGrid:
		return docStyle.Render(m.Grid.View())
	}

	var content string
	switch m.State {
	case constants.StateDashboard:
		content = m.Dashboard.View()
	case constants.StateBudget:
		content = m.Budget.View()
	case constants.StateTimer:
		content = m.Pomodoro.View()
	case constants.StateTodo:
		content = m.Todo.View()
	case constants.StateHabits:
		content = m.Habits.View()
	}

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.viewTabs(),
		"",
		content,
		"",
		m.Help.View(m.Keys),
	))
}

func (m Model) viewTabs() string {
	rendered := make([]string, len(tabNames))
	for i, name := range tabNames {
		if constants.SessionState(i) == m.State {
			rendered[i] = activeTabStyle.Render(name)
		} else {
			rendered[i] = inactiveTabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) viewForm(title string) string {
	if m.Form == nil {
		return ""
	}
	parts := []string{titleStyle.Render(title), ""}
	if m.FormError != "" {
		parts = append(parts, errorStyle.Render(m.FormError), "")
	}
	parts = append(parts, m.Form.View())
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) viewConfirm(subject string) string {
	dialog := dialogStyle.Render(
		"Delete this " + subject + "?\n\n" +
			dangerStyle.Render("y") + " yes    n no",
	)
	if m.Width == 0 || m.Height == 0 {
		return dialog
	}
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, dialog)
}
