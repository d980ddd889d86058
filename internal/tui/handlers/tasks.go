package handlers

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"dayboard/internal/constants"
	"dayboard/internal/models"
	"dayboard/internal/tui/components/todo"
	"dayboard/internal/tui/state"
)

// HandleTodoMsgs reacts to messages emitted by the todo widget.
func HandleTodoMsgs(m *state.Model, msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case todo.AddTaskMsg:
		m.TaskForm = &state.TaskFormModel{}
		m.Form = NewTaskForm(m.TaskForm)
		m.PreviousState = m.State
		m.State = constants.StateAddTask
		return true, m.Form.Init()
	case todo.ToggleTaskMsg:
		m.Tasks = models.ToggleTask(m.Tasks, msg.ID)
		persistTasks(m)
		return true, nil
	case todo.DeleteTaskMsg:
		m.PendingTaskID = msg.ID
		m.PreviousState = m.State
		m.State = constants.StateConfirmDeleteTask
		return true, nil
	}
	return false, nil
}

func HandleTaskFormState(m *state.Model, msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.ClearForm()
		m.State = m.PreviousState
		return nil
	}

	form, cmd := m.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.Form = f
	}

	switch m.Form.State {
	case huh.StateCompleted:
		m.Tasks = models.AppendTask(m.Tasks, models.Task{
			ID:        uuid.NewString(),
			Title:     m.TaskForm.Title,
			DueDate:   m.TaskForm.DueDate,
			CreatedAt: time.Now().UnixMilli(),
		})
		persistTasks(m)
		m.ClearForm()
		m.State = m.PreviousState
	case huh.StateAborted:
		m.ClearForm()
		m.State = m.PreviousState
	}

	return cmd
}
