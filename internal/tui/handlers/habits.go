package handlers

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"dayboard/internal/constants"
	"dayboard/internal/dateutil"
	"dayboard/internal/models"
	"dayboard/internal/tui/components/habits"
	"dayboard/internal/tui/state"
)

// HandleHabitsMsgs reacts to messages emitted by the habits widget.
func HandleHabitsMsgs(m *state.Model, msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case habits.AddHabitMsg:
		m.HabitForm = &state.HabitFormModel{}
		m.Form = NewHabitForm(m.HabitForm)
		m.PreviousState = m.State
		m.State = constants.StateAddHabit
		return true, m.Form.Init()
	case habits.ToggleHabitMsg:
		m.HabitList = models.ToggleCompletion(m.HabitList, msg.ID, dateutil.Today())
		persistHabits(m)
		return true, nil
	case habits.DeleteHabitMsg:
		m.PendingHabitID = msg.ID
		m.PreviousState = m.State
		m.State = constants.StateConfirmDeleteHabit
		return true, nil
	case habits.ShowGridMsg:
		for _, h := range m.HabitList {
			if h.ID == msg.ID {
				m.Grid = habits.NewGridModel(h)
				m.PreviousState = m.State
				m.State = constants.StateHabitGrid
				break
			}
		}
		return true, nil
	}
	return false, nil
}

// HandleGridKeys pages the habit calendar and returns to the list on esc.
func HandleGridKeys(m *state.Model, msg tea.KeyMsg) {
	switch msg.String() {
	case "left", "h":
		m.Grid.PrevMonth()
	case "right", "l":
		m.Grid.NextMonth()
	case "esc", "g", "q":
		m.State = m.PreviousState
	}
}

func HandleHabitFormState(m *state.Model, msg tea.Msg) tea.Cmd {
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
		m.HabitList = models.AppendHabit(m.HabitList, models.Habit{
			ID:          uuid.NewString(),
			Name:        m.HabitForm.Name,
			CreatedAt:   time.Now().UnixMilli(),
			Completions: map[string]bool{},
		})
		persistHabits(m)
		m.ClearForm()
		m.State = m.PreviousState
	case huh.StateAborted:
		m.ClearForm()
		m.State = m.PreviousState
	}

	return cmd
}
