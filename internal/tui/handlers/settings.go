package handlers

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"dayboard/internal/models"
	"dayboard/internal/tui/state"
)

func HandleSettingsFormState(m *state.Model, msg tea.Msg) tea.Cmd {
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
		focusMin, ferr := strconv.Atoi(m.SettingsForm.FocusMin)
		breakMin, berr := strconv.Atoi(m.SettingsForm.BreakMin)
		if ferr != nil || berr != nil {
			m.FormError = "minutes must be whole numbers"
			fm := *m.SettingsForm
			m.SettingsForm = &fm
			m.Form = NewSettingsForm(m.SettingsForm)
			return m.Form.Init()
		}
		m.Settings = models.Settings{
			FocusMin:             focusMin,
			BreakMin:             breakMin,
			NotificationsEnabled: m.SettingsForm.NotificationsEnabled,
		}
		persistSettings(m)
		m.ClearForm()
		m.State = m.PreviousState
	case huh.StateAborted:
		m.ClearForm()
		m.State = m.PreviousState
	}

	return cmd
}
