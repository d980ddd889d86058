package handlers

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"dayboard/internal/constants"
	"dayboard/internal/dateutil"
	"dayboard/internal/logger"
	"dayboard/internal/models"
	"dayboard/internal/timer"
	"dayboard/internal/tui/components/pomodoro"
	"dayboard/internal/tui/state"
)

// HandlePomodoroMsgs routes timer messages. Ticks are forwarded to the
// timer widget even when another tab is active so the countdown keeps
// running in the background.
func HandlePomodoroMsgs(m *state.Model, msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case pomodoro.TickMsg:
		var cmd tea.Cmd
		m.Pomodoro, cmd = m.Pomodoro.Update(msg)
		return true, cmd

	case pomodoro.PhaseCompleteMsg:
		if msg.Phase == timer.PhaseFocus {
			m.History = models.IncrementSessions(m.History, dateutil.Today())
			persistHistory(m)
		}
		return true, notifyCmd(m, msg.Phase)

	case pomodoro.OpenSettingsMsg:
		m.SettingsForm = &state.SettingsFormModel{
			FocusMin:             fmt.Sprintf("%d", m.Settings.FocusMin),
			BreakMin:             fmt.Sprintf("%d", m.Settings.BreakMin),
			NotificationsEnabled: m.Settings.NotificationsEnabled,
		}
		m.Form = NewSettingsForm(m.SettingsForm)
		m.PreviousState = m.State
		m.State = constants.StateEditSettings
		return true, m.Form.Init()
	}
	return false, nil
}

// notifyCmd posts a desktop notification off the update loop. Delivery is
// best effort and never touches widget state.
func notifyCmd(m *state.Model, phase timer.Phase) tea.Cmd {
	if !m.Settings.NotificationsEnabled {
		return nil
	}
	text := "Focus session complete. Time for a break!"
	if phase == timer.PhaseBreak {
		text = "Break is over. Back to it!"
	}
	n := m.Notifier
	return func() tea.Msg {
		if err := n.Notify(text); err != nil {
			logger.Debug("Notification not delivered", "error", err)
		}
		return nil
	}
}
