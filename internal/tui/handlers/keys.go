package handlers

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"dayboard/internal/constants"
	"dayboard/internal/tui/state"
)

// mainTabs is the tab cycle order.
var mainTabs = []constants.SessionState{
	constants.StateDashboard,
	constants.StateBudget,
	constants.StateTimer,
	constants.StateTodo,
	constants.StateHabits,
}

// HandleGlobalKeys processes keys that apply in every main tab. It reports
// whether the key was consumed.
func HandleGlobalKeys(m *state.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return true, tea.Quit
	case key.Matches(msg, m.Keys.NextTab):
		m.State = cycleTab(m.State, 1)
		return true, nil
	case key.Matches(msg, m.Keys.PrevTab):
		m.State = cycleTab(m.State, -1)
		return true, nil
	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return true, nil
	}
	return false, nil
}

func cycleTab(current constants.SessionState, delta int) constants.SessionState {
	for i, s := range mainTabs {
		if s == current {
			next := (i + delta + len(mainTabs)) % len(mainTabs)
			return mainTabs[next]
		}
	}
	return current
}
