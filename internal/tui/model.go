package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"dayboard/internal/storage"
	"dayboard/internal/tui/state"
)

// Model wraps the shared state so handlers can mutate it while bubbletea
// passes the model by value.
type Model struct {
	*state.Model
}

func NewModel(store storage.Provider) Model {
	return Model{Model: state.NewModel(store)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Run starts the dashboard on the given store and blocks until quit.
func Run(store storage.Provider) error {
	p := tea.NewProgram(NewModel(store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
