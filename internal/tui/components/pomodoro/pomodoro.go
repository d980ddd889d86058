package pomodoro

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dayboard/internal/models"
	"dayboard/internal/stats"
	"dayboard/internal/timer"
)

// TickMsg carries the generation that scheduled it so ticks from a
// paused or reset countdown can be discarded.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// PhaseCompleteMsg is emitted when a countdown reaches zero.
type PhaseCompleteMsg struct {
	Phase timer.Phase
}

func tick(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

type KeyMap struct {
	StartPause key.Binding
	Reset      key.Binding
	Settings   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		StartPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
	}
}

type OpenSettingsMsg struct{}

var (
	clockStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	focusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171"))
	breakStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399"))
	faintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type Model struct {
	Timer         timer.Timer
	keys          KeyMap
	gen           int
	sessionsToday int
	width         int
}

func New(settings models.Settings, sessionsToday int) Model {
	return Model{
		Timer:         timer.New(settings.FocusMin, settings.BreakMin),
		keys:          DefaultKeyMap(),
		sessionsToday: sessionsToday,
	}
}

func (m *Model) SetSessionsToday(n int) {
	m.sessionsToday = n
}

// ApplySettings picks up new durations. The running countdown is never
// disturbed; an idle phase snaps to its new length.
func (m *Model) ApplySettings(settings models.Settings) {
	m.Timer.SetFocusMinutes(settings.FocusMin)
	m.Timer.SetBreakMinutes(settings.BreakMin)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if msg.Gen != m.gen || !m.Timer.Running {
			return m, nil
		}
		if completed := m.Timer.Tick(); completed != "" {
			m.gen++
			return m, func() tea.Msg { return PhaseCompleteMsg{Phase: completed} }
		}
		return m, tick(m.gen)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.StartPause):
			m.gen++
			if m.Timer.Running {
				m.Timer.Pause()
				return m, nil
			}
			m.Timer.Start()
			return m, tick(m.gen)
		case key.Matches(msg, m.keys.Reset):
			m.gen++
			m.Timer.Reset()
			return m, nil
		case key.Matches(msg, m.keys.Settings):
			return m, func() tea.Msg { return OpenSettingsMsg{} }
		}
	}

	return m, nil
}

func (m Model) View() string {
	phaseStyle := focusStyle
	phaseLabel := "Focus"
	if m.Timer.Phase == timer.PhaseBreak {
		phaseStyle = breakStyle
		phaseLabel = "Break"
	}

	status := "paused"
	if m.Timer.Running {
		status = "running"
	}

	var b strings.Builder
	b.WriteString(phaseStyle.Render(phaseLabel) + faintStyle.Render("  "+status))
	b.WriteString("\n\n")
	b.WriteString(clockStyle.Render(stats.FormatClock(m.Timer.Remaining)))
	b.WriteString("\n\n")
	b.WriteString(m.progressBar(30))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Sessions today: %d", m.sessionsToday))
	b.WriteString("\n\n")
	b.WriteString(faintStyle.Render("space start/pause • r reset • s settings"))
	return b.String()
}

func (m Model) progressBar(width int) string {
	filled := int(m.Timer.Progress() * float64(width))
	if filled > width {
		filled = width
	}
	phaseStyle := focusStyle
	if m.Timer.Phase == timer.PhaseBreak {
		phaseStyle = breakStyle
	}
	return phaseStyle.Render(strings.Repeat("█", filled)) +
		faintStyle.Render(strings.Repeat("░", width-filled))
}

func (m *Model) SetSize(width, height int) {
	m.width = width
}
