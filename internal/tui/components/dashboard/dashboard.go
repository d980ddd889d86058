package dashboard

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"dayboard/internal/dateutil"
	"dayboard/internal/models"
	"dayboard/internal/stats"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Width(26)

	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cardValueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	greetingStyle  = lipgloss.NewStyle().Bold(true)
)

// Model is a read-only summary of the other widgets. It handles no input
// of its own; tab switching is global.
type Model struct {
	monthSpend    decimal.Decimal
	sessionsToday int
	openTasks     int
	habitsDone    int
	habitsTotal   int
	width         int
}

func New() Model {
	return Model{}
}

// Refresh recomputes every card from the current collections.
func (m *Model) Refresh(expenses []models.Expense, tasks []models.Task, habits []models.Habit, history []models.SessionRecord) {
	now := time.Now()
	today := dateutil.Today()

	summary := stats.MonthlySummary(expenses, now.Year(), int(now.Month())-1)
	m.monthSpend = summary.Total

	m.sessionsToday = models.SessionsOn(history, today)

	m.openTasks = 0
	for _, t := range tasks {
		if !t.IsCompleted {
			m.openTasks++
		}
	}

	m.habitsDone = 0
	m.habitsTotal = len(habits)
	for _, h := range habits {
		if h.Completions[today] {
			m.habitsDone++
		}
	}
}

func (m Model) View() string {
	greeting := greetingStyle.Render(greetingFor(time.Now().Hour()))
	date := time.Now().Format("Monday, January 2")

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Spent this month", "$"+m.monthSpend.StringFixed(2)),
		card("Focus sessions today", fmt.Sprintf("%d", m.sessionsToday)),
	)
	cards2 := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Open tasks", fmt.Sprintf("%d", m.openTasks)),
		card("Habits done today", fmt.Sprintf("%d/%d", m.habitsDone, m.habitsTotal)),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		greeting,
		cardTitleStyle.Render(date),
		"",
		cards,
		cards2,
	)
}

func card(title, value string) string {
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render(title),
		cardValueStyle.Render(value),
	))
}

func greetingFor(hour int) string {
	switch {
	case hour < 5:
		return "Burning the midnight oil?"
	case hour < 12:
		return "Good morning!"
	case hour < 18:
		return "Good afternoon!"
	default:
		return "Good evening!"
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
}
