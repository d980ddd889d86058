package budget

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dayboard/internal/chart"
	"dayboard/internal/dateutil"
	"dayboard/internal/models"
	"dayboard/internal/stats"
)

type AddExpenseMsg struct{}

type DeleteExpenseMsg struct {
	ID string
}

type Item struct {
	Expense models.Expense
}

func (i Item) Title() string {
	return fmt.Sprintf("%s  $%s", i.Expense.Title, i.Expense.Amount.StringFixed(2))
}

func (i Item) Description() string {
	return fmt.Sprintf("%s - %s", i.Expense.Category, i.Expense.Date)
}

func (i Item) FilterValue() string { return i.Expense.Title }

type KeyMap struct {
	Add    key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

var sidebarStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("62")).
	Padding(1, 2).
	Width(40)

type Model struct {
	list    list.Model
	keys    KeyMap
	sidebar string
	width   int
	height  int
}

func New(expenses []models.Expense, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Expenses"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Delete}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	m := Model{
		list: l,
		keys: keys,
	}
	m.SetExpenses(expenses)
	return m
}

// SetExpenses replaces the displayed collection and recomputes the current
// month's breakdown. The list shows newest entries first.
func (m *Model) SetExpenses(expenses []models.Expense) {
	items := make([]list.Item, 0, len(expenses))
	for i := len(expenses) - 1; i >= 0; i-- {
		items = append(items, Item{Expense: expenses[i]})
	}
	m.list.SetItems(items)

	now := time.Now()
	year, monthIndex := now.Year(), int(now.Month())-1
	summary := stats.MonthlySummary(expenses, year, monthIndex)

	monthName, _ := dateutil.MonthName(monthIndex)
	breakdown, err := chart.Bars(summary, 34)
	if err != nil {
		breakdown = err.Error()
	}
	m.sidebar = fmt.Sprintf("%s %d\n\n%s", monthName, year, breakdown)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddExpenseMsg{} }
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteExpenseMsg{ID: i.Expense.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			"\n  No expenses yet.\n  Press 'a' to add one.",
			sidebarStyle.Render(m.sidebar),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), sidebarStyle.Render(m.sidebar))
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	listWidth := width - 44
	if listWidth < 20 {
		listWidth = 20
	}
	m.list.SetSize(listWidth, height)
}
