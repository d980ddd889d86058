package habits

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"dayboard/internal/dateutil"
	"dayboard/internal/models"
	"dayboard/internal/stats"
)

var (
	gridTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	gridDoneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	gridTodayStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	gridDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// GridModel renders one habit's completion calendar, one month at a time.
type GridModel struct {
	Habit      models.Habit
	Year       int
	MonthIndex int
}

func NewGridModel(habit models.Habit) GridModel {
	now := time.Now()
	return GridModel{
		Habit:      habit,
		Year:       now.Year(),
		MonthIndex: int(now.Month()) - 1,
	}
}

func (g *GridModel) PrevMonth() {
	g.MonthIndex--
	if g.MonthIndex < 0 {
		g.MonthIndex = 11
		g.Year--
	}
}

func (g *GridModel) NextMonth() {
	g.MonthIndex++
	if g.MonthIndex > 11 {
		g.MonthIndex = 0
		g.Year++
	}
}

func (g GridModel) View() string {
	monthName, err := dateutil.MonthName(g.MonthIndex)
	if err != nil {
		return err.Error()
	}

	today := dateutil.Today()
	streak := stats.Streak(g.Habit.Completions, today)
	cells := stats.MonthGrid(g.Habit.Completions, g.Year, g.MonthIndex)

	var b strings.Builder
	b.WriteString(gridTitleStyle.Render(g.Habit.Name))
	b.WriteString(fmt.Sprintf("\n%s %d    streak %d (best %d)\n\n", monthName, g.Year, streak.Current, streak.Max))
	b.WriteString(gridDimStyle.Render(" Su  Mo  Tu  We  Th  Fr  Sa"))
	b.WriteString("\n")

	for i, cell := range cells {
		if i > 0 && i%7 == 0 {
			b.WriteString("\n")
		}
		switch {
		case cell.Empty:
			b.WriteString("    ")
		case cell.Completed:
			b.WriteString(gridDoneStyle.Render(fmt.Sprintf(" %2d▪", cell.Day)))
		case cell.Date == today:
			b.WriteString(gridTodayStyle.Render(fmt.Sprintf(" %2d ", cell.Day)))
		default:
			b.WriteString(fmt.Sprintf(" %2d ", cell.Day))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(gridDimStyle.Render("←/→ change month • esc back"))
	return b.String()
}
