package stats

import "dayboard/internal/dateutil"

// Cell is one slot of a habit month grid. Leading placeholder cells pad the
// first row to the weekday of day 1; they carry no date.
type Cell struct {
	Date      string
	Day       int
	Empty     bool
	Completed bool
}

// MonthGrid produces the ordered cell sequence for a habit's calendar view of
// the given month (zero-based index).
func MonthGrid(completions map[string]bool, year, monthIndex int) []Cell {
	cells := make([]Cell, 0, 42)
	for i := 0; i < dateutil.FirstWeekday(year, monthIndex); i++ {
		cells = append(cells, Cell{Empty: true})
	}
	for day := 1; day <= dateutil.DaysInMonth(year, monthIndex); day++ {
		date := dateutil.DayString(year, monthIndex, day)
		cells = append(cells, Cell{
			Date:      date,
			Day:       day,
			Completed: completions[date],
		})
	}
	return cells
}
