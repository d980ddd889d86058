package stats

import (
	"sort"

	"dayboard/internal/models"
)

// SortMode selects the task list ordering.
type SortMode string

const (
	SortByDate       SortMode = "by-date"
	SortByCompletion SortMode = "by-completion"
)

// SortTasks returns a new, sorted collection. Incomplete tasks always sort
// before completed ones. In by-date mode tasks within each group order by due
// date ascending with undated tasks last, ties broken by newest creation
// first; by-completion mode is otherwise stable.
func SortTasks(tasks []models.Task, mode SortMode) []models.Task {
	out := make([]models.Task, len(tasks))
	copy(out, tasks)

	switch mode {
	case SortByCompletion:
		sort.SliceStable(out, func(i, j int) bool {
			return !out[i].IsCompleted && out[j].IsCompleted
		})
	case SortByDate:
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i], out[j]
			if a.IsCompleted != b.IsCompleted {
				return !a.IsCompleted
			}
			da, db := dueKey(a), dueKey(b)
			if da != db {
				return da < db
			}
			return a.CreatedAt > b.CreatedAt
		})
	}
	return out
}

// dueKey maps an absent due date to a sentinel sorting after any date string.
func dueKey(t models.Task) string {
	if t.DueDate == "" {
		return "~"
	}
	return t.DueDate
}
