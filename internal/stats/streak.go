package stats

import (
	"sort"

	"dayboard/internal/dateutil"
)

// StreakResult holds the consecutive-day completion runs of a habit.
type StreakResult struct {
	Current int
	Max     int
}

// Streak walks the habit's completion dates in ascending order, counting
// consecutive-day runs. Current is the run ending at the most recent
// completion, forced to 0 when that completion is more than one calendar day
// before today (the streak is broken by absence).
func Streak(completions map[string]bool, today string) StreakResult {
	days := make([]string, 0, len(completions))
	for d := range completions {
		days = append(days, d)
	}
	sort.Strings(days)

	if len(days) == 0 {
		return StreakResult{}
	}

	current, max := 1, 1
	for i := 1; i < len(days); i++ {
		if diff, ok := dateutil.DaysBetween(days[i-1], days[i]); ok && diff == 1 {
			current++
		} else {
			current = 1
		}
		if current > max {
			max = current
		}
	}

	if gap, ok := dateutil.DaysBetween(days[len(days)-1], today); ok && gap > 1 {
		current = 0
	}

	return StreakResult{Current: current, Max: max}
}
