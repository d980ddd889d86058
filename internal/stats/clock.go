package stats

import "fmt"

// FormatClock renders a non-negative second count as MM:SS.
func FormatClock(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
