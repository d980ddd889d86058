package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dayboard/internal/models"
	"dayboard/internal/stats"
)

// categoryColors maps every category of the closed enum to its chart color.
// New categories must be added here; ColorFor refuses anything unmapped.
var categoryColors = map[models.Category]lipgloss.Color{
	models.CategoryFood:   lipgloss.Color("#34D399"),
	models.CategoryBooks:  lipgloss.Color("#60A5FA"),
	models.CategoryTravel: lipgloss.Color("#FBBF24"),
	models.CategoryMisc:   lipgloss.Color("#A78BFA"),
}

// ColorFor returns the chart color for a category, or an error for a
// category outside the enum. There is deliberately no silent fallback.
func ColorFor(c models.Category) (lipgloss.Color, error) {
	color, ok := categoryColors[c]
	if !ok {
		return "", fmt.Errorf("no chart color for category: %s", c)
	}
	return color, nil
}

// Bars renders the monthly breakdown as horizontal bars scaled to width.
// An empty summary degrades to a textual placeholder.
func Bars(summary stats.MonthSummary, width int) (string, error) {
	if len(summary.Rows) == 0 {
		return "No data for this month's chart.", nil
	}

	maxAmount := summary.Rows[0].Total
	for _, row := range summary.Rows[1:] {
		if row.Total.GreaterThan(maxAmount) {
			maxAmount = row.Total
		}
	}

	barWidth := width - 20
	if barWidth < 8 {
		barWidth = 8
	}

	var b strings.Builder
	for _, row := range summary.Rows {
		color, err := ColorFor(row.Category)
		if err != nil {
			return "", err
		}
		scale, _ := row.Total.Div(maxAmount).Float64()
		length := int(scale * float64(barWidth))
		if length < 1 {
			length = 1
		}
		bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", length))
		fmt.Fprintf(&b, "%-7s %s %s\n", row.Category, bar, row.Total.StringFixed(2))
	}
	fmt.Fprintf(&b, "%-7s %s", "Total", summary.Total.StringFixed(2))
	return b.String(), nil
}
