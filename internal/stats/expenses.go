package stats

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"dayboard/internal/models"
)

// CategoryTotal is one row of a monthly category breakdown.
type CategoryTotal struct {
	Category models.Category
	Total    decimal.Decimal
}

// MonthSummary is the aggregate of one month's expenses. Rows appear in order
// of first occurrence; Total is the grand total across all rows.
type MonthSummary struct {
	Rows  []CategoryTotal
	Total decimal.Decimal
}

// MonthlySummary filters expenses to the given month (zero-based index) and
// groups amounts by category. Rounding to two decimal places is left to
// display code.
func MonthlySummary(expenses []models.Expense, year, monthIndex int) MonthSummary {
	prefix := fmt.Sprintf("%04d-%02d-", year, monthIndex+1)
	summary := MonthSummary{Total: decimal.Zero}
	index := make(map[models.Category]int)
	for _, e := range expenses {
		if !strings.HasPrefix(e.Date, prefix) {
			continue
		}
		if i, ok := index[e.Category]; ok {
			summary.Rows[i].Total = summary.Rows[i].Total.Add(e.Amount)
		} else {
			index[e.Category] = len(summary.Rows)
			summary.Rows = append(summary.Rows, CategoryTotal{Category: e.Category, Total: e.Amount})
		}
		summary.Total = summary.Total.Add(e.Amount)
	}
	return summary
}
