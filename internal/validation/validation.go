package validation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"dayboard/internal/dateutil"
	"dayboard/internal/models"
)

// ValidateExpense checks an expense submission before any state is mutated.
func ValidateExpense(title string, amount decimal.Decimal, category models.Category) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title must not be empty")
	}
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be greater than zero")
	}
	if !category.Valid() {
		return fmt.Errorf("unknown category: %s", category)
	}
	return nil
}

// ValidateTask checks a task submission. The due date is optional but must be
// a YYYY-MM-DD string when present.
func ValidateTask(title, dueDate string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title must not be empty")
	}
	if dueDate != "" {
		if _, err := dateutil.ParseDay(dueDate); err != nil {
			return fmt.Errorf("invalid due date (expected YYYY-MM-DD): %w", err)
		}
	}
	return nil
}

// ValidateHabitName checks a habit submission.
func ValidateHabitName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name must not be empty")
	}
	return nil
}

// ValidateMinutes checks a timer duration in minutes.
func ValidateMinutes(min int) error {
	if min <= 0 {
		return fmt.Errorf("duration must be a positive number of minutes")
	}
	return nil
}
