package validation

import (
	"testing"

	"github.com/shopspring/decimal"

	"dayboard/internal/models"
)

func TestValidateExpense(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		amount   string
		category models.Category
		wantErr  bool
	}{
		{"valid", "lunch", "12.50", models.CategoryFood, false},
		{"empty title", "", "12.50", models.CategoryFood, true},
		{"whitespace title", "   ", "12.50", models.CategoryFood, true},
		{"zero amount", "lunch", "0", models.CategoryFood, true},
		{"negative amount", "lunch", "-3", models.CategoryFood, true},
		{"unknown category", "lunch", "12.50", "Groceries", true},
		{"lowercase category", "lunch", "12.50", "food", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			err := ValidateExpense(tt.title, amount, tt.category)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateExpense() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateTask(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		dueDate string
		wantErr bool
	}{
		{"valid with due date", "report", "2025-03-10", false},
		{"valid without due date", "report", "", false},
		{"empty title", "", "", true},
		{"malformed due date", "report", "10/03/2025", true},
		{"impossible due date", "report", "2025-13-40", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTask(tt.title, tt.dueDate)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTask() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateHabitName(t *testing.T) {
	if err := ValidateHabitName("Read"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateHabitName("  "); err == nil {
		t.Error("whitespace name should fail")
	}
}

func TestValidateMinutes(t *testing.T) {
	if err := ValidateMinutes(25); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, n := range []int{0, -5} {
		if err := ValidateMinutes(n); err == nil {
			t.Errorf("ValidateMinutes(%d) should fail", n)
		}
	}
}
