package handlers

import (
	"errors"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"dayboard/internal/dateutil"
	"dayboard/internal/models"
	"dayboard/internal/tui/state"
	"dayboard/internal/validation"
)

func requiredField(s string) error {
	if s == "" {
		return errors.New("this field is required")
	}
	return nil
}

func validAmount(s string) error {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return errors.New("enter a valid amount, e.g. 12.50")
	}
	if !amount.IsPositive() {
		return errors.New("amount must be greater than zero")
	}
	return nil
}

func validOptionalDay(s string) error {
	if s == "" {
		return nil
	}
	if _, err := dateutil.ParseDay(s); err != nil {
		return errors.New("use YYYY-MM-DD")
	}
	return nil
}

func validMinutes(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.New("enter a whole number of minutes")
	}
	return validation.ValidateMinutes(n)
}

func NewExpenseForm(fm *state.ExpenseFormModel) *huh.Form {
	options := make([]huh.Option[models.Category], len(models.Categories))
	for i, c := range models.Categories {
		options[i] = huh.NewOption(string(c), c)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title).
				Validate(requiredField),
			huh.NewInput().
				Title("Amount").
				Value(&fm.Amount).
				Validate(validAmount),
			huh.NewSelect[models.Category]().
				Title("Category").
				Options(options...).
				Value(&fm.Category),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewTaskForm(fm *state.TaskFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title).
				Validate(requiredField),
			huh.NewInput().
				Title("Due date (optional)").
				Placeholder("YYYY-MM-DD").
				Value(&fm.DueDate).
				Validate(validOptionalDay),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewHabitForm(fm *state.HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Value(&fm.Name).
				Validate(requiredField),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewSettingsForm(fm *state.SettingsFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Focus minutes").
				Value(&fm.FocusMin).
				Validate(validMinutes),
			huh.NewInput().
				Title("Break minutes").
				Value(&fm.BreakMin).
				Validate(validMinutes),
			huh.NewConfirm().
				Title("Desktop notifications").
				Value(&fm.NotificationsEnabled),
		),
	).WithTheme(huh.ThemeDracula())
}
