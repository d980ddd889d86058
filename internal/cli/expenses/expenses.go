package expenses

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"dayboard/internal/chart"
	"dayboard/internal/cli"
	"dayboard/internal/constants"
	"dayboard/internal/dateutil"
	"dayboard/internal/models"
	"dayboard/internal/stats"
	"dayboard/internal/storage"
	"dayboard/internal/validation"
)

type Cmd struct {
	Add     AddCmd     `cmd:"" help:"Record an expense."`
	List    ListCmd    `cmd:"" help:"List recorded expenses."`
	Delete  DeleteCmd  `cmd:"" help:"Delete an expense by id."`
	Summary SummaryCmd `cmd:"" help:"Show a monthly per-category breakdown."`
}

type AddCmd struct {
	Title    string `arg:"" help:"What the money went to."`
	Amount   string `arg:"" help:"Amount spent, e.g. 12.50."`
	Category string `short:"c" default:"Misc" help:"One of: Food, Books, Travel, Misc."`
}

func (c *AddCmd) Validate() error {
	amount, err := decimal.NewFromString(c.Amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q", c.Amount)
	}
	return validation.ValidateExpense(c.Title, amount, models.Category(c.Category))
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()

	amount, err := decimal.NewFromString(c.Amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q", c.Amount)
	}

	expenses := storage.LoadSlot(ctx.Store, constants.SlotExpenses, []models.Expense{})
	expense := models.Expense{
		ID:       uuid.NewString(),
		Title:    c.Title,
		Amount:   amount,
		Category: models.Category(c.Category),
		Date:     dateutil.Today(),
	}
	expenses = models.AppendExpense(expenses, expense)
	if err := storage.SaveSlot(ctx.Store, constants.SlotExpenses, expenses); err != nil {
		return err
	}

	fmt.Printf("Added %q: $%s (%s)\n", expense.Title, expense.Amount.StringFixed(2), expense.Category)
	return nil
}

type ListCmd struct {
	Month string `help:"Only show a given month (YYYY-MM)."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	expenses := storage.LoadSlot(ctx.Store, constants.SlotExpenses, []models.Expense{})

	shown := 0
	for _, e := range expenses {
		if c.Month != "" && !matchesMonth(e.Date, c.Month) {
			continue
		}
		fmt.Printf("%s  %s  %-7s  $%s  %s\n", e.ID, e.Date, e.Category, e.Amount.StringFixed(2), e.Title)
		shown++
	}
	if shown == 0 {
		fmt.Println("No expenses recorded.")
	}
	return nil
}

func matchesMonth(date, month string) bool {
	return len(date) >= len(month) && date[:len(month)] == month
}

type DeleteCmd struct {
	ID string `arg:"" help:"Expense id (see 'expense list')."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()

	expenses := storage.LoadSlot(ctx.Store, constants.SlotExpenses, []models.Expense{})
	remaining := models.RemoveExpense(expenses, c.ID)
	if len(remaining) == len(expenses) {
		return fmt.Errorf("no expense with id %s", c.ID)
	}
	if err := storage.SaveSlot(ctx.Store, constants.SlotExpenses, remaining); err != nil {
		return err
	}

	fmt.Println("Expense deleted.")
	return nil
}

type SummaryCmd struct {
	Month int `help:"Month number 1-12 (default: current month)."`
	Year  int `help:"Four digit year (default: current year)."`
}

func (c *SummaryCmd) Validate() error {
	if c.Month < 0 || c.Month > 12 {
		return fmt.Errorf("month must be between 1 and 12")
	}
	return nil
}

func (c *SummaryCmd) Run(ctx *cli.Context) error {
	now := time.Now()
	year, monthIndex := now.Year(), int(now.Month())-1
	if c.Month != 0 {
		monthIndex = c.Month - 1
	}
	if c.Year != 0 {
		year = c.Year
	}

	expenses := storage.LoadSlot(ctx.Store, constants.SlotExpenses, []models.Expense{})
	summary := stats.MonthlySummary(expenses, year, monthIndex)

	monthName, err := dateutil.MonthName(monthIndex)
	if err != nil {
		return err
	}
	breakdown, err := chart.Bars(summary, 50)
	if err != nil {
		return err
	}

	fmt.Printf("%s %d\n\n%s\n", monthName, year, breakdown)
	return nil
}
