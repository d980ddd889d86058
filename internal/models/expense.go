package models

import "github.com/shopspring/decimal"

type Category string

const (
	CategoryFood   Category = "Food"
	CategoryBooks  Category = "Books"
	CategoryTravel Category = "Travel"
	CategoryMisc   Category = "Misc"
)

// Categories lists every expense category in display order.
var Categories = []Category{CategoryFood, CategoryBooks, CategoryTravel, CategoryMisc}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Expense struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Category Category        `json:"category"`
	Date     string          `json:"date"` // YYYY-MM-DD
}

// AppendExpense returns a new collection with e appended.
func AppendExpense(expenses []Expense, e Expense) []Expense {
	out := make([]Expense, 0, len(expenses)+1)
	out = append(out, expenses...)
	return append(out, e)
}

// RemoveExpense returns a new collection without the expense with the given id.
// An unknown id leaves the collection unchanged.
func RemoveExpense(expenses []Expense, id string) []Expense {
	out := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}
