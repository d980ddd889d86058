package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories {
		if !c.Valid() {
			t.Errorf("%s should be valid", c)
		}
	}
	for _, c := range []Category{"", "food", "Groceries"} {
		if c.Valid() {
			t.Errorf("%q should not be valid", c)
		}
	}
}

func TestRemoveExpense(t *testing.T) {
	expenses := []Expense{{ID: "e1"}, {ID: "e2"}}

	got := RemoveExpense(expenses, "e1")
	if len(got) != 1 || got[0].ID != "e2" {
		t.Errorf("got %+v, want only e2", got)
	}

	got = RemoveExpense(got, "e1")
	if len(got) != 1 {
		t.Errorf("removing an absent id changed the collection: %+v", got)
	}
}

func TestExpenseAmountSurvivesSerialization(t *testing.T) {
	e := Expense{
		ID:       "e1",
		Title:    "coffee",
		Amount:   decimal.RequireFromString("3.30"),
		Category: CategoryFood,
		Date:     "2025-03-10",
	}

	raw, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got Expense
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Amount.Equal(e.Amount) {
		t.Errorf("amount = %s, want %s", got.Amount, e.Amount)
	}
}
