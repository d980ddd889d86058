package chart

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"dayboard/internal/models"
	"dayboard/internal/stats"
)

func TestColorForCoversEveryCategory(t *testing.T) {
	for _, c := range models.Categories {
		if _, err := ColorFor(c); err != nil {
			t.Errorf("ColorFor(%s) returned error: %v", c, err)
		}
	}
}

func TestColorForUnknownCategory(t *testing.T) {
	if _, err := ColorFor("Groceries"); err == nil {
		t.Error("unknown category should return an error, not a fallback color")
	}
}

func TestBarsEmptySummary(t *testing.T) {
	got, err := Bars(stats.MonthSummary{}, 40)
	if err != nil {
		t.Fatalf("Bars: %v", err)
	}
	if !strings.Contains(got, "No data") {
		t.Errorf("empty summary should render a placeholder, got %q", got)
	}
}

func TestBars(t *testing.T) {
	summary := stats.MonthSummary{
		Rows: []stats.CategoryTotal{
			{Category: models.CategoryFood, Total: decimal.RequireFromString("30")},
			{Category: models.CategoryBooks, Total: decimal.RequireFromString("10")},
		},
		Total: decimal.RequireFromString("40"),
	}

	got, err := Bars(summary, 40)
	if err != nil {
		t.Fatalf("Bars: %v", err)
	}
	for _, want := range []string{"Food", "Books", "30.00", "10.00", "Total", "40.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestBarsRejectsUnknownCategory(t *testing.T) {
	summary := stats.MonthSummary{
		Rows:  []stats.CategoryTotal{{Category: "Groceries", Total: decimal.RequireFromString("5")}},
		Total: decimal.RequireFromString("5"),
	}
	if _, err := Bars(summary, 40); err == nil {
		t.Error("summary with an unknown category should fail")
	}
}
