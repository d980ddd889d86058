package stats

import "testing"

func TestMonthGrid(t *testing.T) {
	completions := map[string]bool{
		"2025-06-01": true,
		"2025-06-15": true,
	}

	// June 2025 starts on a Sunday: no leading placeholders, 30 days.
	cells := MonthGrid(completions, 2025, 5)
	if len(cells) != 30 {
		t.Fatalf("got %d cells, want 30", len(cells))
	}
	if cells[0].Empty || cells[0].Day != 1 || !cells[0].Completed {
		t.Errorf("cell 0 = %+v, want day 1 completed", cells[0])
	}
	if !cells[14].Completed {
		t.Errorf("day 15 should be completed")
	}
	if cells[1].Completed {
		t.Errorf("day 2 should not be completed")
	}
}

func TestMonthGridLeadingPlaceholders(t *testing.T) {
	// July 2025 starts on a Tuesday: two placeholders before day 1.
	cells := MonthGrid(map[string]bool{}, 2025, 6)
	if len(cells) != 2+31 {
		t.Fatalf("got %d cells, want 33", len(cells))
	}
	for i := 0; i < 2; i++ {
		if !cells[i].Empty {
			t.Errorf("cell %d should be a placeholder", i)
		}
	}
	if cells[2].Day != 1 || cells[2].Date != "2025-07-01" {
		t.Errorf("cell 2 = %+v, want day 1 of July", cells[2])
	}
	if cells[len(cells)-1].Day != 31 {
		t.Errorf("last cell day = %d, want 31", cells[len(cells)-1].Day)
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{60, "01:00"},
		{1500, "25:00"},
		{3599, "59:59"},
	}

	for _, tt := range tests {
		if got := FormatClock(tt.seconds); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
