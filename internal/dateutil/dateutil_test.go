package dateutil

import "testing"

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name       string
		year       int
		monthIndex int
		want       int
	}{
		{"january", 2025, 0, 31},
		{"february leap year", 2024, 1, 29},
		{"february non-leap year", 2023, 1, 28},
		{"april", 2025, 3, 30},
		{"december", 2025, 11, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysInMonth(tt.year, tt.monthIndex); got != tt.want {
				t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tt.year, tt.monthIndex, got, tt.want)
			}
		})
	}
}

func TestMonthName(t *testing.T) {
	got, err := MonthName(0)
	if err != nil {
		t.Fatalf("MonthName(0) returned error: %v", err)
	}
	if got != "January" {
		t.Errorf("MonthName(0) = %q, want January", got)
	}

	got, err = MonthName(11)
	if err != nil {
		t.Fatalf("MonthName(11) returned error: %v", err)
	}
	if got != "December" {
		t.Errorf("MonthName(11) = %q, want December", got)
	}

	for _, idx := range []int{-1, 12, 100} {
		if _, err := MonthName(idx); err == nil {
			t.Errorf("MonthName(%d) should return an error", idx)
		}
	}
}

func TestFirstWeekday(t *testing.T) {
	// 2025-06-01 was a Sunday, 2025-07-01 a Tuesday.
	if got := FirstWeekday(2025, 5); got != 0 {
		t.Errorf("FirstWeekday(2025, 5) = %d, want 0", got)
	}
	if got := FirstWeekday(2025, 6); got != 2 {
		t.Errorf("FirstWeekday(2025, 6) = %d, want 2", got)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name   string
		a, b   string
		want   int
		wantOK bool
	}{
		{"consecutive days", "2025-03-01", "2025-03-02", 1, true},
		{"same day", "2025-03-01", "2025-03-01", 0, true},
		{"across month boundary", "2025-02-28", "2025-03-01", 1, true},
		{"reverse order", "2025-03-02", "2025-03-01", -1, true},
		{"garbage input", "not-a-date", "2025-03-01", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DaysBetween(tt.a, tt.b)
			if ok != tt.wantOK {
				t.Fatalf("DaysBetween(%q, %q) ok = %v, want %v", tt.a, tt.b, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("DaysBetween(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDayString(t *testing.T) {
	if got := DayString(2025, 0, 5); got != "2025-01-05" {
		t.Errorf("DayString(2025, 0, 5) = %q, want 2025-01-05", got)
	}
	if got := DayString(2025, 11, 31); got != "2025-12-31" {
		t.Errorf("DayString(2025, 11, 31) = %q, want 2025-12-31", got)
	}
}
