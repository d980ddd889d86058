package models

import "testing"

func TestToggleCompletion(t *testing.T) {
	habits := []Habit{
		{ID: "h1", Name: "Read", Completions: map[string]bool{}},
		{ID: "h2", Name: "Run", Completions: map[string]bool{"2025-03-01": true}},
	}

	toggled := ToggleCompletion(habits, "h1", "2025-03-01")
	if !toggled[0].Completions["2025-03-01"] {
		t.Error("toggling an unmarked day should mark it")
	}
	if len(habits[0].Completions) != 0 {
		t.Error("input collection was mutated")
	}

	// Toggling off removes the key instead of storing false.
	toggled = ToggleCompletion(toggled, "h1", "2025-03-01")
	if _, present := toggled[0].Completions["2025-03-01"]; present {
		t.Error("toggling a marked day should remove the key entirely")
	}
}

func TestToggleCompletionUnknownID(t *testing.T) {
	habits := []Habit{{ID: "h1", Completions: map[string]bool{}}}
	got := ToggleCompletion(habits, "missing", "2025-03-01")
	if len(got) != 1 || len(got[0].Completions) != 0 {
		t.Error("unknown id should leave the collection unchanged")
	}
}

func TestRemoveHabit(t *testing.T) {
	habits := []Habit{{ID: "h1"}, {ID: "h2"}}

	got := RemoveHabit(habits, "h1")
	if len(got) != 1 || got[0].ID != "h2" {
		t.Errorf("got %+v, want only h2", got)
	}

	// Deleting again is a no-op, not an error.
	got = RemoveHabit(got, "h1")
	if len(got) != 1 {
		t.Errorf("second delete changed the collection: %+v", got)
	}
}

func TestAppendHabitDoesNotMutateInput(t *testing.T) {
	habits := make([]Habit, 0, 4)
	habits = append(habits, Habit{ID: "h1"})

	AppendHabit(habits, Habit{ID: "h2"})
	AppendHabit(habits, Habit{ID: "h3"})

	if len(habits) != 1 {
		t.Errorf("input length changed to %d", len(habits))
	}
}
