package stats

import (
	"testing"

	"dayboard/internal/models"
)

func TestSortTasksByDate(t *testing.T) {
	tasks := []models.Task{
		{ID: "a", Title: "A", DueDate: "2025-03-05", CreatedAt: 100},
		{ID: "b", Title: "B", DueDate: "2025-03-01", CreatedAt: 200},
		{ID: "c", Title: "C", CreatedAt: 300},
	}

	got := SortTasks(tasks, SortByDate)
	wantOrder := []string{"b", "a", "c"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestSortTasksCompletedSinkToBottom(t *testing.T) {
	tasks := []models.Task{
		{ID: "done", Title: "done", DueDate: "2025-01-01", IsCompleted: true, CreatedAt: 100},
		{ID: "open", Title: "open", DueDate: "2025-12-31", CreatedAt: 200},
	}

	got := SortTasks(tasks, SortByDate)
	if got[0].ID != "open" {
		t.Errorf("open task should sort before completed task regardless of due date")
	}
}

func TestSortTasksUndatedTieBreak(t *testing.T) {
	// Two undated tasks fall back to newest-created first.
	tasks := []models.Task{
		{ID: "old", Title: "old", CreatedAt: 100},
		{ID: "new", Title: "new", CreatedAt: 200},
	}

	got := SortTasks(tasks, SortByDate)
	if got[0].ID != "new" {
		t.Errorf("newer undated task should sort first, got %s", got[0].ID)
	}
}

func TestSortTasksByCompletion(t *testing.T) {
	tasks := []models.Task{
		{ID: "a", IsCompleted: true, CreatedAt: 100},
		{ID: "b", CreatedAt: 200},
		{ID: "c", IsCompleted: true, CreatedAt: 300},
		{ID: "d", CreatedAt: 400},
	}

	got := SortTasks(tasks, SortByCompletion)
	for i, task := range got[:2] {
		if task.IsCompleted {
			t.Errorf("position %d should be incomplete, got %s", i, task.ID)
		}
	}
	for i, task := range got[2:] {
		if !task.IsCompleted {
			t.Errorf("position %d should be completed, got %s", i+2, task.ID)
		}
	}
}

func TestSortTasksDoesNotMutateInput(t *testing.T) {
	tasks := []models.Task{
		{ID: "a", DueDate: "2025-03-05", CreatedAt: 100},
		{ID: "b", DueDate: "2025-03-01", CreatedAt: 200},
	}

	SortTasks(tasks, SortByDate)
	if tasks[0].ID != "a" {
		t.Error("input slice order changed")
	}
}
