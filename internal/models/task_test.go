package models

import "testing"

func TestToggleTask(t *testing.T) {
	tasks := []Task{
		{ID: "t1", Title: "write report"},
		{ID: "t2", Title: "send invoice", IsCompleted: true},
	}

	got := ToggleTask(tasks, "t1")
	if !got[0].IsCompleted {
		t.Error("t1 should be completed after toggle")
	}
	if tasks[0].IsCompleted {
		t.Error("input collection was mutated")
	}

	got = ToggleTask(got, "t2")
	if got[1].IsCompleted {
		t.Error("t2 should be incomplete after toggle")
	}
}

func TestToggleTaskUnknownID(t *testing.T) {
	tasks := []Task{{ID: "t1"}}
	got := ToggleTask(tasks, "missing")
	if got[0].IsCompleted {
		t.Error("unknown id should leave the collection unchanged")
	}
}

func TestRemoveTask(t *testing.T) {
	tasks := []Task{{ID: "t1"}, {ID: "t2"}, {ID: "t3"}}

	got := RemoveTask(tasks, "t2")
	if len(got) != 2 || got[0].ID != "t1" || got[1].ID != "t3" {
		t.Errorf("got %+v, want t1 and t3", got)
	}

	got = RemoveTask(got, "t2")
	if len(got) != 2 {
		t.Errorf("removing an absent id changed the collection: %+v", got)
	}
}
