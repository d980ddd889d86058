package models

type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	DueDate     string `json:"due_date,omitempty"` // YYYY-MM-DD, empty when undated
	IsCompleted bool   `json:"is_completed"`
	CreatedAt   int64  `json:"created_at"` // epoch milliseconds
}

// AppendTask returns a new collection with t appended.
func AppendTask(tasks []Task, t Task) []Task {
	out := make([]Task, 0, len(tasks)+1)
	out = append(out, tasks...)
	return append(out, t)
}

// ToggleTask returns a new collection with the completion flag of the task
// with the given id flipped. An unknown id leaves the collection unchanged.
func ToggleTask(tasks []Task, id string) []Task {
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		if t.ID == id {
			t.IsCompleted = !t.IsCompleted
		}
		out[i] = t
	}
	return out
}

// RemoveTask returns a new collection without the task with the given id.
// An unknown id leaves the collection unchanged.
func RemoveTask(tasks []Task, id string) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}
