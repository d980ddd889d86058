package models

type Habit struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"` // epoch milliseconds
	// Completions maps YYYY-MM-DD to true. A day that was not completed is
	// absent from the map; the map never holds a false entry.
	Completions map[string]bool `json:"completions"`
}

// AppendHabit returns a new collection with h appended.
func AppendHabit(habits []Habit, h Habit) []Habit {
	out := make([]Habit, 0, len(habits)+1)
	out = append(out, habits...)
	return append(out, h)
}

// RemoveHabit returns a new collection without the habit with the given id.
// An unknown id leaves the collection unchanged.
func RemoveHabit(habits []Habit, id string) []Habit {
	out := make([]Habit, 0, len(habits))
	for _, h := range habits {
		if h.ID != id {
			out = append(out, h)
		}
	}
	return out
}

// ToggleCompletion returns a new collection with the given day toggled on the
// habit with the given id. Toggling a completed day off removes the key
// entirely rather than storing false.
func ToggleCompletion(habits []Habit, id, day string) []Habit {
	out := make([]Habit, len(habits))
	for i, h := range habits {
		if h.ID == id {
			completions := make(map[string]bool, len(h.Completions)+1)
			for d := range h.Completions {
				completions[d] = true
			}
			if completions[day] {
				delete(completions, day)
			} else {
				completions[day] = true
			}
			h.Completions = completions
		}
		out[i] = h
	}
	return out
}
