package models

// SessionRecord is the daily aggregate of completed focus sessions.
// The history holds at most one record per date.
type SessionRecord struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// IncrementSessions returns a new history with the record for day incremented,
// creating the day's record when absent.
func IncrementSessions(history []SessionRecord, day string) []SessionRecord {
	out := make([]SessionRecord, 0, len(history)+1)
	found := false
	for _, rec := range history {
		if rec.Date == day {
			rec.Count++
			found = true
		}
		out = append(out, rec)
	}
	if !found {
		out = append(out, SessionRecord{Date: day, Count: 1})
	}
	return out
}

// SessionsOn returns the completed session count for day, zero when absent.
func SessionsOn(history []SessionRecord, day string) int {
	for _, rec := range history {
		if rec.Date == day {
			return rec.Count
		}
	}
	return 0
}
