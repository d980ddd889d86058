package handlers

import (
	"testing"

	"dayboard/internal/constants"
	"dayboard/internal/dateutil"
	"dayboard/internal/models"
	"dayboard/internal/storage"
	"dayboard/internal/timer"
	"dayboard/internal/tui/components/pomodoro"
	"dayboard/internal/tui/state"
)

type memStore struct {
	slots map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{slots: map[string][]byte{}}
}

func (s *memStore) Init() error  { return nil }
func (s *memStore) Load() error  { return nil }
func (s *memStore) Close() error { return nil }

func (s *memStore) Get(key string) ([]byte, bool) {
	raw, ok := s.slots[key]
	return raw, ok
}

func (s *memStore) Set(key string, value []byte) error {
	s.slots[key] = value
	return nil
}

func (s *memStore) GetConfigPath() string { return "" }

func completePhase(t *testing.T, m *state.Model, phase timer.Phase) {
	t.Helper()
	handled, _ := HandlePomodoroMsgs(m, pomodoro.PhaseCompleteMsg{Phase: phase})
	if !handled {
		t.Fatalf("PhaseCompleteMsg for %s was not handled", phase)
	}
}

func TestOnlyFocusCompletionsCountAsSessions(t *testing.T) {
	store := newMemStore()
	m := state.NewModel(store)
	today := dateutil.Today()

	// Two full focus/break cycles record exactly two sessions.
	completePhase(t, m, timer.PhaseFocus)
	completePhase(t, m, timer.PhaseBreak)
	completePhase(t, m, timer.PhaseFocus)
	completePhase(t, m, timer.PhaseBreak)

	if got := models.SessionsOn(m.History, today); got != 2 {
		t.Errorf("sessions today = %d, want 2", got)
	}

	stored := storage.LoadSlot(store, constants.SlotPomodoro, []models.SessionRecord{})
	if got := models.SessionsOn(stored, today); got != 2 {
		t.Errorf("persisted sessions today = %d, want 2", got)
	}
}

func TestBreakCompletionLeavesHistoryUntouched(t *testing.T) {
	store := newMemStore()
	m := state.NewModel(store)
	today := dateutil.Today()

	completePhase(t, m, timer.PhaseFocus)
	before := models.SessionsOn(m.History, today)

	completePhase(t, m, timer.PhaseBreak)
	if got := models.SessionsOn(m.History, today); got != before {
		t.Errorf("break completion changed sessions today from %d to %d", before, got)
	}
	if _, ok := store.slots[constants.SlotPomodoro]; !ok {
		t.Fatal("history slot was never persisted")
	}
}
