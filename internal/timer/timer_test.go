package timer

import "testing"

func tickUntilDone(t *testing.T, tm *Timer, limit int) Phase {
	t.Helper()
	for i := 0; i < limit; i++ {
		if phase := tm.Tick(); phase != "" {
			return phase
		}
	}
	t.Fatalf("timer did not complete within %d ticks", limit)
	return ""
}

func TestNewStartsIdleInFocus(t *testing.T) {
	tm := New(25, 5)
	if tm.Phase != PhaseFocus {
		t.Errorf("Phase = %s, want focus", tm.Phase)
	}
	if tm.Running {
		t.Error("new timer should not be running")
	}
	if tm.Remaining != 25*60 {
		t.Errorf("Remaining = %d, want %d", tm.Remaining, 25*60)
	}
}

func TestTickIsIgnoredWhilePaused(t *testing.T) {
	tm := New(25, 5)
	tm.Tick()
	if tm.Remaining != 25*60 {
		t.Errorf("Remaining changed while paused: %d", tm.Remaining)
	}

	tm.Start()
	tm.Tick()
	tm.Pause()
	tm.Tick()
	if tm.Remaining != 25*60-1 {
		t.Errorf("Remaining = %d, want %d", tm.Remaining, 25*60-1)
	}
}

func TestFocusCompletionFlipsToIdleBreak(t *testing.T) {
	tm := New(1, 2)
	tm.Start()

	completed := tickUntilDone(t, &tm, 61)
	if completed != PhaseFocus {
		t.Errorf("completed phase = %s, want focus", completed)
	}
	if tm.Phase != PhaseBreak {
		t.Errorf("Phase = %s, want break", tm.Phase)
	}
	if tm.Running {
		t.Error("timer should be idle after a phase completes")
	}
	if tm.Remaining != 2*60 {
		t.Errorf("Remaining = %d, want %d", tm.Remaining, 2*60)
	}
}

func TestBreakCompletionFlipsToIdleFocus(t *testing.T) {
	tm := New(1, 1)
	tm.Start()
	tickUntilDone(t, &tm, 61)

	tm.Start()
	completed := tickUntilDone(t, &tm, 61)
	if completed != PhaseBreak {
		t.Errorf("completed phase = %s, want break", completed)
	}
	if tm.Phase != PhaseFocus {
		t.Errorf("Phase = %s, want focus", tm.Phase)
	}
	if tm.Remaining != 1*60 {
		t.Errorf("Remaining = %d, want %d", tm.Remaining, 1*60)
	}
}

func TestResetReturnsToIdleFocus(t *testing.T) {
	tm := New(25, 5)
	tm.Start()
	tm.Tick()
	tm.Tick()
	tm.Reset()

	if tm.Running {
		t.Error("reset timer should not be running")
	}
	if tm.Phase != PhaseFocus || tm.Remaining != 25*60 {
		t.Errorf("after reset: phase %s remaining %d", tm.Phase, tm.Remaining)
	}
}

func TestSetMinutesOnlyAffectsIdlePhase(t *testing.T) {
	tm := New(25, 5)
	tm.SetFocusMinutes(30)
	if tm.Remaining != 30*60 {
		t.Errorf("idle focus should pick up new duration, got %d", tm.Remaining)
	}

	tm.Start()
	tm.Tick()
	tm.SetFocusMinutes(10)
	if tm.Remaining != 30*60-1 {
		t.Errorf("running countdown should not be disturbed, got %d", tm.Remaining)
	}

	// Break duration changes apply next time the break phase loads.
	tm.SetBreakMinutes(7)
	if tm.BreakMin != 7 {
		t.Errorf("BreakMin = %d, want 7", tm.BreakMin)
	}
}

func TestProgress(t *testing.T) {
	tm := New(1, 1)
	if tm.Progress() != 1 {
		t.Errorf("full timer Progress = %f, want 1", tm.Progress())
	}

	tm.Start()
	for i := 0; i < 30; i++ {
		tm.Tick()
	}
	if got := tm.Progress(); got != 0.5 {
		t.Errorf("half-way Progress = %f, want 0.5", got)
	}
}
