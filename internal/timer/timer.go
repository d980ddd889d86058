package timer

// Phase is the interval kind the countdown is in.
type Phase string

const (
	PhaseFocus Phase = "focus"
	PhaseBreak Phase = "break"
)

// Timer is the pomodoro countdown state machine. It holds no clock of its
// own: callers advance it by calling Tick once per elapsed second, so tests
// can drive it with a logical clock.
type Timer struct {
	Phase     Phase
	Remaining int // seconds
	Running   bool
	FocusMin  int
	BreakMin  int
}

// New returns an idle focus-phase timer seeded with the given durations
// (minutes, assumed positive).
func New(focusMin, breakMin int) Timer {
	return Timer{
		Phase:     PhaseFocus,
		Remaining: focusMin * 60,
		FocusMin:  focusMin,
		BreakMin:  breakMin,
	}
}

// Start begins or resumes the countdown.
func (t *Timer) Start() {
	t.Running = true
}

// Pause stops the countdown without touching phase or counter.
func (t *Timer) Pause() {
	t.Running = false
}

// Reset returns the timer to an idle focus phase at the full focus duration.
func (t *Timer) Reset() {
	t.Running = false
	t.Phase = PhaseFocus
	t.Remaining = t.FocusMin * 60
}

// Tick advances the countdown by one second. When the counter reaches zero it
// flips the phase, loads the other duration, and leaves the timer idle. The
// returned phase is the one that just completed, or "" if none did.
func (t *Timer) Tick() Phase {
	if !t.Running || t.Remaining <= 0 {
		return ""
	}
	t.Remaining--
	if t.Remaining > 0 {
		return ""
	}

	completed := t.Phase
	t.Running = false
	if t.Phase == PhaseFocus {
		t.Phase = PhaseBreak
		t.Remaining = t.BreakMin * 60
	} else {
		t.Phase = PhaseFocus
		t.Remaining = t.FocusMin * 60
	}
	return completed
}

// SetFocusMinutes updates the focus duration. While idle in the focus phase
// the counter reloads to the new duration.
func (t *Timer) SetFocusMinutes(min int) {
	if min <= 0 {
		return
	}
	t.FocusMin = min
	if !t.Running && t.Phase == PhaseFocus {
		t.Remaining = min * 60
	}
}

// SetBreakMinutes updates the break duration. While idle in the break phase
// the counter reloads to the new duration.
func (t *Timer) SetBreakMinutes(min int) {
	if min <= 0 {
		return
	}
	t.BreakMin = min
	if !t.Running && t.Phase == PhaseBreak {
		t.Remaining = min * 60
	}
}

// Progress returns the remaining fraction of the current phase, in [0, 1].
func (t Timer) Progress() float64 {
	total := t.phaseDuration()
	if total == 0 {
		return 0
	}
	return float64(t.Remaining) / float64(total)
}

func (t Timer) phaseDuration() int {
	if t.Phase == PhaseBreak {
		return t.BreakMin * 60
	}
	return t.FocusMin * 60
}
