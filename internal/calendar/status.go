package calendar

import (
	"sync"
	"time"
)

// Status reports the state of a calendar publish.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// defaultResetDelay is how long success or error stays visible before
// the status drops back to idle.
const defaultResetDelay = 3 * time.Second

// StatusTracker tracks the outcome of the latest publish. A terminal
// status resets to idle after a fixed delay.
type StatusTracker struct {
	mu         sync.Mutex
	status     Status
	timer      *time.Timer
	resetAfter time.Duration
	onChange   func(Status)
}

// NewStatusTracker creates a tracker in the idle state. resetAfter <= 0
// selects the default delay. onChange, when set, is called on every
// transition.
func NewStatusTracker(resetAfter time.Duration, onChange func(Status)) *StatusTracker {
	if resetAfter <= 0 {
		resetAfter = defaultResetDelay
	}
	return &StatusTracker{
		status:     StatusIdle,
		resetAfter: resetAfter,
		onChange:   onChange,
	}
}

// Status returns the current status.
func (t *StatusTracker) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// Begin marks a publish as in flight.
func (t *StatusTracker) Begin() {
	t.set(StatusLoading)
}

// Finish records the publish outcome and schedules the reset to idle.
func (t *StatusTracker) Finish(err error) {
	if err != nil {
		t.set(StatusError)
	} else {
		t.set(StatusSuccess)
	}

	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.resetAfter, func() {
		t.mu.Lock()
		// A newer publish may have started meanwhile.
		if t.status == StatusSuccess || t.status == StatusError {
			t.status = StatusIdle
			t.mu.Unlock()
			if t.onChange != nil {
				t.onChange(StatusIdle)
			}
			return
		}
		t.mu.Unlock()
	})
	t.mu.Unlock()
}

func (t *StatusTracker) set(s Status) {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	changed := t.status != s
	t.status = s
	t.mu.Unlock()

	if changed && t.onChange != nil {
		t.onChange(s)
	}
}
