// Package dwell provides an accumulating one-shot timer for hover gates.
//
// A Timer accumulates elapsed time only while active and fires a single
// completion event the first time the accumulated time crosses the
// threshold. Each gate in the app (hint offer, audio reveal, animation
// generate, animation reveal) owns its own Timer instance; instances share
// no state.
package dwell

import "time"

// Timer accumulates time while active and fires once at the threshold.
type Timer struct {
	threshold time.Duration
	elapsed   time.Duration
	active    bool
	fired     bool

	// latched keeps elapsed and the fired flag across Stop calls, for
	// gates that should remember completion after the pointer leaves.
	latched bool
}

// New creates an inactive timer with the given threshold.
func New(threshold time.Duration) *Timer {
	return &Timer{threshold: threshold}
}

// NewLatched creates a timer that keeps its progress and fired state
// across Stop calls until Reset is called explicitly.
func NewLatched(threshold time.Duration) *Timer {
	return &Timer{threshold: threshold, latched: true}
}

// Start begins accumulation. Calling Start on an active timer is a no-op.
func (t *Timer) Start() {
	t.active = true
}

// Stop halts accumulation. Unless the timer is latched, elapsed time and
// the fired flag reset immediately.
func (t *Timer) Stop() {
	t.active = false
	if !t.latched {
		t.elapsed = 0
		t.fired = false
	}
}

// Reset returns the timer to its initial inactive state regardless of latch.
func (t *Timer) Reset() {
	t.active = false
	t.elapsed = 0
	t.fired = false
}

// Tick advances the timer by delta. It returns true exactly once: on the
// tick where elapsed first crosses the threshold. After firing, the timer
// stops accumulating until reset.
func (t *Timer) Tick(delta time.Duration) bool {
	if !t.active || t.fired {
		return false
	}
	t.elapsed += delta
	if t.elapsed >= t.threshold {
		t.fired = true
		return true
	}
	return false
}

// Active reports whether the timer is accumulating.
func (t *Timer) Active() bool {
	return t.active
}

// Fired reports whether the completion event has been raised since the
// last reset.
func (t *Timer) Fired() bool {
	return t.fired
}

// Progress returns the fraction of the threshold reached, clamped to 0..1.
func (t *Timer) Progress() float64 {
	if t.threshold <= 0 {
		return 1
	}
	p := float64(t.elapsed) / float64(t.threshold)
	if p > 1 {
		p = 1
	}
	if p < 0 {
		p = 0
	}
	return p
}

// Threshold returns the configured firing threshold.
func (t *Timer) Threshold() time.Duration {
	return t.threshold
}
