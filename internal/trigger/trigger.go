// Package trigger holds the independent hint-offer intent sources. Each
// source is a leaf: it decides when to raise an intent and nothing else.
// Whether an intent opens a session is the orchestrator's call.
package trigger

import (
	"time"

	"github.com/clulus/clulus/internal/dwell"
)

// Reasons recorded on the session for each intent source.
const (
	ReasonCountdown = "countdown"
	ReasonHover     = "hover"
	ReasonKeyboard  = "keyboard"
	ReasonConfusion = "confusion"
)

// HoverThreshold is how long the pointer must dwell over the hint control
// before the hover trigger fires.
const HoverThreshold = 3 * time.Second

// Countdown raises an intent once when the problem timer runs out, unless
// a hint has already been produced for the current problem.
type Countdown struct {
	remaining time.Duration
	fired     bool
	produced  bool
}

// NewCountdown creates a countdown with the given duration.
func NewCountdown(d time.Duration) *Countdown {
	return &Countdown{remaining: d}
}

// Tick advances the countdown and reports whether the intent fires on
// this tick. Fires at most once per Reset.
func (c *Countdown) Tick(delta time.Duration) bool {
	if c.fired || c.remaining <= 0 {
		return false
	}
	c.remaining -= delta
	if c.remaining > 0 {
		return false
	}
	c.remaining = 0
	c.fired = true
	return !c.produced
}

// Remaining returns the time left, floored at zero.
func (c *Countdown) Remaining() time.Duration {
	return c.remaining
}

// MarkProduced suppresses the expiry intent for the current problem. A
// hint the learner already saw should not be re-offered at the buzzer.
func (c *Countdown) MarkProduced() {
	c.produced = true
}

// Reset rearms the countdown for a new problem.
func (c *Countdown) Reset(d time.Duration) {
	c.remaining = d
	c.fired = false
	c.produced = false
}

// Hover raises an intent after the pointer has dwelt over the hint
// control for HoverThreshold. Leaving resets progress to zero; there is
// no latch.
type Hover struct {
	timer *dwell.Timer
}

// NewHover creates the hover trigger.
func NewHover() *Hover {
	return &Hover{timer: dwell.New(HoverThreshold)}
}

// Enter starts accumulating dwell. Idempotent while already inside.
func (h *Hover) Enter() { h.timer.Start() }

// Leave stops accumulating and resets progress.
func (h *Hover) Leave() { h.timer.Stop() }

// Tick advances the dwell and reports whether the intent fires.
func (h *Hover) Tick(delta time.Duration) bool {
	return h.timer.Tick(delta)
}

// Progress returns dwell progress in [0,1] for the hover feedback bar.
func (h *Hover) Progress() float64 {
	return h.timer.Progress()
}

// Reset rearms the trigger for a new problem or dismissed session.
func (h *Hover) Reset() { h.timer.Reset() }

// Confusion raises an intent when the sentiment classifier reports a
// confused or negative reading above the confidence floor, debounced so
// a run of confused frames yields one intent.
type Confusion struct {
	minConfidence float64
	window        time.Duration
	lastFire      time.Time
}

// NewConfusion creates the confusion trigger. Readings below
// minConfidence are ignored; fires at most once per window.
func NewConfusion(minConfidence float64, window time.Duration) *Confusion {
	return &Confusion{minConfidence: minConfidence, window: window}
}

// Observe feeds one classifier reading and reports whether the intent
// fires.
func (c *Confusion) Observe(label string, confidence float64, at time.Time) bool {
	if label != "confused" && label != "negative" {
		return false
	}
	if confidence < c.minConfidence {
		return false
	}
	if !c.lastFire.IsZero() && at.Sub(c.lastFire) < c.window {
		return false
	}
	c.lastFire = at
	return true
}
