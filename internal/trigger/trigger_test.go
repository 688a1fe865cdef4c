package trigger

import (
	"testing"
	"time"
)

func TestCountdownFiresOnceAtZero(t *testing.T) {
	c := NewCountdown(3 * time.Second)

	if c.Tick(time.Second) || c.Tick(time.Second) {
		t.Fatal("fired before expiry")
	}
	if !c.Tick(time.Second) {
		t.Fatal("did not fire at expiry")
	}
	if c.Tick(time.Second) {
		t.Fatal("fired twice")
	}
	if c.Remaining() != 0 {
		t.Fatalf("remaining = %v, want 0", c.Remaining())
	}
}

func TestCountdownSuppressedAfterHintProduced(t *testing.T) {
	c := NewCountdown(2 * time.Second)
	c.MarkProduced()

	if c.Tick(time.Second) || c.Tick(time.Second) {
		t.Fatal("expiry intent raised after hint already produced")
	}
}

func TestCountdownReset(t *testing.T) {
	c := NewCountdown(time.Second)
	c.Tick(time.Second)
	c.MarkProduced()

	c.Reset(2 * time.Second)
	c.Tick(time.Second)
	if !c.Tick(time.Second) {
		t.Fatal("reset countdown did not fire")
	}
}

func TestHoverFiresAtThreshold(t *testing.T) {
	h := NewHover()
	h.Enter()

	fired := false
	for i := 0; i < 6; i++ {
		if h.Tick(500 * time.Millisecond) {
			fired = true
		}
	}
	if !fired {
		t.Fatal("hover did not fire after threshold dwell")
	}
	if h.Tick(500 * time.Millisecond) {
		t.Fatal("hover fired twice without reset")
	}
}

func TestHoverLeaveResetsProgress(t *testing.T) {
	h := NewHover()
	h.Enter()
	h.Tick(2 * time.Second)
	h.Leave()

	if h.Progress() != 0 {
		t.Fatalf("progress = %v after leave, want 0", h.Progress())
	}

	// Re-entering starts from scratch.
	h.Enter()
	if h.Tick(2 * time.Second) {
		t.Fatal("fired early after re-enter")
	}
	if !h.Tick(time.Second + time.Millisecond) {
		t.Fatal("did not fire after full re-dwell")
	}
}

func TestHoverTickIgnoredOutside(t *testing.T) {
	h := NewHover()
	if h.Tick(5 * time.Second) {
		t.Fatal("fired without pointer inside")
	}
	if h.Progress() != 0 {
		t.Fatal("accumulated dwell without pointer inside")
	}
}

func TestConfusionDebounce(t *testing.T) {
	c := NewConfusion(0.7, 5*time.Second)
	t0 := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	if !c.Observe("confused", 0.9, t0) {
		t.Fatal("confident confused reading should fire")
	}
	// Repeated confused frames inside the window are swallowed.
	if c.Observe("confused", 0.95, t0.Add(time.Second)) {
		t.Fatal("fired inside debounce window")
	}
	if c.Observe("negative", 0.9, t0.Add(4*time.Second)) {
		t.Fatal("fired inside debounce window")
	}
	if !c.Observe("negative", 0.9, t0.Add(5*time.Second)) {
		t.Fatal("did not fire after window elapsed")
	}
}

func TestConfusionIgnoresWeakOrOtherLabels(t *testing.T) {
	c := NewConfusion(0.7, 5*time.Second)
	t0 := time.Now()

	if c.Observe("confused", 0.5, t0) {
		t.Fatal("fired below confidence floor")
	}
	if c.Observe("happy", 0.99, t0) {
		t.Fatal("fired on non-confusion label")
	}
	// Weak readings must not consume the debounce window.
	if !c.Observe("confused", 0.8, t0) {
		t.Fatal("strong reading should fire")
	}
}
