package dwell

import (
	"testing"
	"time"
)

func TestFiresOnceAtThreshold(t *testing.T) {
	tm := New(3 * time.Second)
	tm.Start()

	if tm.Tick(time.Second) {
		t.Fatal("fired after 1s, want 3s threshold")
	}
	if tm.Tick(time.Second) {
		t.Fatal("fired after 2s, want 3s threshold")
	}
	if !tm.Tick(time.Second) {
		t.Fatal("did not fire on the tick crossing the threshold")
	}
	if tm.Tick(time.Second) {
		t.Fatal("re-fired without an intervening reset")
	}
	if !tm.Fired() {
		t.Fatal("Fired() = false after completion")
	}
}

func TestStopResetsUnlatched(t *testing.T) {
	tm := New(3 * time.Second)
	tm.Start()
	tm.Tick(2 * time.Second)
	tm.Stop()

	if got := tm.Progress(); got != 0 {
		t.Fatalf("Progress() after Stop = %v, want 0", got)
	}

	// A full dwell is required again after stopping.
	tm.Start()
	if tm.Tick(time.Second) {
		t.Fatal("fired with only 1s accumulated after reset")
	}
	if !tm.Tick(2 * time.Second) {
		t.Fatal("did not fire after a fresh full dwell")
	}
}

func TestStopKeepsLatched(t *testing.T) {
	tm := NewLatched(2 * time.Second)
	tm.Start()
	tm.Tick(2 * time.Second)
	tm.Stop()

	if !tm.Fired() {
		t.Fatal("latched timer lost fired state on Stop")
	}

	tm.Start()
	if tm.Tick(time.Second) {
		t.Fatal("latched timer re-fired after restart")
	}

	tm.Reset()
	if tm.Fired() {
		t.Fatal("Reset did not clear fired state")
	}
}

func TestTickIgnoredWhileInactive(t *testing.T) {
	tm := New(time.Second)
	if tm.Tick(5 * time.Second) {
		t.Fatal("inactive timer fired")
	}
	if got := tm.Progress(); got != 0 {
		t.Fatalf("inactive timer accumulated progress %v", got)
	}
}

func TestProgressClamped(t *testing.T) {
	tm := New(2 * time.Second)
	tm.Start()
	tm.Tick(time.Second)
	if got := tm.Progress(); got != 0.5 {
		t.Fatalf("Progress() = %v, want 0.5", got)
	}
	tm.Tick(5 * time.Second)
	if got := tm.Progress(); got != 1 {
		t.Fatalf("Progress() = %v, want clamped 1", got)
	}
}

func TestStartIdempotent(t *testing.T) {
	tm := New(2 * time.Second)
	tm.Start()
	tm.Tick(time.Second)
	tm.Start() // must not reset accumulation
	if !tm.Tick(time.Second) {
		t.Fatal("second Start reset accumulated time")
	}
}
