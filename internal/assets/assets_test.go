package assets

import (
	"testing"
	"time"
)

const narration = "x squared equals nine, so think about square roots"
const question = "Solve x^2=9"

// dwellAnim drives the animation gate through one full dwell.
func dwellAnim(s *Service, q string) (Action, uint64) {
	s.AnimHoverEnter()
	var act Action
	var id uint64
	for i := 0; i < 4; i++ {
		if a, aid := s.AnimTick(time.Second, q); a != ActionNone {
			act, id = a, aid
		}
	}
	s.AnimHoverLeave()
	return act, id
}

func TestAnimTwoStageReveal(t *testing.T) {
	s := NewService()

	// First dwell-complete starts generation, nothing is shown yet.
	act, id := dwellAnim(s, question)
	if act != ActionGenerate {
		t.Fatalf("first dwell action = %v, want generate", act)
	}
	if s.Animation().Status != StatusPending {
		t.Fatalf("status = %v, want pending", s.Animation().Status)
	}
	if s.AnimationRevealed() {
		t.Fatal("revealed before asset exists")
	}

	if !s.ApplyAnimation(id, []byte("mp4-bytes"), "video/mp4", "") {
		t.Fatal("animation result rejected")
	}
	if s.Animation().Status != StatusReady {
		t.Fatalf("status = %v, want ready", s.Animation().Status)
	}
	// Ready alone does not render playback.
	if s.AnimationRevealed() {
		t.Fatal("revealed without second dwell confirmation")
	}

	// Second, independent dwell-complete reveals playback.
	act, _ = dwellAnim(s, question)
	if act != ActionReveal {
		t.Fatalf("second dwell action = %v, want reveal", act)
	}
	if !s.AnimationRevealed() {
		t.Fatal("not revealed after confirmation dwell")
	}

	// A third dwell is a no-op.
	act, _ = dwellAnim(s, question)
	if act != ActionNone {
		t.Fatalf("third dwell action = %v, want none", act)
	}
}

func TestAnimHideKeepsPayloadAndRevealsAgain(t *testing.T) {
	s := NewService()

	_, id := dwellAnim(s, question)
	s.ApplyAnimation(id, []byte("mp4-bytes"), "video/mp4", "")
	dwellAnim(s, question)
	if !s.AnimationRevealed() {
		t.Fatal("not revealed after confirmation dwell")
	}

	// Hiding clears only the reveal flag.
	s.AnimHide()
	if s.AnimationRevealed() {
		t.Fatal("still revealed after hide")
	}
	if s.Animation().Status != StatusReady {
		t.Fatalf("status = %v, want ready after hide", s.Animation().Status)
	}
	if string(s.Animation().Payload) != "mp4-bytes" {
		t.Fatal("payload discarded by hide")
	}

	// A later dwell re-reveals without regenerating.
	act, _ := dwellAnim(s, question)
	if act != ActionReveal {
		t.Fatalf("dwell after hide action = %v, want reveal", act)
	}
	if !s.AnimationRevealed() {
		t.Fatal("not revealed again after hide")
	}
}

func TestAnimDwellWhilePendingIsNoop(t *testing.T) {
	s := NewService()

	_, id := dwellAnim(s, question)
	act, _ := dwellAnim(s, question)
	if act != ActionNone {
		t.Fatalf("dwell while pending = %v, want none", act)
	}
	// Still exactly one outstanding request.
	if !s.ApplyAnimation(id, []byte("v"), "video/mp4", "") {
		t.Fatal("original request id invalidated")
	}
}

func TestAnimNoQuestionNoGeneration(t *testing.T) {
	s := NewService()

	if act, _ := dwellAnim(s, ""); act != ActionNone {
		t.Fatal("generated without a canonical question")
	}
	if s.Animation().Status != StatusNotRequested {
		t.Fatalf("status = %v, want not-requested", s.Animation().Status)
	}
}

func TestAnimFailureThenRetry(t *testing.T) {
	s := NewService()

	_, id := dwellAnim(s, question)
	s.ApplyAnimation(id, nil, "", "backend reported failure")
	if s.Animation().Status != StatusFailed {
		t.Fatalf("status = %v, want failed", s.Animation().Status)
	}

	id2, ok := s.RetryAnimation(question)
	if !ok {
		t.Fatal("retry rejected")
	}
	if !s.ApplyAnimation(id2, []byte("v"), "video/mp4", "") {
		t.Fatal("retry result rejected")
	}
	if s.Animation().Status != StatusReady {
		t.Fatalf("status = %v, want ready after retry", s.Animation().Status)
	}
}

func TestResetDiscardsOutstandingResults(t *testing.T) {
	s := NewService()

	_, id := dwellAnim(s, question)
	s.Reset()

	// The session moved on; the old request must not write into the new
	// asset slot.
	if s.ApplyAnimation(id, []byte("v"), "video/mp4", "") {
		t.Fatal("stale animation result applied after reset")
	}
	if s.Animation().Status != StatusNotRequested {
		t.Fatalf("status = %v, want not-requested", s.Animation().Status)
	}
}

func TestAudioGateAndPlayback(t *testing.T) {
	s := NewService()

	s.AudioHoverEnter()
	id, fired := s.AudioTick(AudioGateThreshold, narration)
	if !fired {
		t.Fatal("audio gate did not fire at threshold")
	}
	if s.Audio().Status != StatusPending {
		t.Fatalf("status = %v, want pending", s.Audio().Status)
	}
	// No playable asset while pending.
	if s.ToggleAudio() {
		t.Fatal("toggled playback while pending")
	}

	if !s.ApplyAudio(id, []byte("mp3-bytes"), "audio/mpeg", "") {
		t.Fatal("audio result rejected")
	}
	if !s.ToggleAudio() || !s.AudioPlaying() {
		t.Fatal("ready audio should play")
	}
	if !s.ToggleAudio() || s.AudioPlaying() {
		t.Fatal("second toggle should pause")
	}
}

func TestAudioEmptyNarrationNotRequested(t *testing.T) {
	s := NewService()

	s.AudioHoverEnter()
	if _, fired := s.AudioTick(AudioGateThreshold, ""); fired {
		t.Fatal("requested synthesis with no narration script")
	}
	if s.Audio().Status != StatusNotRequested {
		t.Fatalf("status = %v, want not-requested", s.Audio().Status)
	}
}

func TestAudioFailureAllowsRetry(t *testing.T) {
	s := NewService()

	s.AudioHoverEnter()
	id, _ := s.AudioTick(AudioGateThreshold, narration)
	s.ApplyAudio(id, nil, "", "synthesis backend unavailable")
	if s.Audio().Status != StatusFailed {
		t.Fatalf("status = %v, want failed", s.Audio().Status)
	}

	id2, ok := s.RetryAudio(narration)
	if !ok {
		t.Fatal("retry rejected")
	}
	if !s.ApplyAudio(id2, []byte("a"), "audio/mpeg", "") {
		t.Fatal("retry result rejected")
	}
	if s.Audio().Status != StatusReady {
		t.Fatalf("status = %v, want ready", s.Audio().Status)
	}
}

func TestResetPausesPlayback(t *testing.T) {
	s := NewService()

	s.AudioHoverEnter()
	id, _ := s.AudioTick(AudioGateThreshold, narration)
	s.ApplyAudio(id, []byte("a"), "audio/mpeg", "")
	s.ToggleAudio()

	s.Reset()
	if s.AudioPlaying() {
		t.Fatal("playback survived session reset")
	}
	if s.Audio().Status != StatusNotRequested {
		t.Fatalf("status = %v, want not-requested after reset", s.Audio().Status)
	}
}
