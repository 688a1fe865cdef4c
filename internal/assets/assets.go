// Package assets tracks the two derived generations of a hint session:
// narrated audio and an animated explanation. Each asset is keyed by the
// text it was generated from and carries its own dwell gate, so neither
// double-fires nor outlives the session it belongs to.
package assets

import (
	"time"

	"github.com/clulus/clulus/internal/dwell"
)

// Status is the lifecycle state of one derived asset.
type Status int

const (
	StatusNotRequested Status = iota
	StatusPending
	StatusReady
	StatusFailed
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusNotRequested:
		return "not-requested"
	case StatusPending:
		return "pending"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Gate thresholds. The audio gate is shorter: listening is a lighter
// commitment than watching an animation.
const (
	AudioGateThreshold = 2 * time.Second
	AnimGateThreshold  = 3 * time.Second
)

// Asset is one derived generation.
type Asset struct {
	Status Status

	// SourceText keys the asset: the narration script for audio, the
	// canonical question for animation. A matching key makes repeated
	// requests no-ops.
	SourceText string

	// Payload and MIME hold the finished asset.
	Payload []byte
	MIME    string

	// Err is the diagnostic for StatusFailed.
	Err string

	// id stamps the outstanding request so late completions for a
	// superseded asset are discarded.
	id uint64
}

// Action is what the caller should do after an animation gate completes.
type Action int

const (
	// ActionNone means nothing to do: no key text, duplicate request, or
	// generation still pending.
	ActionNone Action = iota
	// ActionGenerate means start a video generation request.
	ActionGenerate
	// ActionReveal means the asset is ready and the learner confirmed
	// they want to see it.
	ActionReveal
)

// Service owns both assets and their gates for the current session.
// Single writer: all methods are called from the UI goroutine.
type Service struct {
	nextID uint64

	audio        Asset
	audioPlaying bool
	audioGate    *dwell.Timer

	anim         Asset
	animRevealed bool
	animGate     *dwell.Timer
}

// NewService creates an asset service with both gates armed.
func NewService() *Service {
	return &Service{
		audioGate: dwell.New(AudioGateThreshold),
		animGate:  dwell.New(AnimGateThreshold),
	}
}

// Reset discards both assets when the owning session is replaced or
// closed. Outstanding requests keep their stale ids and are dropped by
// the Apply methods when they land.
func (s *Service) Reset() {
	s.audio = Asset{}
	s.audioPlaying = false
	s.audioGate.Reset()
	s.anim = Asset{}
	s.animRevealed = false
	s.animGate.Reset()
}

// Audio returns the audio asset.
func (s *Service) Audio() Asset { return s.audio }

// AudioPlaying reports whether playback is running.
func (s *Service) AudioPlaying() bool { return s.audioPlaying }

// AudioHoverEnter starts the audio dwell gate.
func (s *Service) AudioHoverEnter() { s.audioGate.Start() }

// AudioHoverLeave resets the audio dwell gate.
func (s *Service) AudioHoverLeave() { s.audioGate.Stop() }

// AudioGateProgress returns gate progress in [0,1].
func (s *Service) AudioGateProgress() float64 { return s.audioGate.Progress() }

// AudioTick advances the audio gate. When the gate completes and the
// narration script is present and not already requested, it moves the
// asset to Pending and returns the request id to stamp the synthesis
// call with.
func (s *Service) AudioTick(delta time.Duration, narration string) (uint64, bool) {
	if !s.audioGate.Tick(delta) {
		return 0, false
	}
	return s.requestAudio(narration)
}

// RetryAudio re-requests synthesis after a failure. Only valid from
// StatusFailed; audio failures never block the hint, they just surface a
// retry control.
func (s *Service) RetryAudio(narration string) (uint64, bool) {
	if s.audio.Status != StatusFailed {
		return 0, false
	}
	s.audio = Asset{}
	return s.requestAudio(narration)
}

func (s *Service) requestAudio(narration string) (uint64, bool) {
	if narration == "" {
		return 0, false
	}
	if s.audio.Status != StatusNotRequested && s.audio.SourceText == narration {
		return 0, false
	}
	s.nextID++
	s.audio = Asset{Status: StatusPending, SourceText: narration, id: s.nextID}
	return s.nextID, true
}

// ApplyAudio lands a synthesis result. Stale ids return false.
func (s *Service) ApplyAudio(id uint64, payload []byte, mime string, errMsg string) bool {
	if s.audio.Status != StatusPending || s.audio.id != id {
		return false
	}
	if errMsg != "" {
		s.audio.Status = StatusFailed
		s.audio.Err = errMsg
		return true
	}
	s.audio.Status = StatusReady
	s.audio.Payload = payload
	s.audio.MIME = mime
	return true
}

// ToggleAudio flips play/pause. Only a Ready asset is playable.
func (s *Service) ToggleAudio() bool {
	if s.audio.Status != StatusReady {
		return false
	}
	s.audioPlaying = !s.audioPlaying
	return true
}

// PauseAudio stops playback without discarding the asset.
func (s *Service) PauseAudio() { s.audioPlaying = false }

// Animation returns the animation asset.
func (s *Service) Animation() Asset { return s.anim }

// AnimationRevealed reports whether the learner confirmed playback.
func (s *Service) AnimationRevealed() bool { return s.animRevealed }

// AnimHoverEnter starts the animation dwell gate.
func (s *Service) AnimHoverEnter() { s.animGate.Start() }

// AnimHoverLeave resets the animation dwell gate. Leaving between the
// generate and reveal dwells is what re-arms the gate for the second
// confirmation.
func (s *Service) AnimHoverLeave() { s.animGate.Stop() }

// AnimGateProgress returns gate progress in [0,1].
func (s *Service) AnimGateProgress() float64 { return s.animGate.Progress() }

// AnimTick advances the animation gate. On the first completion for a
// question it starts generation; on a completion after the asset is
// Ready it reveals playback. Completions while Pending, for the same
// already-handled key, or with no question text are no-ops.
func (s *Service) AnimTick(delta time.Duration, question string) (Action, uint64) {
	if !s.animGate.Tick(delta) {
		return ActionNone, 0
	}
	// The gate re-arms on pointer-leave; consuming the fire here keeps
	// reveal a second, independent dwell.
	if question == "" {
		return ActionNone, 0
	}
	switch {
	case s.anim.Status == StatusNotRequested,
		s.anim.SourceText != question && s.anim.Status != StatusPending:
		s.nextID++
		s.anim = Asset{Status: StatusPending, SourceText: question, id: s.nextID}
		s.animRevealed = false
		return ActionGenerate, s.nextID
	case s.anim.Status == StatusReady && s.anim.SourceText == question && !s.animRevealed:
		s.animRevealed = true
		return ActionReveal, 0
	default:
		return ActionNone, 0
	}
}

// AnimHide clears the reveal flag and nothing else. The Ready payload
// stays; a later dwell-complete reveals it again without regenerating.
func (s *Service) AnimHide() {
	s.animRevealed = false
}

// RetryAnimation re-requests generation after a failure.
func (s *Service) RetryAnimation(question string) (uint64, bool) {
	if s.anim.Status != StatusFailed || question == "" {
		return 0, false
	}
	s.nextID++
	s.anim = Asset{Status: StatusPending, SourceText: question, id: s.nextID}
	return s.nextID, true
}

// ApplyAnimation lands a video generation result. Stale ids return false.
func (s *Service) ApplyAnimation(id uint64, payload []byte, mime string, errMsg string) bool {
	if s.anim.Status != StatusPending || s.anim.id != id {
		return false
	}
	if errMsg != "" {
		s.anim.Status = StatusFailed
		s.anim.Err = errMsg
		return true
	}
	s.anim.Status = StatusReady
	s.anim.Payload = payload
	s.anim.MIME = mime
	return true
}
