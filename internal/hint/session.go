// Package hint holds the hint session state machine: the orchestrator that
// serializes trigger intents into at most one active session, sequences
// context capture and streamed generation, and keeps the shared session
// state that screens render from.
package hint

import "strings"

// State is the lifecycle state of a hint session.
type State int

const (
	// StateCapturing means the problem context snapshot is being acquired.
	StateCapturing State = iota
	// StateRequesting means the generation request has been issued and no
	// chunk has arrived yet.
	StateRequesting
	// StateStreaming means chunks are being appended to the session buffer.
	StateStreaming
	// StateReady means the stream finished and a hint field was extracted.
	StateReady
	// StateFailed means capture, transport, the backend, or extraction
	// failed; Err carries the diagnostic.
	StateFailed
	// StateClosed means the learner dismissed the session. Terminal.
	StateClosed
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateCapturing:
		return "capturing"
	case StateRequesting:
		return "requesting"
	case StateStreaming:
		return "streaming"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state admits no further transitions driven
// by generation results.
func (s State) Terminal() bool {
	return s == StateReady || s == StateFailed || s == StateClosed
}

// Fields are the structured fields extracted from the streamed response.
// Any subset may be present; absent fields are empty strings.
type Fields struct {
	// Hint is the tutoring hint shown to the learner.
	Hint string
	// Narration is the short audio script used to key speech synthesis.
	Narration string
	// Question is the backend's canonical restatement of the problem,
	// used to key animation generation.
	Question string
}

// Session is one hint-offer lifecycle, from trigger to close.
type Session struct {
	// ID increases monotonically across sessions and stamps every async
	// result issued for this session, so stale completions can be
	// discarded on arrival.
	ID uint64

	// Reason records which trigger opened the session.
	Reason string

	// Image and ImageMIME hold the context snapshot captured for this
	// session. Image is nil when capture failed or the context is a typed
	// question; generation proceeds without it.
	Image     []byte
	ImageMIME string

	// State is the current lifecycle state.
	State State

	// Accumulated is the append-only buffer of streamed output.
	Accumulated string

	// Fields holds the latest extraction over the full buffer. Mid-stream
	// the values may be partial or empty; only the post-stream extraction
	// decides Ready vs Failed.
	Fields Fields

	// Err is the human-readable diagnostic for StateFailed.
	Err string
}

// ContextKind selects which kind of problem context is active.
type ContextKind int

const (
	// KindSnapshot is a rendered capture of the current problem.
	KindSnapshot ContextKind = iota
	// KindTypedQuestion is a question the learner typed.
	KindTypedQuestion
)

// ProblemContext is the subject of a hint. Exactly one kind is active at a
// time; values are replaced wholesale, never mutated in place.
type ProblemContext struct {
	Kind ContextKind

	// Text is the problem statement. For KindSnapshot it is also what the
	// capture service rasterizes; for KindTypedQuestion it is the typed
	// question verbatim.
	Text string
}

// extract re-runs all three tag extractions over the full buffer. Markers
// may arrive split across chunks, so partial mid-stream results are
// expected and overwritten by later extractions.
func extract(buffer string) Fields {
	return Fields{
		Hint:      extractTag(buffer, "hint"),
		Narration: extractTag(buffer, "audio_script"),
		Question:  extractTag(buffer, "question"),
	}
}

// extractTag returns the trimmed content of the first <tag>...</tag> pair,
// or "" if the pair is absent or unterminated.
func extractTag(buffer, tag string) string {
	open := "<" + tag + ">"
	closeTag := "</" + tag + ">"

	start := strings.Index(buffer, open)
	if start < 0 {
		return ""
	}
	rest := buffer[start+len(open):]
	end := strings.Index(rest, closeTag)
	if end < 0 {
		return ""
	}
	return strings.TrimSpace(rest[:end])
}
