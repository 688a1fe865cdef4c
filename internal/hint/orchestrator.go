package hint

// Orchestrator owns the current problem context and hint session under
// single-writer discipline: every method is called from the one UI
// goroutine, and async completions re-enter through the Apply* methods
// stamped with the session ID they were issued for. Apply* methods return
// false when the result is stale (the session was closed or superseded),
// in which case the caller must drop it on the floor.
type Orchestrator struct {
	nextID  uint64
	current *Session
	context ProblemContext
}

// NewOrchestrator creates an orchestrator with an empty typed-question
// context and no session.
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{
		context: ProblemContext{Kind: KindTypedQuestion},
	}
}

// Session returns the current session, or nil when none is open.
// Callers treat the returned value as read-only.
func (o *Orchestrator) Session() *Session {
	return o.current
}

// Context returns the active problem context.
func (o *Orchestrator) Context() ProblemContext {
	return o.context
}

// Active reports whether a session exists in a non-terminal state.
func (o *Orchestrator) Active() bool {
	return o.current != nil && !o.current.State.Terminal()
}

// SetContext replaces the problem context wholesale. Switching context
// invalidates any session, in-flight or finished: stale results for the
// old session are discarded by the ID check when they eventually land.
func (o *Orchestrator) SetContext(pc ProblemContext) {
	o.context = pc
	o.current = nil
}

// Trigger opens a new session for the given reason. While a session is in
// a non-terminal state this is an idempotent no-op: the intent is
// discarded, never queued. A Ready or Failed session is also left in
// place until dismissed, so triggers cannot silently replace a visible
// result. Returns the new session ID and true when a session opened.
func (o *Orchestrator) Trigger(reason string) (uint64, bool) {
	if o.current != nil && o.current.State != StateClosed {
		return 0, false
	}
	o.nextID++
	o.current = &Session{
		ID:     o.nextID,
		Reason: reason,
		State:  StateCapturing,
	}
	return o.nextID, true
}

// ApplyCapture records the capture outcome and advances to Requesting.
// Capture failure is non-fatal: the session proceeds without an image and
// the caller logs the problem. Stale or out-of-phase results return false.
func (o *Orchestrator) ApplyCapture(id uint64, image []byte, mime string) bool {
	if !o.owns(id) || o.current.State != StateCapturing {
		return false
	}
	o.current.Image = image
	o.current.ImageMIME = mime
	o.current.State = StateRequesting
	return true
}

// ApplyChunk appends a streamed chunk in arrival order and re-runs field
// extraction over the full buffer. The first chunk moves the session from
// Requesting to Streaming. Stale chunks return false.
func (o *Orchestrator) ApplyChunk(id uint64, chunk string) bool {
	if !o.owns(id) {
		return false
	}
	switch o.current.State {
	case StateRequesting:
		o.current.State = StateStreaming
	case StateStreaming:
	default:
		return false
	}
	o.current.Accumulated += chunk
	o.current.Fields = extract(o.current.Accumulated)
	return true
}

// ApplyStreamEnd finishes the session: Ready when the final extraction
// produced a hint field, Failed with a no-parseable-output diagnostic when
// the stream nominally succeeded but yielded no hint. Stale ends return
// false.
func (o *Orchestrator) ApplyStreamEnd(id uint64) bool {
	if !o.owns(id) {
		return false
	}
	switch o.current.State {
	case StateRequesting, StateStreaming:
	default:
		return false
	}
	o.current.Fields = extract(o.current.Accumulated)
	if o.current.Fields.Hint == "" {
		o.current.State = StateFailed
		o.current.Err = "the response contained no usable hint"
		return true
	}
	o.current.State = StateReady
	return true
}

// ApplyError fails the session with the given diagnostic. Used for
// transport errors, backend rejections, and missing credentials alike;
// the presentation is a single error banner regardless of cause. Stale
// errors return false.
func (o *Orchestrator) ApplyError(id uint64, msg string) bool {
	if !o.owns(id) || o.current.State.Terminal() {
		return false
	}
	o.current.State = StateFailed
	o.current.Err = msg
	return true
}

// Dismiss closes the current session and discards its output. Safe to
// call in any state; late async results for a closed session fail the
// state checks in the Apply* methods and are dropped.
func (o *Orchestrator) Dismiss() {
	if o.current == nil {
		return
	}
	o.current.State = StateClosed
	o.current.Accumulated = ""
	o.current.Fields = Fields{}
}

// owns reports whether id identifies the current session.
func (o *Orchestrator) owns(id uint64) bool {
	return o.current != nil && o.current.ID == id
}
