package hint

import "testing"

func TestTriggerOpensSingleSession(t *testing.T) {
	o := NewOrchestrator()

	id, ok := o.Trigger("keyboard")
	if !ok {
		t.Fatal("first trigger should open a session")
	}
	if got := o.Session(); got == nil || got.ID != id || got.State != StateCapturing {
		t.Fatalf("session = %+v, want capturing with id %d", got, id)
	}

	// A second trigger while the session is live is discarded, not queued.
	if _, ok := o.Trigger("hover"); ok {
		t.Fatal("trigger during active session should be a no-op")
	}
	if o.Session().ID != id {
		t.Fatalf("active session replaced: id = %d, want %d", o.Session().ID, id)
	}
	if o.Session().Reason != "keyboard" {
		t.Fatalf("reason = %q, want original trigger reason", o.Session().Reason)
	}
}

func TestTriggerBlockedUntilDismissed(t *testing.T) {
	o := NewOrchestrator()

	id, _ := o.Trigger("countdown")
	o.ApplyCapture(id, nil, "")
	o.ApplyChunk(id, "<hint>factor first</hint>")
	o.ApplyStreamEnd(id)

	if o.Session().State != StateReady {
		t.Fatalf("state = %v, want ready", o.Session().State)
	}
	// A finished result stays visible until dismissed.
	if _, ok := o.Trigger("hover"); ok {
		t.Fatal("trigger should not replace a visible result")
	}

	o.Dismiss()
	id2, ok := o.Trigger("hover")
	if !ok {
		t.Fatal("trigger after dismiss should open a session")
	}
	if id2 <= id {
		t.Fatalf("session ids must increase: got %d after %d", id2, id)
	}
}

func TestStaleResultsDiscarded(t *testing.T) {
	o := NewOrchestrator()

	id, _ := o.Trigger("keyboard")
	o.ApplyCapture(id, nil, "")
	o.Dismiss()
	id2, _ := o.Trigger("keyboard")
	o.ApplyCapture(id2, nil, "")

	// Results stamped with the old id must not touch the new session.
	if o.ApplyChunk(id, "<hint>stale</hint>") {
		t.Fatal("stale chunk applied")
	}
	if o.ApplyStreamEnd(id) {
		t.Fatal("stale stream end applied")
	}
	if o.ApplyError(id, "boom") {
		t.Fatal("stale error applied")
	}
	if got := o.Session(); got.State != StateRequesting || got.Accumulated != "" {
		t.Fatalf("new session corrupted by stale results: %+v", got)
	}
}

func TestLateResultAfterDismissDiscarded(t *testing.T) {
	o := NewOrchestrator()

	id, _ := o.Trigger("keyboard")
	o.ApplyCapture(id, nil, "")
	o.ApplyChunk(id, "<hint>par")
	o.Dismiss()

	if o.ApplyChunk(id, "tial</hint>") {
		t.Fatal("chunk applied to dismissed session")
	}
	if o.ApplyStreamEnd(id) {
		t.Fatal("stream end applied to dismissed session")
	}
	if o.Session().State != StateClosed {
		t.Fatalf("state = %v, want closed", o.Session().State)
	}
	if o.Session().Accumulated != "" {
		t.Fatal("dismiss should discard accumulated output")
	}
}

func TestContextSwitchInvalidatesSession(t *testing.T) {
	o := NewOrchestrator()

	id, _ := o.Trigger("hover")
	o.ApplyCapture(id, nil, "")
	o.SetContext(ProblemContext{Kind: KindTypedQuestion, Text: "what is a derivative?"})

	if o.Active() {
		t.Fatal("session should not survive a context switch")
	}
	if o.ApplyChunk(id, "<hint>old context</hint>") {
		t.Fatal("result for old context applied")
	}
	if _, ok := o.Trigger("keyboard"); !ok {
		t.Fatal("new context should accept triggers immediately")
	}
}

func TestFieldExtractionIndependent(t *testing.T) {
	o := NewOrchestrator()

	id, _ := o.Trigger("keyboard")
	o.ApplyCapture(id, nil, "")
	o.ApplyChunk(id, "<hint>H</hint><question>Q</question>")
	o.ApplyStreamEnd(id)

	s := o.Session()
	if s.State != StateReady {
		t.Fatalf("state = %v, want ready", s.State)
	}
	if s.Fields.Hint != "H" || s.Fields.Question != "Q" {
		t.Fatalf("fields = %+v, want hint H and question Q", s.Fields)
	}
	if s.Fields.Narration != "" {
		t.Fatalf("narration = %q, want empty when tag absent", s.Fields.Narration)
	}
}

func TestMarkersSplitAcrossChunks(t *testing.T) {
	o := NewOrchestrator()

	id, _ := o.Trigger("countdown")
	// Capture failing is non-fatal: the session proceeds without an image.
	o.ApplyCapture(id, nil, "")

	chunks := []string{
		"<hi", "nt>Try squaring both sides.</hint><ques",
		"tion>Solve x^2=9</question>",
	}
	for _, c := range chunks {
		if !o.ApplyChunk(id, c) {
			t.Fatalf("chunk %q rejected", c)
		}
	}
	if !o.ApplyStreamEnd(id) {
		t.Fatal("stream end rejected")
	}

	s := o.Session()
	if s.State != StateReady {
		t.Fatalf("state = %v (err %q), want ready", s.State, s.Err)
	}
	if s.Fields.Hint != "Try squaring both sides." {
		t.Fatalf("hint = %q", s.Fields.Hint)
	}
	if s.Fields.Question != "Solve x^2=9" {
		t.Fatalf("question = %q", s.Fields.Question)
	}
}

func TestUnterminatedTagNotExtracted(t *testing.T) {
	o := NewOrchestrator()

	id, _ := o.Trigger("keyboard")
	o.ApplyCapture(id, nil, "")
	o.ApplyChunk(id, "<hint>half finished")
	if got := o.Session().Fields.Hint; got != "" {
		t.Fatalf("hint = %q, want empty while tag is unterminated", got)
	}
	o.ApplyChunk(id, " thought</hint>")
	if got := o.Session().Fields.Hint; got != "half finished thought" {
		t.Fatalf("hint = %q after closing tag", got)
	}
}

func TestStreamEndWithoutHintFails(t *testing.T) {
	o := NewOrchestrator()

	id, _ := o.Trigger("keyboard")
	o.ApplyCapture(id, nil, "")
	o.ApplyChunk(id, "I cannot help with that.")
	o.ApplyStreamEnd(id)

	s := o.Session()
	if s.State != StateFailed {
		t.Fatalf("state = %v, want failed", s.State)
	}
	if s.Err == "" {
		t.Fatal("failed session needs a diagnostic")
	}
}

func TestApplyErrorFailsSession(t *testing.T) {
	o := NewOrchestrator()

	id, _ := o.Trigger("keyboard")
	o.ApplyCapture(id, nil, "")
	if !o.ApplyError(id, "provider unavailable") {
		t.Fatal("error for live session rejected")
	}
	s := o.Session()
	if s.State != StateFailed || s.Err != "provider unavailable" {
		t.Fatalf("session = %+v, want failed with diagnostic", s)
	}
	// Terminal sessions ignore further errors.
	if o.ApplyError(id, "again") {
		t.Fatal("error applied to terminal session")
	}
}

func TestCaptureOutcomeRecordedOnSession(t *testing.T) {
	o := NewOrchestrator()
	o.SetContext(ProblemContext{Kind: KindSnapshot, Text: "y = x^2"})

	id, _ := o.Trigger("hover")
	img := []byte{0x89, 0x50, 0x4e, 0x47}
	if !o.ApplyCapture(id, img, "image/png") {
		t.Fatal("capture rejected")
	}
	s := o.Session()
	if s.State != StateRequesting {
		t.Fatalf("state = %v, want requesting", s.State)
	}
	if len(s.Image) == 0 || s.ImageMIME != "image/png" {
		t.Fatalf("capture not recorded: mime %q, %d bytes", s.ImageMIME, len(s.Image))
	}

	// Capture only applies once.
	if o.ApplyCapture(id, img, "image/png") {
		t.Fatal("second capture applied")
	}
}
