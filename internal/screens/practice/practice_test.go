package practice

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/clulus/clulus/internal/assets"
	"github.com/clulus/clulus/internal/hint"
	"github.com/clulus/clulus/internal/hintgen"
	"github.com/clulus/clulus/internal/llm"
	"github.com/clulus/clulus/internal/problems"
	"github.com/clulus/clulus/internal/sentiment"
	"github.com/clulus/clulus/internal/store"
	"github.com/clulus/clulus/internal/trigger"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	hintSessions []store.HintSessionEventData
	answers      []store.AnswerEventData
	assetEvents  []store.AssetEventData
}

func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) AppendHintSession(_ context.Context, data store.HintSessionEventData) error {
	m.hintSessions = append(m.hintSessions, data)
	return nil
}
func (m *mockEventRepo) AppendAnswer(_ context.Context, data store.AnswerEventData) error {
	m.answers = append(m.answers, data)
	return nil
}
func (m *mockEventRepo) AppendAsset(_ context.Context, data store.AssetEventData) error {
	m.assetEvents = append(m.assetEvents, data)
	return nil
}
func (m *mockEventRepo) HintStats(_ context.Context) (store.HintStats, error) {
	return store.HintStats{}, nil
}
func (m *mockEventRepo) AnswerStats(_ context.Context) (store.AnswerStats, error) {
	return store.AnswerStats{}, nil
}
func (m *mockEventRepo) LLMTokenTotals(_ context.Context) (map[string][2]int, error) {
	return nil, nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMPurposeUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

// mockCapture renders a fixed payload for any problem text.
type mockCapture struct {
	err error
}

func (m *mockCapture) Capture(_ context.Context, _ string) ([]byte, string, error) {
	if m.err != nil {
		return nil, "", m.err
	}
	return []byte{0x89, 'P', 'N', 'G'}, "image/png", nil
}

type mockSpeech struct{}

func (mockSpeech) Synthesize(_ context.Context, _ string) ([]byte, string, error) {
	return []byte("mp3"), "audio/mpeg", nil
}

type mockAnim struct{}

func (mockAnim) Generate(_ context.Context, _ string) ([]byte, string, error) {
	return []byte("mp4"), "video/mp4", nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testProblem() *problems.Problem {
	return &problems.Problem{
		Text:        "What is the derivative of x^2?",
		Options:     []string{"2x", "x", "x^2", "2"},
		Answer:      "2x",
		Explanation: "Apply the power rule: d/dx x^n = n*x^(n-1).",
		Difficulty:  problems.DifficultyEasy,
	}
}

func testPracticeScreen() (*PracticeScreen, *mockEventRepo, *llm.MockProvider) {
	provider := llm.NewMockProvider()
	eventRepo := &mockEventRepo{}
	s := New(Deps{
		EventRepo: eventRepo,
		HintSvc:   hintgen.New(provider, hintgen.DefaultConfig()),
		Capture:   &mockCapture{},
		Speech:    mockSpeech{},
		Anim:      mockAnim{},
	})
	s.Update(problemReadyMsg{Problem: testProblem()})
	return s, eventRepo, provider
}

// pump executes a command chain synchronously, feeding each produced
// message back into Update until the chain ends.
func pump(s *PracticeScreen, cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		_, cmd = s.Update(msg)
	}
}

// runHintFlow triggers a hint and drives it to a terminal state using
// the provider's next canned stream.
func runHintFlow(s *PracticeScreen) {
	pump(s, s.raiseIntent(trigger.ReasonKeyboard))
}

const fullResponse = "<hint>Try the power rule.</hint>" +
	"<audio_script>Remember, bring the exponent down.</audio_script>" +
	"<question>Differentiate x cubed</question>"

func TestPracticeScreen_Title(t *testing.T) {
	s, _, _ := testPracticeScreen()
	if s.Title() != "Practice" {
		t.Errorf("Title = %q, want %q", s.Title(), "Practice")
	}
}

func TestPracticeScreen_View_NonEmpty(t *testing.T) {
	s, _, _ := testPracticeScreen()
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view")
	}
}

func TestHintFlow_Ready(t *testing.T) {
	s, eventRepo, provider := testPracticeScreen()
	provider.AddStream(llm.MockStream{Chunks: []string{
		"<hi", "nt>Try the power rule.</hint><audio_scr",
		"ipt>Bring the exponent down.</audio_script>",
		"<question>Differentiate x cubed</question>",
	}})

	runHintFlow(s)

	sess := s.orch.Session()
	if sess == nil || sess.State != hint.StateReady {
		t.Fatalf("expected ready session, got %+v", sess)
	}
	if sess.Fields.Hint != "Try the power rule." {
		t.Errorf("hint = %q", sess.Fields.Hint)
	}
	if sess.Fields.Narration != "Bring the exponent down." {
		t.Errorf("narration = %q", sess.Fields.Narration)
	}
	if sess.Fields.Question != "Differentiate x cubed" {
		t.Errorf("question = %q", sess.Fields.Question)
	}
	if !s.hintUsed || s.hintsUsed != 1 {
		t.Error("expected hint usage to be counted")
	}

	if len(eventRepo.hintSessions) != 1 {
		t.Fatalf("expected 1 hint session event, got %d", len(eventRepo.hintSessions))
	}
	ev := eventRepo.hintSessions[0]
	if ev.Outcome != "ready" || ev.TriggerReason != trigger.ReasonKeyboard {
		t.Errorf("event = %+v", ev)
	}
	if !ev.HadImage || !ev.HadNarration {
		t.Errorf("expected image and narration flags set, got %+v", ev)
	}
}

func TestHintFlow_CaptureFailureProceedsWithoutImage(t *testing.T) {
	s, _, provider := testPracticeScreen()
	s.capSvc = &mockCapture{err: errors.New("no framebuffer")}
	provider.AddStream(llm.MockStream{Chunks: []string{fullResponse}})

	runHintFlow(s)

	sess := s.orch.Session()
	if sess == nil || sess.State != hint.StateReady {
		t.Fatalf("expected ready session despite capture failure, got %+v", sess)
	}
	if len(provider.StreamCalls) != 1 {
		t.Fatalf("expected 1 stream call, got %d", len(provider.StreamCalls))
	}
	if provider.StreamCalls[0].Image != nil {
		t.Error("expected request without an image attachment")
	}
}

func TestHintFlow_NoHintTagFails(t *testing.T) {
	s, eventRepo, provider := testPracticeScreen()
	provider.AddStream(llm.MockStream{Chunks: []string{
		"<question>Differentiate x cubed</question>",
	}})

	runHintFlow(s)

	sess := s.orch.Session()
	if sess == nil || sess.State != hint.StateFailed {
		t.Fatalf("expected failed session, got %+v", sess)
	}
	if len(eventRepo.hintSessions) != 1 || eventRepo.hintSessions[0].Outcome != "failed" {
		t.Errorf("expected a failed event, got %+v", eventRepo.hintSessions)
	}
}

func TestHintFlow_StreamErrorFailsSession(t *testing.T) {
	s, _, provider := testPracticeScreen()
	provider.AddStream(llm.MockStream{
		Chunks: []string{"<hint>partial"},
		Err:    errors.New("connection reset"),
	})

	runHintFlow(s)

	sess := s.orch.Session()
	if sess == nil || sess.State != hint.StateFailed {
		t.Fatalf("expected failed session, got %+v", sess)
	}
	if sess.Err == "" {
		t.Error("expected an error message on the session")
	}
}

func TestHintFlow_DismissAllowsRetrigger(t *testing.T) {
	s, _, provider := testPracticeScreen()
	provider.AddStream(llm.MockStream{Chunks: []string{fullResponse}})

	runHintFlow(s)
	s.Update(keyPress('x'))

	if s.sessionVisible() {
		t.Error("expected session to be dismissed")
	}

	provider.AddStream(llm.MockStream{Chunks: []string{fullResponse}})
	runHintFlow(s)
	sess := s.orch.Session()
	if sess == nil || sess.State != hint.StateReady {
		t.Fatalf("expected a fresh session after dismiss, got %+v", sess)
	}
	if sess.ID != 2 {
		t.Errorf("session id = %d, want 2", sess.ID)
	}
}

func TestHintFlow_SecondTriggerIgnoredWhileOpen(t *testing.T) {
	s, _, provider := testPracticeScreen()
	provider.AddStream(llm.MockStream{Chunks: []string{fullResponse}})

	runHintFlow(s)
	if cmd := s.raiseIntent(trigger.ReasonHover); cmd != nil {
		t.Error("expected intent to be discarded while a session is open")
	}
	if got := s.orch.Session().Reason; got != trigger.ReasonKeyboard {
		t.Errorf("session reason = %q, want keyboard", got)
	}
}

func TestCountdownTriggersHint(t *testing.T) {
	s, _, _ := testPracticeScreen()

	for i := 0; i < int(problemTime/tickInterval)+1; i++ {
		s.Update(tickMsg(time.Now()))
	}

	sess := s.orch.Session()
	if sess == nil {
		t.Fatal("expected countdown expiry to open a hint session")
	}
	if sess.Reason != trigger.ReasonCountdown {
		t.Errorf("reason = %q, want countdown", sess.Reason)
	}
}

func TestCountdownSuppressedAfterHintProduced(t *testing.T) {
	s, _, provider := testPracticeScreen()
	provider.AddStream(llm.MockStream{Chunks: []string{fullResponse}})

	runHintFlow(s)
	s.Update(keyPress('x'))

	for i := 0; i < int(problemTime/tickInterval)+1; i++ {
		s.Update(tickMsg(time.Now()))
	}
	if s.orch.Active() {
		t.Error("expected no countdown trigger after a hint was produced")
	}
}

func TestHoverDwellTriggersHint(t *testing.T) {
	s, _, _ := testPracticeScreen()

	s.Update(specialKey(tea.KeyTab))
	if s.focus != focusHint {
		t.Fatalf("focus = %v, want hint control", s.focus)
	}

	for i := 0; i < int(trigger.HoverThreshold/tickInterval)+1; i++ {
		s.Update(tickMsg(time.Now()))
	}

	sess := s.orch.Session()
	if sess == nil || sess.Reason != trigger.ReasonHover {
		t.Fatalf("expected hover-triggered session, got %+v", sess)
	}
}

func TestHoverLeaveResetsDwell(t *testing.T) {
	s, _, _ := testPracticeScreen()

	s.Update(specialKey(tea.KeyTab))
	for i := 0; i < 8; i++ {
		s.Update(tickMsg(time.Now()))
	}
	// Move focus away before the threshold.
	s.Update(specialKey(tea.KeyTab))
	for i := 0; i < 8; i++ {
		s.Update(tickMsg(time.Now()))
	}

	if s.orch.Active() {
		t.Error("expected no trigger after leaving the control early")
	}
}

func TestAudioGateRequestsAndPlays(t *testing.T) {
	s, eventRepo, provider := testPracticeScreen()
	provider.AddStream(llm.MockStream{Chunks: []string{fullResponse}})
	runHintFlow(s)

	// Focus the audio control: options -> hint -> audio.
	s.Update(specialKey(tea.KeyTab))
	s.Update(specialKey(tea.KeyTab))
	if s.focus != focusAudio {
		t.Fatalf("focus = %v, want audio control", s.focus)
	}

	var cmd tea.Cmd
	for i := 0; i < int(assets.AudioGateThreshold/tickInterval)+1; i++ {
		_, cmd = s.Update(tickMsg(time.Now()))
	}
	if s.assets.Audio().Status != assets.StatusPending {
		t.Fatalf("audio status = %v, want pending", s.assets.Audio().Status)
	}

	// The gate tick batches the synthesis command with the next tick;
	// deliver the result directly instead of running the batch.
	_ = cmd
	s.Update(audioResultMsg{id: 1, payload: []byte("mp3"), mime: "audio/mpeg"})

	if s.assets.Audio().Status != assets.StatusReady {
		t.Fatalf("audio status = %v, want ready", s.assets.Audio().Status)
	}
	if len(eventRepo.assetEvents) != 1 || eventRepo.assetEvents[0].Kind != "audio" {
		t.Fatalf("expected an audio asset event, got %+v", eventRepo.assetEvents)
	}

	s.Update(keyPress('p'))
	if !s.assets.AudioPlaying() {
		t.Error("expected playback to start")
	}
	s.Update(keyPress('p'))
	if s.assets.AudioPlaying() {
		t.Error("expected playback to pause")
	}
}

func TestAnimationTwoStageReveal(t *testing.T) {
	s, _, provider := testPracticeScreen()
	provider.AddStream(llm.MockStream{Chunks: []string{fullResponse}})
	runHintFlow(s)

	// Focus the animation control: options -> hint -> audio -> anim.
	s.Update(specialKey(tea.KeyTab))
	s.Update(specialKey(tea.KeyTab))
	s.Update(specialKey(tea.KeyTab))
	if s.focus != focusAnim {
		t.Fatalf("focus = %v, want animation control", s.focus)
	}

	ticks := int(assets.AnimGateThreshold/tickInterval) + 1
	for i := 0; i < ticks; i++ {
		s.Update(tickMsg(time.Now()))
	}
	if s.assets.Animation().Status != assets.StatusPending {
		t.Fatalf("animation status = %v, want pending", s.assets.Animation().Status)
	}

	s.Update(animResultMsg{id: 1, payload: []byte("mp4"), mime: "video/mp4"})
	if s.assets.Animation().Status != assets.StatusReady {
		t.Fatalf("animation status = %v, want ready", s.assets.Animation().Status)
	}
	if s.assets.AnimationRevealed() {
		t.Fatal("expected animation to stay hidden until a second dwell")
	}

	// Leave and cycle back around to restart the gate, then dwell
	// again to reveal.
	for i := 0; i < 4; i++ {
		s.Update(specialKey(tea.KeyTab))
	}
	for i := 0; i < ticks; i++ {
		s.Update(tickMsg(time.Now()))
	}
	if !s.assets.AnimationRevealed() {
		t.Error("expected animation revealed after second dwell")
	}
}

func TestAnimationHideKeepsAssetAndRevealsAgain(t *testing.T) {
	s, _, provider := testPracticeScreen()
	provider.AddStream(llm.MockStream{Chunks: []string{fullResponse}})
	runHintFlow(s)

	// Generate and reveal: dwell once to request, land the result, then
	// dwell a second time.
	s.Update(specialKey(tea.KeyTab))
	s.Update(specialKey(tea.KeyTab))
	s.Update(specialKey(tea.KeyTab))
	ticks := int(assets.AnimGateThreshold/tickInterval) + 1
	for i := 0; i < ticks; i++ {
		s.Update(tickMsg(time.Now()))
	}
	s.Update(animResultMsg{id: 1, payload: []byte("mp4"), mime: "video/mp4"})
	for i := 0; i < 4; i++ {
		s.Update(specialKey(tea.KeyTab))
	}
	for i := 0; i < ticks; i++ {
		s.Update(tickMsg(time.Now()))
	}
	if !s.assets.AnimationRevealed() {
		t.Fatal("expected animation revealed after second dwell")
	}

	// Hiding keeps the finished asset.
	s.Update(keyPress('h'))
	if s.assets.AnimationRevealed() {
		t.Fatal("expected animation hidden after h")
	}
	if s.assets.Animation().Status != assets.StatusReady {
		t.Fatalf("animation status = %v, want ready after hide", s.assets.Animation().Status)
	}

	// Another dwell re-reveals without a new generation request.
	for i := 0; i < 4; i++ {
		s.Update(specialKey(tea.KeyTab))
	}
	for i := 0; i < ticks; i++ {
		s.Update(tickMsg(time.Now()))
	}
	if !s.assets.AnimationRevealed() {
		t.Error("expected animation revealed again after hide")
	}
	if s.assets.Animation().Status != assets.StatusReady {
		t.Errorf("animation status = %v, want ready (no regeneration)", s.assets.Animation().Status)
	}
}

func TestConfusionReadingTriggersHint(t *testing.T) {
	s, _, _ := testPracticeScreen()

	_, cmd := s.Update(sentimentResultMsg{reading: sentiment.Reading{
		Label:      "confused",
		Confidence: 0.9,
		Timestamp:  time.Now(),
	}})
	if cmd == nil {
		t.Fatal("expected a capture command from the confusion trigger")
	}

	sess := s.orch.Session()
	if sess == nil || sess.Reason != trigger.ReasonConfusion {
		t.Fatalf("expected confusion-triggered session, got %+v", sess)
	}
	if _, ok := s.window.Latest(); !ok {
		t.Error("expected the reading to be recorded in the window")
	}
}

func TestWeakSentimentIgnored(t *testing.T) {
	s, _, _ := testPracticeScreen()

	s.Update(sentimentResultMsg{reading: sentiment.Reading{
		Label:      "confused",
		Confidence: 0.3,
		Timestamp:  time.Now(),
	}})
	if s.orch.Active() {
		t.Error("expected low-confidence reading to be ignored")
	}
}

func TestAnswerSubmitRecordsEvent(t *testing.T) {
	s, eventRepo, provider := testPracticeScreen()
	provider.AddStream(llm.MockStream{Chunks: []string{fullResponse}})
	runHintFlow(s)

	s.Update(keyPress('1'))

	if !s.submitted || !s.correct {
		t.Fatalf("expected a correct submission, submitted=%v correct=%v", s.submitted, s.correct)
	}
	if len(eventRepo.answers) != 1 {
		t.Fatalf("expected 1 answer event, got %d", len(eventRepo.answers))
	}
	ev := eventRepo.answers[0]
	if !ev.Correct || !ev.HintUsed || ev.LearnerAnswer != "2x" {
		t.Errorf("answer event = %+v", ev)
	}
}

func TestNextProblemResetsHintState(t *testing.T) {
	s, _, provider := testPracticeScreen()
	provider.AddStream(llm.MockStream{Chunks: []string{fullResponse}})
	runHintFlow(s)

	s.Update(keyPress('2'))
	if s.correct {
		t.Fatal("expected a wrong answer")
	}

	// Any key advances; run the problem command to land on the next one.
	_, cmd := s.Update(keyPress(' '))
	pump(s, cmd)

	if s.sessionVisible() {
		t.Error("expected hint session cleared on the next problem")
	}
	if s.assets.Audio().Status != assets.StatusNotRequested {
		t.Error("expected assets reset on the next problem")
	}
	if s.countdown.Remaining() != problemTime {
		t.Errorf("countdown = %v, want full reset", s.countdown.Remaining())
	}
}

func TestTypedQuestionSwitchesContext(t *testing.T) {
	s, _, provider := testPracticeScreen()
	provider.AddStream(llm.MockStream{Chunks: []string{fullResponse}})

	s.Update(keyPress('t'))
	if !s.asking {
		t.Fatal("expected typed-question input to open")
	}
	s.askInput.Model.SetValue("Why does the power rule work?")
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	pump(s, cmd)

	if got := s.orch.Context().Kind; got != hint.KindTypedQuestion {
		t.Errorf("context kind = %v, want typed question", got)
	}
	sess := s.orch.Session()
	if sess == nil || sess.State != hint.StateReady {
		t.Fatalf("expected ready session for the typed question, got %+v", sess)
	}
	if len(provider.StreamCalls) != 1 {
		t.Fatalf("expected 1 stream call, got %d", len(provider.StreamCalls))
	}
	if !strings.Contains(provider.StreamCalls[0].Messages[0].Content, "Why does the power rule work?") {
		t.Error("expected the typed question in the generation prompt")
	}
}

func TestTypedQuestionEscCancels(t *testing.T) {
	s, _, _ := testPracticeScreen()

	s.Update(keyPress('t'))
	s.Update(specialKey(tea.KeyEscape))
	if s.asking {
		t.Error("expected input to close on escape")
	}
	if s.orch.Context().Kind != hint.KindSnapshot {
		t.Error("expected the problem context to be untouched")
	}
}

func TestLateChunkAfterDismissDiscarded(t *testing.T) {
	s, _, provider := testPracticeScreen()
	provider.AddStream(llm.MockStream{Chunks: []string{"<hint>partial"}})

	cmd := s.raiseIntent(trigger.ReasonKeyboard)
	msg := cmd() // capture
	_, cmd = s.Update(msg)
	msg = cmd() // stream opened
	_, cmd = s.Update(msg)
	msg = cmd() // first chunk

	s.Update(keyPress('x'))
	_, next := s.Update(msg)
	if next != nil {
		t.Error("expected stale chunk to stop the pump")
	}
	if got := s.orch.Session().Accumulated; got != "" {
		t.Errorf("accumulated = %q, want empty after dismissal", got)
	}
}
