// Package practice is the main screen: a timed calculus problem with the
// hint orchestrator, its derived assets, and the sentiment-driven
// confusion trigger wired into the event loop.
package practice

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/clulus/clulus/internal/anim"
	"github.com/clulus/clulus/internal/assets"
	"github.com/clulus/clulus/internal/capture"
	"github.com/clulus/clulus/internal/hint"
	"github.com/clulus/clulus/internal/hintgen"
	"github.com/clulus/clulus/internal/llm"
	"github.com/clulus/clulus/internal/problems"
	"github.com/clulus/clulus/internal/screen"
	"github.com/clulus/clulus/internal/sentiment"
	"github.com/clulus/clulus/internal/speech"
	"github.com/clulus/clulus/internal/store"
	"github.com/clulus/clulus/internal/trigger"
	"github.com/clulus/clulus/internal/ui/components"
	"github.com/clulus/clulus/internal/ui/layout"
)

const (
	// tickInterval drives the countdown and all dwell gates.
	tickInterval = 250 * time.Millisecond

	// problemTime is the per-problem countdown.
	problemTime = 30 * time.Second

	// confusionConfidence and confusionWindow tune the confusion trigger.
	confusionConfidence = 0.7
	confusionWindow     = 10 * time.Second
)

// focusRegion models where the "pointer" is. Moving focus onto a control
// counts as hover-enter, moving off as hover-leave.
type focusRegion int

const (
	focusOptions focusRegion = iota
	focusHint
	focusAudio
	focusAnim
)

// PracticeScreen implements screen.Screen for the practice loop.
type PracticeScreen struct {
	eventRepo  store.EventRepo
	generator  *problems.Generator
	hintSvc    *hintgen.Service
	capSvc     capture.Service
	speechSvc  speech.Synthesizer
	animSvc    anim.Generator
	classifier sentiment.Classifier

	orch      *hint.Orchestrator
	assets    *assets.Service
	countdown *trigger.Countdown
	hover     *trigger.Hover
	confusion *trigger.Confusion
	window    *sentiment.Window

	runID   string
	rng     *rand.Rand
	problem *problems.Problem
	asked   []string
	loading bool

	focus      focusRegion
	mcSelected int
	submitted  bool
	correct    bool
	chosen     string

	asking   bool
	askInput components.TextInput

	answered     int
	correctCount int
	hintsUsed    int
	hintUsed     bool

	problemStart time.Time
	hintStart    time.Time
	persistedID  uint64

	stream   llm.Stream
	streamID uint64

	errMsg string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// Deps bundles the collaborators the screen needs. Optional fields may
// be nil: a nil generator serves bank problems only, a nil classifier
// disables the confusion trigger, nil speech/anim backends surface the
// corresponding assets as immediately failed.
type Deps struct {
	EventRepo  store.EventRepo
	Generator  *problems.Generator
	HintSvc    *hintgen.Service
	Capture    capture.Service
	Speech     speech.Synthesizer
	Anim       anim.Generator
	Classifier sentiment.Classifier
}

// New creates a PracticeScreen with injected dependencies.
func New(deps Deps) *PracticeScreen {
	capSvc := deps.Capture
	if capSvc == nil {
		capSvc = capture.Nop{}
	}
	return &PracticeScreen{
		eventRepo:  deps.EventRepo,
		generator:  deps.Generator,
		hintSvc:    deps.HintSvc,
		capSvc:     capSvc,
		speechSvc:  deps.Speech,
		animSvc:    deps.Anim,
		classifier: deps.Classifier,
		orch:       hint.NewOrchestrator(),
		assets:     assets.NewService(),
		countdown:  trigger.NewCountdown(problemTime),
		hover:      trigger.NewHover(),
		confusion:  trigger.NewConfusion(confusionConfidence, confusionWindow),
		window:     sentiment.NewWindow(sentiment.WindowSize),
		runID:      uuid.New().String(),
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{s.nextProblemCmd(), tickCmd()}
	if s.classifier != nil {
		cmds = append(cmds, sentimentTickCmd())
	}
	return tea.Batch(cmds...)
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

// ConsumesEsc reports whether Esc is currently needed by the screen
// itself rather than for navigating back.
func (s *PracticeScreen) ConsumesEsc() bool {
	return s.asking
}

// SessionCounters reports problems answered and hints used so far.
func (s *PracticeScreen) SessionCounters() (int, int) {
	return s.answered, s.hintsUsed
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.submitted {
		return []layout.KeyHint{
			{Key: "any key", Description: "Next problem"},
		}
	}
	if s.asking {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Ask"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "Ctrl+H", Description: "Hint"},
		{Key: "T", Description: "Ask a question"},
		{Key: "Tab", Description: "Focus"},
	}
	if s.orch.Active() || s.sessionVisible() {
		hints = append(hints, layout.KeyHint{Key: "X", Description: "Dismiss hint"})
	}
	return hints
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case problemReadyMsg:
		return s.handleProblemReady(msg)

	case tickMsg:
		return s.handleTick()

	case captureDoneMsg:
		return s.handleCaptureDone(msg)

	case streamOpenedMsg:
		return s.handleStreamOpened(msg)

	case streamFailedMsg:
		return s.handleStreamFailed(msg)

	case hintChunkMsg:
		return s.handleHintChunk(msg)

	case hintStreamEndMsg:
		return s.handleHintStreamEnd(msg)

	case audioResultMsg:
		return s.handleAudioResult(msg)

	case animResultMsg:
		return s.handleAnimResult(msg)

	case sentimentTickMsg:
		if s.classifier == nil {
			return s, nil
		}
		return s, tea.Batch(s.classifyCmd(), sentimentTickCmd())

	case sentimentResultMsg:
		return s.handleSentimentResult(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// sessionVisible reports whether a hint session is on screen, including
// finished ones.
func (s *PracticeScreen) sessionVisible() bool {
	sess := s.orch.Session()
	return sess != nil && sess.State != hint.StateClosed
}

func (s *PracticeScreen) handleProblemReady(msg problemReadyMsg) (screen.Screen, tea.Cmd) {
	s.loading = false
	if msg.Err != nil {
		// Generation failed; the curated bank always works.
		msg.Problem = problems.Random(s.rng)
	}
	s.problem = msg.Problem
	s.asked = append(s.asked, msg.Problem.Text)
	s.mcSelected = 0
	s.submitted = false
	s.chosen = ""
	s.hintUsed = false
	s.focus = focusOptions
	s.problemStart = time.Now()

	// A new problem invalidates the old context wholesale.
	s.orch.SetContext(hint.ProblemContext{
		Kind: hint.KindSnapshot,
		Text: problemContextText(msg.Problem),
	})
	s.assets.Reset()
	s.countdown.Reset(problemTime)
	s.hover.Reset()
	s.closeStream()
	return s, nil
}

func (s *PracticeScreen) handleTick() (screen.Screen, tea.Cmd) {
	var cmds []tea.Cmd

	if !s.submitted && !s.loading {
		if s.countdown.Tick(tickInterval) {
			if cmd := s.raiseIntent(trigger.ReasonCountdown); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}

	if s.hover.Tick(tickInterval) {
		if cmd := s.raiseIntent(trigger.ReasonHover); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	// Derived-asset gates only matter for a Ready session.
	if sess := s.orch.Session(); sess != nil && sess.State == hint.StateReady {
		if id, ok := s.assets.AudioTick(tickInterval, sess.Fields.Narration); ok {
			cmds = append(cmds, s.audioCmd(id, sess.Fields.Narration))
		}
		action, id := s.assets.AnimTick(tickInterval, sess.Fields.Question)
		if action == assets.ActionGenerate {
			cmds = append(cmds, s.animCmd(id, sess.Fields.Question))
		}
	} else {
		s.assets.AudioTick(tickInterval, "")
		s.assets.AnimTick(tickInterval, "")
	}

	cmds = append(cmds, tickCmd())
	return s, tea.Batch(cmds...)
}

// raiseIntent forwards a trigger intent to the orchestrator. A nil
// command means the intent was discarded (session already open).
func (s *PracticeScreen) raiseIntent(reason string) tea.Cmd {
	id, ok := s.orch.Trigger(reason)
	if !ok {
		return nil
	}
	s.hintStart = time.Now()
	return s.captureCmd(id, s.orch.Context().Text)
}

func (s *PracticeScreen) handleCaptureDone(msg captureDoneMsg) (screen.Screen, tea.Cmd) {
	// Capture failure is non-fatal: proceed without an image.
	image, mime := msg.image, msg.mime
	if msg.err != nil {
		image, mime = nil, ""
	}
	if !s.orch.ApplyCapture(msg.id, image, mime) {
		return s, nil
	}

	sess := s.orch.Session()
	in := hintgen.Input{
		Image:      sess.Image,
		ImageMIME:  sess.ImageMIME,
		Text:       s.orch.Context().Text,
		Difficulty: s.hintDifficulty(),
	}
	return s, s.openStreamCmd(msg.id, in)
}

func (s *PracticeScreen) hintDifficulty() hintgen.Difficulty {
	if s.orch.Context().Kind == hint.KindTypedQuestion || s.problem == nil {
		return hintgen.DifficultyMedium
	}
	return hintgen.Difficulty(s.problem.Difficulty)
}

func (s *PracticeScreen) handleStreamOpened(msg streamOpenedMsg) (screen.Screen, tea.Cmd) {
	sess := s.orch.Session()
	if sess == nil || sess.ID != msg.id || sess.State.Terminal() {
		// Superseded while the request was in flight.
		msg.stream.Close()
		return s, nil
	}
	s.stream = msg.stream
	s.streamID = msg.id
	return s, readChunkCmd(msg.id, msg.stream)
}

func (s *PracticeScreen) handleStreamFailed(msg streamFailedMsg) (screen.Screen, tea.Cmd) {
	if !s.orch.ApplyError(msg.id, humanizeHintError(msg.err)) {
		return s, nil
	}
	s.persistHintSession()
	return s, nil
}

func (s *PracticeScreen) handleHintChunk(msg hintChunkMsg) (screen.Screen, tea.Cmd) {
	if !s.orch.ApplyChunk(msg.id, msg.chunk) {
		// Stale chunk: stop pumping and release the stream.
		if s.streamID == msg.id {
			s.closeStream()
		}
		return s, nil
	}
	return s, readChunkCmd(msg.id, s.stream)
}

func (s *PracticeScreen) handleHintStreamEnd(msg hintStreamEndMsg) (screen.Screen, tea.Cmd) {
	if s.streamID == msg.id {
		s.closeStream()
	}

	var applied bool
	if msg.err != nil {
		applied = s.orch.ApplyError(msg.id, humanizeHintError(msg.err))
	} else {
		applied = s.orch.ApplyStreamEnd(msg.id)
	}
	if !applied {
		return s, nil
	}

	if sess := s.orch.Session(); sess != nil && sess.State == hint.StateReady {
		// A produced hint is not re-offered at the buzzer.
		s.countdown.MarkProduced()
		s.hintUsed = true
		s.hintsUsed++
	}
	s.persistHintSession()
	return s, nil
}

func (s *PracticeScreen) handleAudioResult(msg audioResultMsg) (screen.Screen, tea.Cmd) {
	errMsg := ""
	if msg.err != nil {
		errMsg = msg.err.Error()
	}
	if !s.assets.ApplyAudio(msg.id, msg.payload, msg.mime, errMsg) {
		return s, nil
	}
	s.persistAsset("audio", s.assets.Audio())
	return s, nil
}

func (s *PracticeScreen) handleAnimResult(msg animResultMsg) (screen.Screen, tea.Cmd) {
	errMsg := ""
	if msg.err != nil {
		errMsg = msg.err.Error()
	}
	if !s.assets.ApplyAnimation(msg.id, msg.payload, msg.mime, errMsg) {
		return s, nil
	}
	s.persistAsset("video", s.assets.Animation())
	return s, nil
}

func (s *PracticeScreen) handleSentimentResult(msg sentimentResultMsg) (screen.Screen, tea.Cmd) {
	if msg.err != nil {
		// A dead classifier silently disables the trigger.
		return s, nil
	}
	s.window.Add(msg.reading)
	if s.confusion.Observe(msg.reading.Label, msg.reading.Confidence, msg.reading.Timestamp) {
		if cmd := s.raiseIntent(trigger.ReasonConfusion); cmd != nil {
			return s, cmd
		}
	}
	return s, nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		s.errMsg = ""
		return s, nil
	}
	if s.loading || s.problem == nil {
		return s, nil
	}

	if s.asking {
		return s.handleAskKey(msg)
	}

	// Feedback overlay: any key advances.
	if s.submitted {
		s.loading = true
		return s, s.nextProblemCmd()
	}

	switch key {
	case "ctrl+h":
		if cmd := s.raiseIntent(trigger.ReasonKeyboard); cmd != nil {
			return s, cmd
		}
		return s, nil

	case "t":
		s.asking = true
		s.askInput = components.NewTextInput("Type your question...", false, 200)
		return s, s.askInput.Init()

	case "x":
		return s.dismissHint()

	case "tab":
		s.cycleFocus(1)
		return s, nil
	case "shift+tab":
		s.cycleFocus(-1)
		return s, nil

	case "p":
		s.assets.ToggleAudio()
		return s, nil

	case "h":
		if s.assets.AnimationRevealed() {
			s.assets.AnimHide()
		}
		return s, nil

	case "r":
		return s.retryAssets()

	case "enter":
		if s.focus == focusOptions {
			return s.submitAnswer(s.problem.Options[s.mcSelected])
		}
		return s, nil

	case "up", "k":
		if s.focus == focusOptions && s.mcSelected > 0 {
			s.mcSelected--
		}
		return s, nil
	case "down", "j":
		if s.focus == focusOptions && s.mcSelected < len(s.problem.Options)-1 {
			s.mcSelected++
		}
		return s, nil

	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(s.problem.Options) {
			s.mcSelected = idx
			return s.submitAnswer(s.problem.Options[idx])
		}
		return s, nil
	}

	return s, nil
}

// handleAskKey routes keys while the typed-question input is open.
// Submitting replaces the problem context, so a hint for the typed
// question supersedes anything in flight.
func (s *PracticeScreen) handleAskKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.asking = false
		return s, nil

	case "enter":
		text := strings.TrimSpace(s.askInput.Value())
		s.asking = false
		if text == "" {
			return s, nil
		}
		s.orch.SetContext(hint.ProblemContext{
			Kind: hint.KindTypedQuestion,
			Text: text,
		})
		s.assets.Reset()
		s.hover.Reset()
		s.closeStream()
		return s, s.raiseIntent(trigger.ReasonKeyboard)
	}

	var cmd tea.Cmd
	s.askInput, cmd = s.askInput.Update(msg)
	return s, cmd
}

// cycleFocus moves the focus between regions, driving hover enter/leave
// on the hint control and the asset gates.
func (s *PracticeScreen) cycleFocus(dir int) {
	regions := []focusRegion{focusOptions, focusHint}
	if sess := s.orch.Session(); sess != nil && sess.State == hint.StateReady {
		if sess.Fields.Narration != "" {
			regions = append(regions, focusAudio)
		}
		if sess.Fields.Question != "" {
			regions = append(regions, focusAnim)
		}
	}

	cur := 0
	for i, r := range regions {
		if r == s.focus {
			cur = i
			break
		}
	}
	next := regions[(cur+dir+len(regions))%len(regions)]
	if next == s.focus {
		return
	}

	s.leaveFocus(s.focus)
	s.focus = next
	s.enterFocus(next)
}

func (s *PracticeScreen) enterFocus(r focusRegion) {
	switch r {
	case focusHint:
		// Hover only arms while no session is open.
		if !s.orch.Active() && !s.sessionVisible() {
			s.hover.Enter()
		}
	case focusAudio:
		s.assets.AudioHoverEnter()
	case focusAnim:
		s.assets.AnimHoverEnter()
	}
}

func (s *PracticeScreen) leaveFocus(r focusRegion) {
	switch r {
	case focusHint:
		s.hover.Leave()
	case focusAudio:
		s.assets.AudioHoverLeave()
	case focusAnim:
		s.assets.AnimHoverLeave()
	}
}

func (s *PracticeScreen) dismissHint() (screen.Screen, tea.Cmd) {
	sess := s.orch.Session()
	if sess == nil || sess.State == hint.StateClosed {
		return s, nil
	}
	// In-flight sessions record their dismissal; finished ones were
	// already persisted at their terminal state.
	if !sess.State.Terminal() && s.eventRepo != nil && s.persistedID != sess.ID {
		s.persistedID = sess.ID
		_ = s.eventRepo.AppendHintSession(context.Background(), store.HintSessionEventData{
			RunID:         s.runID,
			SessionID:     int64(sess.ID),
			TriggerReason: sess.Reason,
			Outcome:       hint.StateClosed.String(),
			DurationMs:    time.Since(s.hintStart).Milliseconds(),
		})
	}
	s.orch.Dismiss()
	s.assets.Reset()
	s.hover.Reset()
	s.closeStream()
	return s, nil
}

func (s *PracticeScreen) retryAssets() (screen.Screen, tea.Cmd) {
	sess := s.orch.Session()
	if sess == nil || sess.State != hint.StateReady {
		return s, nil
	}
	var cmds []tea.Cmd
	if id, ok := s.assets.RetryAudio(sess.Fields.Narration); ok {
		cmds = append(cmds, s.audioCmd(id, sess.Fields.Narration))
	}
	if id, ok := s.assets.RetryAnimation(sess.Fields.Question); ok {
		cmds = append(cmds, s.animCmd(id, sess.Fields.Question))
	}
	if len(cmds) == 0 {
		return s, nil
	}
	return s, tea.Batch(cmds...)
}

func (s *PracticeScreen) submitAnswer(answer string) (screen.Screen, tea.Cmd) {
	s.submitted = true
	s.chosen = answer
	s.correct = problems.CheckAnswer(answer, s.problem)
	s.answered++
	if s.correct {
		s.correctCount++
	}

	if s.eventRepo != nil {
		_ = s.eventRepo.AppendAnswer(context.Background(), store.AnswerEventData{
			RunID:         s.runID,
			QuestionText:  s.problem.Text,
			CorrectAnswer: s.problem.Answer,
			LearnerAnswer: answer,
			Correct:       s.correct,
			Difficulty:    string(s.problem.Difficulty),
			TimeMs:        int(time.Since(s.problemStart).Milliseconds()),
			HintUsed:      s.hintUsed,
		})
	}
	return s, nil
}

// persistHintSession records a session that just reached Ready or Failed.
func (s *PracticeScreen) persistHintSession() {
	sess := s.orch.Session()
	if sess == nil || !sess.State.Terminal() || s.eventRepo == nil {
		return
	}
	if s.persistedID == sess.ID {
		return
	}
	s.persistedID = sess.ID
	_ = s.eventRepo.AppendHintSession(context.Background(), store.HintSessionEventData{
		RunID:         s.runID,
		SessionID:     int64(sess.ID),
		TriggerReason: sess.Reason,
		Outcome:       sess.State.String(),
		HintText:      sess.Fields.Hint,
		QuestionText:  sess.Fields.Question,
		HadNarration:  sess.Fields.Narration != "",
		HadImage:      len(sess.Image) > 0,
		ErrorMessage:  sess.Err,
		DurationMs:    time.Since(s.hintStart).Milliseconds(),
	})
}

func (s *PracticeScreen) persistAsset(kind string, a assets.Asset) {
	if s.eventRepo == nil {
		return
	}
	var sessionID int64
	if sess := s.orch.Session(); sess != nil {
		sessionID = int64(sess.ID)
	}
	_ = s.eventRepo.AppendAsset(context.Background(), store.AssetEventData{
		RunID:        s.runID,
		SessionID:    sessionID,
		Kind:         kind,
		SourceText:   a.SourceText,
		Success:      a.Status == assets.StatusReady,
		SizeBytes:    len(a.Payload),
		MimeType:     a.MIME,
		ErrorMessage: a.Err,
	})
}

func (s *PracticeScreen) closeStream() {
	if s.stream != nil {
		s.stream.Close()
		s.stream = nil
		s.streamID = 0
	}
}

// nextProblemCmd produces the next problem: generated when a generator
// is wired, otherwise straight from the bank.
func (s *PracticeScreen) nextProblemCmd() tea.Cmd {
	s.loading = true
	if s.generator == nil {
		p := problems.Random(s.rng)
		return func() tea.Msg { return problemReadyMsg{Problem: p} }
	}

	asked := append([]string(nil), s.asked...)
	gen := s.generator
	return func() tea.Msg {
		p, err := gen.Generate(context.Background(), problems.GenerateInput{
			Difficulty:     problems.DifficultyEasy,
			PriorQuestions: asked,
		})
		return problemReadyMsg{Problem: p, Err: err}
	}
}

func (s *PracticeScreen) captureCmd(id uint64, text string) tea.Cmd {
	capSvc := s.capSvc
	return func() tea.Msg {
		image, mime, err := capSvc.Capture(context.Background(), text)
		return captureDoneMsg{id: id, image: image, mime: mime, err: err}
	}
}

func (s *PracticeScreen) openStreamCmd(id uint64, in hintgen.Input) tea.Cmd {
	svc := s.hintSvc
	return func() tea.Msg {
		if svc == nil {
			return streamFailedMsg{id: id, err: errors.New("hint generation is not configured")}
		}
		stream, err := svc.Start(context.Background(), in)
		if err != nil {
			return streamFailedMsg{id: id, err: err}
		}
		return streamOpenedMsg{id: id, stream: stream}
	}
}

func readChunkCmd(id uint64, stream llm.Stream) tea.Cmd {
	return func() tea.Msg {
		chunk, err := stream.Recv()
		if err == io.EOF {
			return hintStreamEndMsg{id: id}
		}
		if err != nil {
			return hintStreamEndMsg{id: id, err: err}
		}
		return hintChunkMsg{id: id, chunk: chunk}
	}
}

func (s *PracticeScreen) audioCmd(id uint64, narration string) tea.Cmd {
	svc := s.speechSvc
	return func() tea.Msg {
		if svc == nil {
			return audioResultMsg{id: id, err: errors.New("speech synthesis is not configured")}
		}
		payload, mime, err := svc.Synthesize(context.Background(), narration)
		return audioResultMsg{id: id, payload: payload, mime: mime, err: err}
	}
}

func (s *PracticeScreen) animCmd(id uint64, question string) tea.Cmd {
	svc := s.animSvc
	return func() tea.Msg {
		if svc == nil {
			return animResultMsg{id: id, err: errors.New("video generation is not configured")}
		}
		payload, mime, err := svc.Generate(context.Background(), question)
		return animResultMsg{id: id, payload: payload, mime: mime, err: err}
	}
}

func (s *PracticeScreen) classifyCmd() tea.Cmd {
	classifier := s.classifier
	return func() tea.Msg {
		reading, err := classifier.Classify(context.Background())
		return sentimentResultMsg{reading: reading, err: err}
	}
}

// humanizeHintError turns provider errors into learner-facing text.
func humanizeHintError(err error) string {
	var missing *llm.ErrMissingCredential
	if errors.As(err, &missing) {
		return "no API key configured for " + missing.Provider
	}
	var rejected *llm.ErrBackendRejection
	if errors.As(err, &rejected) {
		return "the backend rejected the request: " + rejected.Reason
	}
	return "hint generation failed: " + err.Error()
}

// problemContextText is what the capture service rasterizes and the
// generation prompt carries: the question plus its options.
func problemContextText(p *problems.Problem) string {
	var b strings.Builder
	b.WriteString(p.Text)
	b.WriteString("\n")
	for i, opt := range p.Options {
		b.WriteString("\n")
		b.WriteString(string(rune('A'+i)) + ") " + opt)
	}
	return b.String()
}

// tickCmd returns the dwell/countdown tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// sentimentTickCmd schedules the next classifier poll.
func sentimentTickCmd() tea.Cmd {
	return tea.Tick(sentiment.SampleInterval, func(t time.Time) tea.Msg {
		return sentimentTickMsg(t)
	})
}
