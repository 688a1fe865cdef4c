package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/clulus/clulus/internal/assets"
	"github.com/clulus/clulus/internal/hint"
	"github.com/clulus/clulus/internal/ui/components"
	"github.com/clulus/clulus/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if s.loading || s.problem == nil {
		return renderLoading(width, height)
	}
	if s.submitted {
		return s.renderFeedback(width, height)
	}
	return s.renderProblemView(width, height)
}

// renderProblemView renders the active problem with the countdown,
// options, and the hint panel below.
func (s *PracticeScreen) renderProblemView(width, height int) string {
	var b strings.Builder

	// Score and timer line.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Q %d  Correct %d  Hints %d", s.answered+1, s.correctCount, s.hintsUsed))

	remaining := s.countdown.Remaining()
	secs := int(remaining.Seconds())
	timerStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if secs <= 10 {
		timerStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}
	infoRight := timerStyle.Render(fmt.Sprintf("0:%02d", secs))
	if mood := s.moodIndicator(); mood != "" {
		infoRight = mood + "  " + infoRight
	}

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n\n")

	// Problem text (centered).
	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(s.problem.Text))
	b.WriteString("\n\n")

	b.WriteString(s.renderOptions(width))
	b.WriteString("\n\n")

	if s.asking {
		askLine := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Ask: " + s.askInput.View())
		b.WriteString(askLine)
		b.WriteString("\n\n")
	}

	b.WriteString(s.renderHintPanel(width))

	return b.String()
}

// renderOptions renders the answer choices.
func (s *PracticeScreen) renderOptions(width int) string {
	var b strings.Builder
	for i, opt := range s.problem.Options {
		prefix := "  "
		if i == s.mcSelected && s.focus == focusOptions {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt)

		if i == s.mcSelected && s.focus == focusOptions {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		b.WriteString("\n")
	}

	selectLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\nSelect (1-4) or use arrows + Enter")
	b.WriteString(selectLine)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

// renderHintPanel renders the hint area: the idle control, the
// in-flight states, or the finished hint with its derived assets.
func (s *PracticeScreen) renderHintPanel(width int) string {
	sess := s.orch.Session()
	if sess == nil || sess.State == hint.StateClosed {
		return s.renderHintControl(width)
	}

	var b strings.Builder
	switch sess.State {
	case hint.StateCapturing, hint.StateRequesting:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Thinking about a hint..."))

	case hint.StateStreaming:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("Hint incoming..."))
		if sess.Fields.Hint != "" {
			b.WriteString("\n\n")
			b.WriteString(s.renderHintText(width, sess.Fields.Hint))
		}

	case hint.StateReady:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render("Hint"))
		b.WriteString("\n\n")
		b.WriteString(s.renderHintText(width, sess.Fields.Hint))
		b.WriteString(s.renderAssetRows(width, sess))

	case hint.StateFailed:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Couldn't get a hint: " + sess.Err))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("[X] dismiss"))
	return b.String()
}

// renderHintControl is the idle hint affordance with the hover gate.
func (s *PracticeScreen) renderHintControl(width int) string {
	label := "[?] Need a hint  (Ctrl+H, or hold focus here)"
	style := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.focus == focusHint {
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	out := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(style.Render(label))

	if p := s.hover.Progress(); p > 0 && p < 1 {
		bar := components.NewProgressBar("", p, false, min(width-20, 30))
		out += "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View())
	}
	return out
}

func (s *PracticeScreen) renderHintText(width int, text string) string {
	style := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.Text)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(text)) + "\n"
}

// renderAssetRows renders the audio and animation lines under a ready
// hint, with their dwell gates and statuses.
func (s *PracticeScreen) renderAssetRows(width int, sess *hint.Session) string {
	var b strings.Builder

	if sess.Fields.Narration != "" {
		b.WriteString("\n")
		b.WriteString(s.renderAssetRow(width, focusAudio, "Audio", s.assets.Audio(), s.assets.AudioGateProgress(), s.audioStatusText()))
	}
	if sess.Fields.Question != "" {
		b.WriteString("\n")
		b.WriteString(s.renderAssetRow(width, focusAnim, "Animation", s.assets.Animation(), s.assets.AnimGateProgress(), s.animStatusText()))
	}
	return b.String()
}

func (s *PracticeScreen) renderAssetRow(width int, region focusRegion, label string, a assets.Asset, gate float64, status string) string {
	style := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.focus == region {
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	line := style.Render(label) + "  " + statusStyle(a.Status).Render(status)
	out := lipgloss.PlaceHorizontal(width, lipgloss.Center, line)

	if a.Status == assets.StatusNotRequested && gate > 0 && gate < 1 {
		bar := components.NewProgressBar("", gate, false, min(width-20, 30))
		out += "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View())
	}
	return out
}

func (s *PracticeScreen) audioStatusText() string {
	a := s.assets.Audio()
	switch a.Status {
	case assets.StatusNotRequested:
		return "hold focus to load"
	case assets.StatusPending:
		return "loading..."
	case assets.StatusReady:
		if s.assets.AudioPlaying() {
			return "playing  [P] pause"
		}
		return "ready  [P] play"
	case assets.StatusFailed:
		return "failed  [R] retry"
	}
	return ""
}

func (s *PracticeScreen) animStatusText() string {
	a := s.assets.Animation()
	switch a.Status {
	case assets.StatusNotRequested:
		return "hold focus to generate"
	case assets.StatusPending:
		return "generating..."
	case assets.StatusReady:
		if s.assets.AnimationRevealed() {
			return fmt.Sprintf("revealed (%s, %d KB)  [H] hide", a.MIME, len(a.Payload)/1024)
		}
		return "ready  hold focus to reveal"
	case assets.StatusFailed:
		return "failed  [R] retry"
	}
	return ""
}

// moodIndicator renders the last few sentiment readings as a compact
// trail, oldest first.
func (s *PracticeScreen) moodIndicator() string {
	recent := s.window.Recent()
	if len(recent) > 3 {
		recent = recent[len(recent)-3:]
	}
	var parts []string
	for _, r := range recent {
		switch r.Label {
		case "confused", "negative":
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.Accent).Render("?"))
		case "positive", "happy":
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.Success).Render("+"))
		default:
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.TextDim).Render("·"))
		}
	}
	return strings.Join(parts, "")
}

func statusStyle(st assets.Status) lipgloss.Style {
	switch st {
	case assets.StatusReady:
		return lipgloss.NewStyle().Foreground(theme.Success)
	case assets.StatusFailed:
		return lipgloss.NewStyle().Foreground(theme.Error)
	case assets.StatusPending:
		return lipgloss.NewStyle().Foreground(theme.Accent)
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim)
}

// renderFeedback renders the answer feedback overlay.
func (s *PracticeScreen) renderFeedback(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	if s.correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Correct answer: %s", s.problem.Answer)))
	}

	b.WriteString("\n\n")

	if s.problem.Explanation != "" {
		expStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text)
		exp := expStyle.Render(s.problem.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key for the next problem..."))

	return b.String()
}

func renderLoading(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Picking a problem...")
}

func renderError(width, height int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
