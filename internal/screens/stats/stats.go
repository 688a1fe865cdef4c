// Package stats displays aggregate practice and hint statistics.
package stats

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/clulus/clulus/internal/router"
	"github.com/clulus/clulus/internal/screen"
	"github.com/clulus/clulus/internal/store"
	"github.com/clulus/clulus/internal/ui/layout"
	"github.com/clulus/clulus/internal/ui/theme"
)

type statsLoadedMsg struct {
	Hints   store.HintStats
	Answers store.AnswerStats
	Tokens  map[string][2]int
	Err     error
}

// StatsScreen displays answer accuracy, hint outcomes, and token usage.
type StatsScreen struct {
	eventRepo store.EventRepo
	hints     store.HintStats
	answers   store.AnswerStats
	tokens    map[string][2]int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(eventRepo store.EventRepo) *StatsScreen {
	return &StatsScreen{eventRepo: eventRepo}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		hints, err := s.eventRepo.HintStats(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		answers, err := s.eventRepo.AnswerStats(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		tokens, err := s.eventRepo.LLMTokenTotals(ctx)
		if err != nil {
			return statsLoadedMsg{Hints: hints, Answers: answers}
		}
		return statsLoadedMsg{Hints: hints, Answers: answers, Tokens: tokens}
	}
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.hints = msg.Hints
			s.answers = msg.Answers
			s.tokens = msg.Tokens
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading stats...")
	}
	if s.answers.Total == 0 && s.hints.Total == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing recorded yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")

	header := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	line := lipgloss.NewStyle().Foreground(theme.Text)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	center := func(s string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s))
		b.WriteString("\n")
	}

	center(header.Render("Answers"))
	var accuracy float64
	if s.answers.Total > 0 {
		accuracy = float64(s.answers.Correct) / float64(s.answers.Total) * 100
	}
	center(line.Render(fmt.Sprintf("%d answered  %d correct  %.0f%% accuracy",
		s.answers.Total, s.answers.Correct, accuracy)))
	center(dim.Render(fmt.Sprintf("%d answered with a hint", s.answers.HintUsed)))
	b.WriteString("\n")

	center(header.Render("Hints"))
	center(line.Render(fmt.Sprintf("%d requested  %d delivered  %d failed  %d dismissed",
		s.hints.Total, s.hints.Ready, s.hints.Failed, s.hints.Dismissed)))
	if len(s.hints.ByReason) > 0 {
		reasons := make([]string, 0, len(s.hints.ByReason))
		for reason := range s.hints.ByReason {
			reasons = append(reasons, reason)
		}
		sort.Strings(reasons)
		parts := make([]string, 0, len(reasons))
		for _, reason := range reasons {
			parts = append(parts, fmt.Sprintf("%s %d", reason, s.hints.ByReason[reason]))
		}
		center(dim.Render("by trigger: " + strings.Join(parts, "  ")))
	}
	b.WriteString("\n")

	if len(s.tokens) > 0 {
		center(header.Render("Token usage"))
		providers := make([]string, 0, len(s.tokens))
		for p := range s.tokens {
			providers = append(providers, p)
		}
		sort.Strings(providers)
		for _, p := range providers {
			totals := s.tokens[p]
			center(line.Render(fmt.Sprintf("%s: %d in / %d out", p, totals[0], totals[1])))
		}
	}

	return b.String()
}
