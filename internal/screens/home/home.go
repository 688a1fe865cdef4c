// Package home is the main menu screen.
package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/clulus/clulus/internal/router"
	"github.com/clulus/clulus/internal/screen"
	"github.com/clulus/clulus/internal/screens/placeholder"
	"github.com/clulus/clulus/internal/screens/practice"
	"github.com/clulus/clulus/internal/screens/stats"
	"github.com/clulus/clulus/internal/ui/components"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu          components.Menu
	menuLabels    []string
	answered      int
	correct       int
	hintsReady    int
	mascotVariant MascotVariant
	llmConfigured bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. The practice deps are handed through to
// the practice screen when the learner starts; a nil HintSvc means no
// LLM is configured and practice runs without hints.
func New(deps practice.Deps) *HomeScreen {
	var answered, correct, hintsReady int
	if deps.EventRepo != nil {
		ctx := context.Background()
		if as, err := deps.EventRepo.AnswerStats(ctx); err == nil {
			answered = as.Total
			correct = as.Correct
		}
		if hs, err := deps.EventRepo.HintStats(ctx); err == nil {
			hintsReady = hs.Ready
		}
	}

	mascotVariant := MascotIdle
	if answered > 0 {
		if float64(correct)/float64(answered) >= 0.8 {
			mascotVariant = MascotCelebrating
		} else if hintsReady > answered/2 {
			mascotVariant = MascotThinking
		}
	}

	menuLabels := []string{"PRACTICE", "STATS", "EXIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: practice.New(deps)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			if deps.EventRepo == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Stats")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(deps.EventRepo)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:          components.NewMenu(items),
		menuLabels:    menuLabels,
		answered:      answered,
		correct:       correct,
		hintsReady:    hintsReady,
		mascotVariant: mascotVariant,
		llmConfigured: deps.HintSvc != nil,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant, cw))
	}

	sections = append(sections, renderStatsBar(
		h.answered, h.correct, h.hintsReady, cw, compact))

	if compact {
		sections = append(sections, renderArcadeMenuCompact(
			h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(
			h.menuLabels, h.menu.Selected, cw))
	}

	if !h.llmConfigured {
		sections = append(sections, renderLLMBanner(cw))
	}

	content := strings.Join(sections, "\n\n")

	return renderCabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
