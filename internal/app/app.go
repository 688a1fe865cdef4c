package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/clulus/clulus/internal/anim"
	"github.com/clulus/clulus/internal/capture"
	"github.com/clulus/clulus/internal/hintgen"
	"github.com/clulus/clulus/internal/problems"
	"github.com/clulus/clulus/internal/router"
	"github.com/clulus/clulus/internal/screen"
	"github.com/clulus/clulus/internal/screens/home"
	"github.com/clulus/clulus/internal/screens/practice"
	"github.com/clulus/clulus/internal/sentiment"
	"github.com/clulus/clulus/internal/speech"
	"github.com/clulus/clulus/internal/store"
	"github.com/clulus/clulus/internal/ui/layout"
)

// Options carries the services the TUI runs on. Nil fields degrade
// gracefully: no store means nothing is recorded, no hint service means
// no hints, no classifier means no confusion trigger.
type Options struct {
	EventRepo   store.EventRepo
	Generator   *problems.Generator
	HintService *hintgen.Service
	Capture     capture.Service
	Speech      speech.Synthesizer
	Anim        anim.Generator
	Classifier  sentiment.Classifier
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(practice.Deps{
		EventRepo:  opts.EventRepo,
		Generator:  opts.Generator,
		HintSvc:    opts.HintService,
		Capture:    opts.Capture,
		Speech:     opts.Speech,
		Anim:       opts.Anim,
		Classifier: opts.Classifier,
	})
	return AppModel{
		router: router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 && !m.activeConsumesEsc() {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// activeConsumesEsc reports whether the active screen wants Esc for
// itself instead of popping back.
func (m AppModel) activeConsumesEsc() bool {
	type escConsumer interface{ ConsumesEsc() bool }
	if c, ok := m.router.Active().(escConsumer); ok {
		return c.ConsumesEsc()
	}
	return false
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	answered, hints := 0, 0
	if c, ok := active.(interface{ SessionCounters() (int, int) }); ok {
		answered, hints = c.SessionCounters()
	}
	header := layout.RenderHeader(title, answered, hints, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
		footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
