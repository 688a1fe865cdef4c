package home

import (
	"charm.land/lipgloss/v2"

	"github.com/clulus/clulus/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default purple
	MascotCelebrating                      // Gold, star eyes — strong accuracy
	MascotThinking                         // Orange, question mark — hint-heavy run
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ∫dx │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ ∫dx │
└─╥═╥─┘
  ╚═╝`

const mascotThinking = `┌─────┐
│ ◉ ◉ │ ?
│  ▽  │
│ ∫dx │
└─────┘`

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(variant ...MascotVariant) string {
	v := MascotIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	var art string
	var fg = theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	case MascotThinking:
		art = mascotThinking
		fg = theme.Accent
	default:
		art = mascotIdle
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
