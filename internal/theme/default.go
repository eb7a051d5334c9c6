package theme

import (
	"fmt"
	"os"

	"git.lost.host/meutraa/rush/internal/game"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// DefaultTheme styles output with ANSI colours unless Plain is set.
type DefaultTheme struct {
	Plain bool
}

// NewDefaultTheme goes plain when f is not a terminal.
func NewDefaultTheme(f *os.File) *DefaultTheme {
	return &DefaultTheme{Plain: !term.IsTerminal(int(f.Fd()))}
}

var (
	outcomeColors = map[game.Outcome]lipgloss.Color{
		game.OutcomePerfect:    "14",
		game.OutcomeGreat:      "10",
		game.OutcomeGood:       "11",
		game.OutcomeMeh:        "208",
		game.OutcomeMiss:       "9",
		game.OutcomeSmallBonus: "13",
		game.OutcomeLargeBonus: "13",
	}
	laneColors = [...]lipgloss.Color{
		game.LaneAir:    "12",
		game.LaneGround: "3",
	}
	kindSyms = map[game.Kind]string{
		game.KindMinion:    "●",
		game.KindHeart:     "♥",
		game.KindSawblade:  "⨯",
		game.KindDualHit:   "◆",
		game.KindDualOrb:   "◇",
		game.KindNoteSheet: "═",
		game.KindStarSheet: "★",
		game.KindMiniBoss:  "☗",
	}
	hazardColor = lipgloss.Color("9")
)

func (t *DefaultTheme) render(style lipgloss.Style, s string) string {
	if t.Plain {
		return s
	}
	return style.Render(s)
}

func (t *DefaultTheme) RenderOutcome(o game.Outcome) string {
	name := fmt.Sprintf("%11v", o)
	col, ok := outcomeColors[o]
	if !ok {
		return name
	}
	return t.render(lipgloss.NewStyle().Foreground(col).Bold(o == game.OutcomePerfect), name)
}

func (t *DefaultTheme) RenderEvent(e *game.Event) string {
	sym := kindSyms[e.Kind()]
	lane := "both"
	style := lipgloss.NewStyle()
	switch {
	case e.Kind() == game.KindSawblade:
		lane = e.Lane().String()
		style = style.Foreground(hazardColor)
	case e.Kind().Laned():
		lane = e.Lane().String()
		style = style.Foreground(laneColors[e.Lane()])
	}
	line := fmt.Sprintf("%10.0f %s %-10v %-6s", e.StartTime(), sym, e.Kind(), lane)
	if e.Duration() > 0 {
		line += fmt.Sprintf(" %6.0fms", e.Duration())
	}
	if e.Kind() == game.KindMiniBoss {
		line += fmt.Sprintf(" x%d", e.RequiredHits())
	}
	return t.render(style, line)
}

func (t *DefaultTheme) RenderHeader(title string) string {
	return t.render(lipgloss.NewStyle().Bold(true).Underline(true), title)
}
