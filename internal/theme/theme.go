package theme

import "git.lost.host/meutraa/rush/internal/game"

type Theme interface {
	RenderOutcome(o game.Outcome) string
	RenderEvent(e *game.Event) string
	RenderHeader(title string) string
}
