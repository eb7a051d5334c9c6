package score

import (
	"git.lost.host/meutraa/rush/internal/game"
	"git.lost.host/meutraa/rush/internal/replay"
)

type Scorer interface {
	Init() error
	Deinit()

	// Save the replay of this performance
	Save(chart *game.Chart, frames []replay.Frame)

	// Load up previous replays for the chart
	Load(chart *game.Chart) []History

	Score(chart *game.Chart, history *History) Summary
}

type History struct {
	Sum     string
	Created int64 // unix seconds
	Frames  []replay.Frame
}

type Summary struct {
	Counts           [game.OutcomeLargeBonus + 1]int
	Score            float64
	TotalError       float64 // ms, summed over timed hits
	MaxCombo         int
	Health           float64
	Failed           bool
	FeverActivations int
	Judged           int
	Total            int
}

func (s Summary) Count(o game.Outcome) int {
	return s.Counts[o]
}
