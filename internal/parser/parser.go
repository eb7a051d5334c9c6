package parser

import "git.lost.host/meutraa/rush/internal/game"

type Parser interface {
	Parse(file string) (*Beatmap, error)
}

// Beatmap is the part of a chart file the converter needs.
type Beatmap struct {
	FormatVersion int
	Title         string
	Artist        string
	AudioFilename string
	Difficulty    game.Difficulty
	TimingPoints  []game.TimingPoint
	Events        []game.SourceEvent

	// Sum identifies the hit objects and difficulty the events came from.
	Sum string
	// Dropped counts hit objects that shared a start time with an earlier one.
	Dropped int
}
