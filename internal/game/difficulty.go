package game

type Difficulty struct {
	Name              string
	OverallDifficulty float64
	SliderMultiplier  float64
}

// DefaultDifficulty is used when a chart does not specify its own values.
var DefaultDifficulty = Difficulty{
	Name:              "Normal",
	OverallDifficulty: 5,
	SliderMultiplier:  1.4,
}
