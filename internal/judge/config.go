package judge

import "git.lost.host/meutraa/rush/internal/timing"

type Config struct {
	OverallDifficulty float64
	ReleaseLenience   float64
	FeverDuration     float64 // ms
	FeverFill         float64 // perfect judgements needed to fill the meter
	AutoFever         bool
}

func DefaultConfig() Config {
	return Config{
		OverallDifficulty: 5,
		ReleaseLenience:   timing.DefaultReleaseLenience,
		FeverDuration:     5000,
		FeverFill:         100,
	}
}
