package convert

type Config struct {
	SuggestionProbability float64
	SkipProbability       float64
	DoubleHitProbability  float64
	HazardProbability     float64
	MirrorHoldProbability float64
	KiaiMultiplier        float64

	MinDoubleHitInterval float64 // ms between double hits
	MinHazardInterval    float64 // ms between hazards
	SameLaneSafety       float64 // ms a hazard keeps from a hit in its lane
	MinHoldDuration      float64 // ms, shorter sources never force a hold
	MaxHoldDuration      float64 // ms
	MinRepeatSpacing     float64 // ms between repeat node hits
	HeartInterval        float64 // ms

	BossHitsPerSecond float64
	Midline           float64 // vertical position separating air from ground
}

func DefaultConfig() Config {
	return Config{
		SuggestionProbability: 0.1,
		SkipProbability:       0.1,
		DoubleHitProbability:  0.2,
		HazardProbability:     0.1,
		MirrorHoldProbability: 0.1,
		KiaiMultiplier:        4,

		MinDoubleHitInterval: 500,
		MinHazardInterval:    500,
		SameLaneSafety:       90,
		MinHoldDuration:      200,
		MaxHoldDuration:      2000,
		MinRepeatSpacing:     100,
		HeartInterval:        30000,

		BossHitsPerSecond: 5,
		Midline:           192,
	}
}
