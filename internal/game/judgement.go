package game

// Outcome is a discrete judgement result. Order matters: higher values are
// better within the hit tiers.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeMiss
	OutcomeMeh
	OutcomeGood
	OutcomeGreat
	OutcomePerfect
	OutcomeSmallBonus
	OutcomeLargeBonus
)

var outcomeNames = [...]string{
	OutcomeNone:       "None",
	OutcomeMiss:       "Miss",
	OutcomeMeh:        "Meh",
	OutcomeGood:       "Good",
	OutcomeGreat:      "Great",
	OutcomePerfect:    "Perfect",
	OutcomeSmallBonus: "Small Bonus",
	OutcomeLargeBonus: "Large Bonus",
}

var Outcomes = [...]Outcome{
	OutcomePerfect, OutcomeGreat, OutcomeGood, OutcomeMeh, OutcomeMiss, OutcomeSmallBonus, OutcomeLargeBonus,
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "Unknown"
}

func (o Outcome) IsHit() bool {
	return o >= OutcomeMeh
}

func (o Outcome) IsBonus() bool {
	return o == OutcomeSmallBonus || o == OutcomeLargeBonus
}
