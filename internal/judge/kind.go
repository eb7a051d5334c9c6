package judge

import "git.lost.host/meutraa/rush/internal/game"

// Kind is the scoring and health policy of a judgement target, separate
// from the visual kind of the event it belongs to.
type Kind uint8

const (
	KindHit Kind = iota
	KindHeart
	KindHazard
	KindTail
	KindBody
	KindTick
	KindContainer
)

var kindNames = [...]string{
	KindHit:       "hit",
	KindHeart:     "heart",
	KindHazard:    "hazard",
	KindTail:      "tail",
	KindBody:      "body",
	KindTick:      "tick",
	KindContainer: "container",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

func (k Kind) MaxOutcome() game.Outcome {
	if k == KindBody || k == KindTick {
		return game.OutcomeSmallBonus
	}
	return game.OutcomePerfect
}

// Ignorable kinds never fill the fever meter.
func (k Kind) Ignorable() bool {
	return k == KindContainer || k == KindHazard
}

func (k Kind) AffectsCombo() bool {
	return k == KindHit || k == KindHeart || k == KindTail
}

func (k Kind) HealthDelta(o game.Outcome, collided bool) float64 {
	switch k {
	case KindHit, KindTail:
		switch o {
		case game.OutcomeMiss:
			return -0.05
		case game.OutcomeMeh, game.OutcomeNone:
			return 0
		}
		return 0.01
	case KindHeart:
		if o.IsHit() || collided {
			return 0.25
		}
	case KindHazard:
		if collided {
			return -0.2
		}
	}
	return 0
}

var numericResults = [...]float64{
	game.OutcomeNone:       0,
	game.OutcomeMiss:       0,
	game.OutcomeMeh:        50,
	game.OutcomeGood:       100,
	game.OutcomeGreat:      300,
	game.OutcomePerfect:    350,
	game.OutcomeSmallBonus: 10,
	game.OutcomeLargeBonus: 50,
}

// Numeric is the score value of an outcome.
func Numeric(o game.Outcome) float64 {
	if int(o) < len(numericResults) {
		return numericResults[o]
	}
	return 0
}
