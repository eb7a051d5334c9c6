package convert

import "strings"

// Flags are the advisory and forcing rules derived for one source event.
type Flags uint16

const (
	ForceSameLane Flags = 1 << iota
	ForceNotSameLane
	SuggestSameLane
	SuggestNotSameLane
	ForceStartHold
	SuggestStartHold
	ForceEndHold
	SuggestEndHold
	AllowDoubleHit
	AllowHazardAdd
	LowProbability

	None Flags = 0
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{ForceSameLane, "ForceSameLane"},
	{ForceNotSameLane, "ForceNotSameLane"},
	{SuggestSameLane, "SuggestSameLane"},
	{SuggestNotSameLane, "SuggestNotSameLane"},
	{ForceStartHold, "ForceStartHold"},
	{SuggestStartHold, "SuggestStartHold"},
	{ForceEndHold, "ForceEndHold"},
	{SuggestEndHold, "SuggestEndHold"},
	{AllowDoubleHit, "AllowDoubleHit"},
	{AllowHazardAdd, "AllowHazardAdd"},
	{LowProbability, "LowProbability"},
}

func (f Flags) Has(flag Flags) bool {
	return f&flag != 0
}

func (f Flags) String() string {
	if f == None {
		return "None"
	}
	names := []string{}
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, "|")
}

// LaneRule is the outcome of the lane precedence check.
type LaneRule uint8

const (
	RuleUnresolved LaneRule = iota
	RuleSameLane
	RuleOppositeLane
)

// LaneRule applies the precedence forced > suggested. roll is only called
// for a suggestion that would apply, so the draw sequence stays stable.
func (f Flags) LaneRule(roll func() float64, probability float64) LaneRule {
	switch {
	case f.Has(ForceSameLane):
		return RuleSameLane
	case f.Has(ForceNotSameLane):
		return RuleOppositeLane
	case f.Has(SuggestSameLane) && roll() < probability:
		return RuleSameLane
	case f.Has(SuggestNotSameLane) && roll() < probability:
		return RuleOppositeLane
	}
	return RuleUnresolved
}

// Wants reports whether a forced flag is set, or the suggested one is set
// and the roll passes.
func (f Flags) Wants(force, suggest Flags, roll func() float64, probability float64) bool {
	return f.Has(force) || f.Has(suggest) && roll() < probability
}
