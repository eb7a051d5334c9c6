package convert

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"git.lost.host/meutraa/rush/internal/game"
)

var ErrOutOfOrder = errors.New("source events must have strictly increasing start times")

// Gap thresholds (ms) and the position delta (osu! pixels) of the stream
// heuristic.
const (
	streamGap      = 80
	fastGap        = 105
	tripletGap     = 125
	jumpGap        = 135
	jumpDistance   = 20
	airSampleClap  = "clap"
	airSampleWhist = "whistle"
)

type Converter struct {
	Config Config
}

func NewConverter(cfg Config) *Converter {
	return &Converter{Config: cfg}
}

// Convert runs one full pass over the source events with a fresh state.
func (c *Converter) Convert(events []game.SourceEvent, difficulty game.Difficulty) (*game.Chart, error) {
	s := NewState(c.Config)
	out := []*game.Event{}
	for i := range events {
		evs, err := c.Step(s, &events[i])
		if nil != err {
			return nil, fmt.Errorf("source event %d: %w", i, err)
		}
		out = append(out, evs...)
	}
	return game.NewChart(out, difficulty), nil
}

// Step converts a single source event. Holds are emitted when they open and
// their extent is adjusted in place while they stay active.
func (c *Converter) Step(s *State, ev *game.SourceEvent) ([]*game.Event, error) {
	if s.hasPrevious && ev.StartTime <= s.previousStartTime {
		return nil, fmt.Errorf("%w: %v after %v", ErrOutOfOrder, ev.StartTime, s.previousStartTime)
	}

	out := []*game.Event{}

	// Anything with a duration but no path is a boss.
	if ev.IsDurational() && !ev.HasPath {
		for _, h := range s.holds {
			if h.EndTime() > ev.StartTime {
				h.SetEndTime(ev.StartTime)
			}
		}
		s.closeHolds()
		out = append(out, game.NewMiniBoss(ev.StartTime, ev.Duration, c.Config.BossHitsPerSecond))
		for _, l := range game.Lanes {
			s.lastHit[l] = math.Max(s.lastHit[l], ev.EndTime())
		}
		s.advance(ev, laneChoice{})
		return out, nil
	}

	seed := uint64(int64(ev.StartTime))
	rng := rand.New(rand.NewPCG(seed, seed))
	roll := rng.Float64

	flags := c.Flags(s, ev)
	if flags == None {
		s.advance(ev, s.previousLane)
		return out, nil
	}

	lane := c.resolveLane(s, flags, ev, roll)

	if len(s.holds) > 0 && flags.Wants(ForceEndHold, SuggestEndHold, roll, c.Config.SuggestionProbability) {
		s.closeHolds()
	}

	if flags.Wants(ForceStartHold, SuggestStartHold, roll, c.Config.SuggestionProbability) {
		l := lane.orRandom(rng)
		s.closeHolds()
		out = c.openHolds(s, out, ev, l, roll)
		c.capHolds(s, ev.StartTime)
		s.advance(ev, some(l))
		return out, nil
	}

	c.capHolds(s, ev.StartTime)

	if flags.Has(LowProbability) && roll() < c.Config.SkipProbability {
		s.advance(ev, lane)
		return out, nil
	}

	if flags.Has(AllowDoubleHit) &&
		len(s.holds) == 0 &&
		ev.StartTime-s.lastHazardTime >= c.Config.SameLaneSafety &&
		ev.StartTime-s.lastDoubleHit >= c.Config.MinDoubleHitInterval &&
		roll() < c.Config.DoubleHitProbability {
		if ev.Kiai {
			out = append(out, game.NewDualOrb(ev.StartTime))
		} else {
			out = append(out, game.NewDualHit(ev.StartTime))
		}
		s.lastDoubleHit = ev.StartTime
		for _, l := range game.Lanes {
			s.lastHit[l] = ev.StartTime
		}
		s.advance(ev, laneChoice{})
		return out, nil
	}

	l := lane.orRandom(rng)
	if s.blocked(l) {
		l = l.Opposite()
	}

	kiai := 1.0
	if ev.Kiai {
		kiai = c.Config.KiaiMultiplier
	}
	if flags.Has(AllowHazardAdd) &&
		ev.StartTime-s.lastHazardTime >= c.Config.MinHazardInterval &&
		roll() < c.Config.HazardProbability*kiai {
		hl := l.Opposite()
		if !s.blocked(hl) &&
			ev.StartTime-s.lastHit[hl] >= c.Config.SameLaneSafety &&
			(hl == game.LaneGround || ev.Kiai) {
			out = append(out, game.NewSawblade(ev.StartTime, hl))
			s.lastHazardTime = ev.StartTime
			s.lastHazardLane = hl
		}
	}

	tooClose := s.lastHazardLane == l && ev.StartTime-s.lastHazardTime < c.Config.SameLaneSafety
	if !s.blocked(l) && !tooClose {
		out = append(out, c.hit(s, ev.StartTime, l))
	}
	s.advance(ev, some(l))
	return out, nil
}

// Flags derives the rule set for ev from its timing relative to the
// previous source event.
func (c *Converter) Flags(s *State, ev *game.SourceEvent) Flags {
	gap := math.Inf(1)
	if s.hasPrevious {
		gap = ev.StartTime - s.previousEndTime
	}
	if gap < 0 {
		return None
	}

	distance := math.Inf(1)
	if nil != ev.Position && nil != s.previousPosition {
		distance = ev.Position.Distance(*s.previousPosition)
	}

	sameOrNot := ForceSameLane
	if ev.NewCombo {
		sameOrNot = ForceNotSameLane
	}

	var flags Flags
	switch {
	case gap <= streamGap:
		flags = sameOrNot | AllowHazardAdd
	case gap <= fastGap:
		flags = SuggestNotSameLane | AllowHazardAdd | ForceEndHold | LowProbability
	case gap <= tripletGap:
		flags = SuggestNotSameLane | AllowHazardAdd | ForceEndHold
	case gap <= jumpGap && distance < jumpDistance:
		flags = ForceSameLane | AllowHazardAdd | ForceEndHold
	default:
		flags = sameOrNot | AllowDoubleHit | AllowHazardAdd | ForceEndHold
	}

	if ev.NewCombo {
		flags &^= LowProbability
		flags |= ForceEndHold
	}

	if ev.IsDurational() && ev.HasPath {
		switch {
		case ev.Duration >= c.Config.MinHoldDuration:
			flags |= ForceStartHold
		case ev.Duration >= c.Config.MinHoldDuration/2:
			flags |= SuggestStartHold
		}
	}
	return flags
}

func (c *Converter) resolveLane(s *State, flags Flags, ev *game.SourceEvent, roll func() float64) laneChoice {
	switch flags.LaneRule(roll, c.Config.SuggestionProbability) {
	case RuleSameLane:
		if s.previousLane.ok {
			return s.previousLane
		}
	case RuleOppositeLane:
		if s.previousLane.ok {
			return some(s.previousLane.lane.Opposite())
		}
	}
	if l, ok := c.LaneFor(ev); ok {
		return some(l)
	}
	return laneChoice{}
}

// LaneFor derives a lane from the event itself: its vertical position, or
// failing that its samples.
func (c *Converter) LaneFor(ev *game.SourceEvent) (game.Lane, bool) {
	if nil != ev.Position {
		if ev.Position.Y < c.Config.Midline {
			return game.LaneAir, true
		}
		return game.LaneGround, true
	}
	if len(ev.Samples) == 0 {
		return game.LaneGround, false
	}
	for _, name := range ev.Samples {
		name = strings.ToLower(name)
		if strings.Contains(name, airSampleClap) || strings.Contains(name, airSampleWhist) {
			return game.LaneAir, true
		}
	}
	return game.LaneGround, true
}

func (c *Converter) newSheet(kiai bool, start, end float64, l game.Lane) *game.Event {
	if kiai {
		return game.NewStarSheet(start, end, l)
	}
	return game.NewNoteSheet(start, end, l)
}

func (c *Converter) openHolds(s *State, out []*game.Event, ev *game.SourceEvent, l game.Lane, roll func() float64) []*game.Event {
	end := math.Min(ev.EndTime(), ev.StartTime+c.Config.MaxHoldDuration)

	primary := c.newSheet(ev.Kiai, ev.StartTime, end, l)
	out = append(out, primary)
	s.holds[l] = primary
	s.lastHit[l] = ev.StartTime

	opposite := l.Opposite()
	if ev.HasRepeats() {
		return c.repeatHits(s, out, ev, opposite)
	}
	if roll() < c.Config.MirrorHoldProbability {
		mirror := c.newSheet(ev.Kiai, ev.StartTime, end, opposite)
		out = append(out, mirror)
		s.holds[opposite] = mirror
		s.lastHit[opposite] = ev.StartTime
	}
	return out
}

// repeatHits places one hit per repeat node in lane l, doubling the spacing
// until it clears the minimum rhythm.
func (c *Converter) repeatHits(s *State, out []*game.Event, ev *game.SourceEvent, l game.Lane) []*game.Event {
	count := ev.SpanCount
	spacing := ev.Duration / float64(count)
	for spacing < c.Config.MinRepeatSpacing && count > 1 {
		spacing *= 2
		count /= 2
	}
	for i := 0; i < count; i++ {
		out = append(out, c.hit(s, ev.StartTime+float64(i)*spacing, l))
	}
	return out
}

// capHolds force-closes holds once the timeline reaches their maximum
// length, and drops holds the timeline has safely passed.
func (c *Converter) capHolds(s *State, now float64) {
	for l, h := range s.holds {
		if now-h.StartTime() >= c.Config.MaxHoldDuration {
			h.SetEndTime(math.Min(h.EndTime(), h.StartTime()+c.Config.MaxHoldDuration))
			s.release(l)
			continue
		}
		if now-h.EndTime() >= c.Config.SameLaneSafety {
			s.release(l)
		}
	}
}

// hit creates an instant hit, substituting a heart once the heart is due.
func (c *Converter) hit(s *State, t float64, l game.Lane) *game.Event {
	s.lastHit[l] = math.Max(s.lastHit[l], t)
	if t >= s.nextHeartTime {
		s.nextHeartTime = t + c.Config.HeartInterval
		return game.NewHeart(t, l)
	}
	return game.NewMinion(t, l)
}
