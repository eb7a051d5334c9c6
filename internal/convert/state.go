package convert

import (
	"math"
	"math/rand/v2"

	"git.lost.host/meutraa/rush/internal/game"
)

type laneChoice struct {
	lane game.Lane
	ok   bool
}

func some(l game.Lane) laneChoice {
	return laneChoice{lane: l, ok: true}
}

func (c laneChoice) orRandom(rng *rand.Rand) game.Lane {
	if c.ok {
		return c.lane
	}
	return game.Lanes[rng.IntN(len(game.Lanes))]
}

// State is everything the converter carries from one source event to the
// next. It is owned by a single conversion pass; Reset it before reuse.
type State struct {
	hasPrevious       bool
	previousLane      laneChoice
	previousStartTime float64
	previousEndTime   float64
	previousPosition  *game.Vec2

	holds map[game.Lane]*game.Event

	lastHit        [len(game.Lanes)]float64
	lastHazardTime float64
	lastHazardLane game.Lane
	lastDoubleHit  float64
	nextHeartTime  float64
}

func NewState(cfg Config) *State {
	s := &State{}
	s.Reset(cfg)
	return s
}

func (s *State) Reset(cfg Config) {
	*s = State{
		holds:          map[game.Lane]*game.Event{},
		lastHazardTime: math.Inf(-1),
		lastDoubleHit:  math.Inf(-1),
		nextHeartTime:  cfg.HeartInterval,
	}
	for i := range s.lastHit {
		s.lastHit[i] = math.Inf(-1)
	}
}

// ActiveHold returns the unclosed hold in a lane, if any.
func (s *State) ActiveHold(l game.Lane) (*game.Event, bool) {
	h, ok := s.holds[l]
	return h, ok
}

func (s *State) NextHeartTime() float64 {
	return s.nextHeartTime
}

func (s *State) blocked(l game.Lane) bool {
	_, ok := s.holds[l]
	return ok
}

func (s *State) advance(ev *game.SourceEvent, lane laneChoice) {
	s.previousLane = lane
	s.previousStartTime = ev.StartTime
	if !s.hasPrevious || ev.EndTime() > s.previousEndTime {
		s.previousEndTime = ev.EndTime()
	}
	s.previousPosition = ev.Position
	s.hasPrevious = true
}

func (s *State) closeHolds() {
	for l := range s.holds {
		s.release(l)
	}
}

// release drops the hold in l. The lane counts as hit until the hold's end.
func (s *State) release(l game.Lane) {
	if h, ok := s.holds[l]; ok {
		s.lastHit[l] = math.Max(s.lastHit[l], h.EndTime())
		delete(s.holds, l)
	}
}
