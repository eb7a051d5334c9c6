package replay

import (
	"math"
	"sort"

	"git.lost.host/meutraa/rush/internal/game"
)

type Config struct {
	ReleaseDelay float64 // ms held past the end of an event
	PunchDelay   float64 // ms a boss punch is held
	AutoFever    bool
}

func DefaultConfig() Config {
	return Config{
		ReleaseDelay: 20,
		PunchDelay:   50,
	}
}

// span is one press and release in a lane. end is the nominal end of the
// event, release is when the key actually goes up.
type span struct {
	press   float64
	end     float64
	release float64
}

type change struct {
	time   float64
	action game.Action
	press  bool
}

// Generate builds the frames of a perfect clear of chart. Hazards are
// avoided by never pressing for them.
func Generate(chart *game.Chart, cfg Config) []Frame {
	lanes := [len(game.Lanes)][]span{}
	tap := func(l game.Lane, start, end float64) {
		lanes[l] = append(lanes[l], span{press: start, end: end, release: end + cfg.ReleaseDelay})
	}

	for _, e := range chart.Events {
		switch e.Kind() {
		case game.KindMinion, game.KindHeart:
			tap(e.Lane(), e.StartTime(), e.StartTime())
		case game.KindNoteSheet, game.KindStarSheet:
			tap(e.Lane(), e.StartTime(), e.EndTime())
		case game.KindDualHit, game.KindDualOrb:
			for i := 0; i < e.PartCount(); i++ {
				tap(e.Part(i).Lane, e.StartTime(), e.StartTime())
			}
		case game.KindMiniBoss:
			step := cfg.PunchDelay + cfg.ReleaseDelay
			if e.RequiredHits() > 0 {
				step = math.Min(e.Duration()/float64(e.RequiredHits()), step)
			}
			if step <= 0 {
				continue
			}
			l := game.LaneGround
			for t := e.StartTime(); t < e.EndTime(); t += step {
				up := t + math.Min(cfg.PunchDelay, step)
				lanes[l] = append(lanes[l], span{press: t, end: up, release: up})
				l = l.Opposite()
			}
		}
	}

	changes := []change{}
	for l := range lanes {
		spans := lanes[l]
		sort.SliceStable(spans, func(i, j int) bool {
			return spans[i].press < spans[j].press
		})
		spans = merge(spans)
		for i := range spans {
			if i+1 < len(spans) {
				pullIn(&spans[i], spans[i+1].press)
			}
			// Alternate fingers with every completed pair.
			a := game.PrimaryAction(game.Lane(l))
			if i%2 == 1 {
				a = game.SecondaryAction(game.Lane(l))
			}
			changes = append(changes,
				change{time: spans[i].press, action: a, press: true},
				change{time: spans[i].release, action: a, press: false},
			)
		}
	}
	return frames(changes, cfg.AutoFever)
}

// merge folds spans that start together into one.
func merge(spans []span) []span {
	out := spans[:0]
	for _, s := range spans {
		if n := len(out); n > 0 && s.press <= out[n-1].press {
			out[n-1].end = math.Max(out[n-1].end, s.end)
			out[n-1].release = math.Max(out[n-1].release, s.release)
			continue
		}
		out = append(out, s)
	}
	return out
}

// pullIn keeps a release from running into the next press in the lane.
func pullIn(s *span, next float64) {
	if next >= s.release {
		return
	}
	from := s.end
	switch {
	case next == s.end:
		// A hold cut short by the next event lets go as it starts.
		s.release = next
		return
	case next < s.end:
		from = s.press
	}
	s.release = from + (next-from)*0.9
}

func frames(changes []change, autoFever bool) []Frame {
	sort.SliceStable(changes, func(i, j int) bool {
		if changes[i].time != changes[j].time {
			return changes[i].time < changes[j].time
		}
		return !changes[i].press && changes[j].press
	})

	out := []Frame{}
	var held uint32
	for i := 0; i < len(changes); {
		t := changes[i].time
		for ; i < len(changes) && changes[i].time == t; i++ {
			if changes[i].press {
				held |= 1 << changes[i].action
			} else {
				held &^= 1 << changes[i].action
			}
		}
		flags := held
		if autoFever {
			flags |= 1 << AutoFeverBit
		}
		if n := len(out); n > 0 && out[n-1].Flags() == flags {
			continue
		}
		out = append(out, NewFrame(t, flags))
	}
	return out
}
