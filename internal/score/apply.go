package score

import (
	"math"

	"git.lost.host/meutraa/rush/internal/game"
	"git.lost.host/meutraa/rush/internal/judge"
	"git.lost.host/meutraa/rush/internal/replay"
)

// Anything still open this long after the last event or frame is judged
// by time alone.
const flushDelay = 1000

// Apply replays frames against a fresh processor and returns it together
// with the time the timeline was driven to. The first frame's auto-fever
// bit overrides cfg.
func Apply(chart *game.Chart, frames []replay.Frame, cfg judge.Config) (*judge.Processor, float64) {
	if len(frames) > 0 {
		cfg.AutoFever = frames[0].AutoFever
	}
	p := judge.NewProcessor(chart, cfg)

	var held uint32
	end := chart.EndTime()
	for _, f := range frames {
		p.Update(f.Time, nil)
		next := f.Flags() &^ (1 << replay.AutoFeverBit)
		for a := game.Action(0); int(a) < game.ActionCount; a++ {
			if held&(1<<a) != 0 && next&(1<<a) == 0 {
				p.Release(f.Time, a)
			}
		}
		for a := game.Action(0); int(a) < game.ActionCount; a++ {
			if held&(1<<a) == 0 && next&(1<<a) != 0 {
				p.Press(f.Time, a)
			}
		}
		held = next
		end = math.Max(end, f.Time)
	}
	end += flushDelay
	p.Update(end, nil)
	return p, end
}

func Summarize(p *judge.Processor, t float64) Summary {
	s := Summary{
		MaxCombo:         p.MaxCombo(),
		Health:           p.Health(),
		Failed:           p.Failed(),
		FeverActivations: len(p.Fever(t).Periods),
	}
	for _, tg := range p.Targets() {
		if tg.Kind != judge.KindContainer {
			s.Total++
		}
	}
	for _, r := range p.Results() {
		k := r.Target.Kind
		if k == judge.KindContainer {
			continue
		}
		s.Judged++
		s.Counts[r.Outcome]++
		s.Score += judge.Numeric(r.Outcome)
		if (k == judge.KindHit || k == judge.KindHeart) && r.Outcome.IsHit() {
			s.TotalError += math.Abs(r.Offset)
		}
	}
	return s
}
