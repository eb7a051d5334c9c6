package judge

import (
	"math"

	"git.lost.host/meutraa/rush/internal/game"
	"git.lost.host/meutraa/rush/internal/timing"
)

// CollisionFunc decides whether the player touched a target at the time it
// is judged without being hit. pressed is the action bitset.
type CollisionFunc func(t *Target, pressed uint32) bool

// HeldLane collides when any action of the target's lane is held.
func HeldLane(t *Target, pressed uint32) bool {
	return t.Laned && lanePressed(pressed, t.Lane)
}

func bit(a game.Action) uint32 {
	return 1 << a
}

func lanePressed(pressed uint32, l game.Lane) bool {
	for a := game.Action(0); a < game.ActionFever; a++ {
		if al, _ := a.Lane(); al == l && pressed&bit(a) != 0 {
			return true
		}
	}
	return false
}

// entry records the state before one mutation so it can be undone.
type entry struct {
	time      float64
	result    *Result
	hold      *hold
	broken    bool
	activated bool

	health   float64
	progress float64
	combo    int
	maxCombo int
	pressed  uint32
}

// Processor judges one chart along a single timeline. It is not safe for
// concurrent use.
type Processor struct {
	cfg     Config
	windows *timing.Windows
	targets []*Target
	holds   []*hold
	bosses  []*Target
	low     int

	pressed  uint32
	health   float64
	combo    int
	maxCombo int
	fever    *Fever
	log      []entry
}

func NewProcessor(chart *game.Chart, cfg Config) *Processor {
	targets, holds, bosses := flatten(chart)
	return &Processor{
		cfg:     cfg,
		windows: timing.NewWindows(cfg.OverallDifficulty).WithLenience(cfg.ReleaseLenience),
		targets: targets,
		holds:   holds,
		bosses:  bosses,
		health:  1,
		fever:   NewFever(cfg.FeverDuration, cfg.FeverFill),
	}
}

func (p *Processor) Windows() *timing.Windows { return p.windows }
func (p *Processor) Targets() []*Target { return p.targets }
func (p *Processor) Health() float64 { return p.health }
func (p *Processor) Failed() bool { return p.health <= 0 }
func (p *Processor) Combo() int { return p.combo }
func (p *Processor) MaxCombo() int { return p.maxCombo }
func (p *Processor) Pressed() uint32 { return p.pressed }
func (p *Processor) Fever(t float64) FeverState { return p.fever.State(t) }

// Done reports whether every target has a result.
func (p *Processor) Done() bool {
	return p.low == len(p.targets)
}

// Results returns every live judgement in the order it was made.
func (p *Processor) Results() []*Result {
	out := []*Result{}
	for _, e := range p.log {
		if nil != e.result {
			out = append(out, e.result)
		}
	}
	return out
}

func (p *Processor) push(t float64) *entry {
	p.log = append(p.log, entry{
		time:     t,
		health:   p.health,
		progress: p.fever.progress,
		combo:    p.combo,
		maxCombo: p.maxCombo,
		pressed:  p.pressed,
	})
	return &p.log[len(p.log)-1]
}

// Press handles an action going down at t and returns what it decided.
// Presses outside every window are ignored.
func (p *Processor) Press(t float64, a game.Action) []*Result {
	if p.pressed&bit(a) != 0 {
		return nil
	}
	p.push(t)
	p.pressed |= bit(a)

	if a == game.ActionFever {
		p.ActivateFever(t)
		return nil
	}
	l, ok := a.Lane()
	if !ok {
		return nil
	}
	tg := p.pressable(t, l)
	boss := p.activeBoss(t)
	if nil == boss {
		if nil != tg {
			return p.judge(t, tg, p.windows.ResultFor(t-tg.Time), false)
		}
		return nil
	}
	// A running boss takes every press unless it lands a real hit on
	// something inside the boss.
	if nil != tg && tg.Time <= boss.Event.EndTime() && p.windows.ResultFor(t-tg.Time).IsHit() {
		return p.judge(t, tg, p.windows.ResultFor(t-tg.Time), false)
	}
	for _, c := range boss.children {
		if nil == c.result {
			return p.judge(t, c, game.OutcomeSmallBonus, false)
		}
	}
	return nil
}

// Release handles an action going up. A hold only lets go once no action of
// its lane is still down.
func (p *Processor) Release(t float64, a game.Action) []*Result {
	if p.pressed&bit(a) == 0 {
		return nil
	}
	p.push(t)
	p.pressed &^= bit(a)

	l, ok := a.Lane()
	if !ok || lanePressed(p.pressed, l) {
		return nil
	}
	h := p.activeHold(t, l)
	if nil == h {
		return nil
	}
	offset := t - h.tail.Time
	if o := p.windows.ReleaseResultFor(offset); o != game.OutcomeNone {
		return p.judgeTail(t, h, o)
	}
	if offset < 0 && !h.broken {
		e := p.push(t)
		e.hold = h
		e.broken = h.broken
		h.broken = true
	}
	return nil
}

// Update resolves everything that time alone decides at t: late misses,
// hazards, boss ticks left when a boss ends and overdue hold tails.
func (p *Processor) Update(t float64, collide CollisionFunc) []*Result {
	if nil == collide {
		collide = HeldLane
	}
	out := []*Result{}
	for i := p.low; i < len(p.targets); i++ {
		tg := p.targets[i]
		if tg.Time > t {
			break
		}
		if nil != tg.result {
			continue
		}
		switch tg.Kind {
		case KindHit, KindHeart:
			if !p.windows.CanBeHit(t - tg.Time) {
				collided := tg.Kind == KindHeart && collide(tg, p.pressed)
				out = append(out, p.judge(t, tg, game.OutcomeMiss, collided)...)
			}
		case KindHazard:
			collided := collide(tg, p.pressed)
			out = append(out, p.judge(t, tg, timing.HazardOutcome(collided), collided)...)
		case KindTail:
			if nil != tg.hold.head.result && !p.windows.CanBeReleased(t-tg.Time) {
				o := game.OutcomeMiss
				if lanePressed(p.pressed, tg.Lane) {
					o = game.OutcomeMeh
				}
				out = append(out, p.judgeTail(t, tg.hold, o)...)
			}
		case KindTick:
			if t > tg.Event.EndTime() {
				out = append(out, p.judge(t, tg, game.OutcomeMiss, false)...)
			}
		case KindContainer:
			if len(tg.children) == 0 && t > tg.Event.EndTime() {
				out = append(out, p.complete(t, tg)...)
			}
		}
	}
	return out
}

// ActivateFever starts fever at t when the meter is full and idle.
func (p *Processor) ActivateFever(t float64) bool {
	if !p.fever.canActivate(t) {
		return false
	}
	e := p.push(t)
	e.activated = true
	p.fever.activate(t)
	return true
}

// Revert undoes every mutation made after t, newest first, restoring the
// recorded values rather than recomputing them.
func (p *Processor) Revert(t float64) {
	for n := len(p.log); n > 0 && p.log[n-1].time > t; n = len(p.log) {
		e := p.log[n-1]
		p.health = e.health
		p.fever.progress = e.progress
		p.combo = e.combo
		p.maxCombo = e.maxCombo
		p.pressed = e.pressed
		if nil != e.result {
			tg := e.result.Target
			tg.result = nil
			if tg.index < p.low {
				p.low = tg.index
			}
		}
		if nil != e.hold {
			e.hold.broken = e.broken
		}
		if e.activated {
			p.fever.dropLast()
		}
		p.log = p.log[:n-1]
	}
}

func (p *Processor) pressable(t float64, l game.Lane) *Target {
	reach := p.windows.WindowFor(game.OutcomeMiss)
	for i := p.low; i < len(p.targets); i++ {
		tg := p.targets[i]
		if tg.Time-t > reach {
			break
		}
		if nil != tg.result || !tg.Laned || tg.Lane != l {
			continue
		}
		if tg.Kind != KindHit && tg.Kind != KindHeart {
			continue
		}
		if p.windows.ResultFor(t-tg.Time) != game.OutcomeNone {
			return tg
		}
	}
	return nil
}

// activeBoss returns the boss whose extent covers t, judged or not.
func (p *Processor) activeBoss(t float64) *Target {
	for _, b := range p.bosses {
		if t >= b.Time && t <= b.Event.EndTime() {
			return b
		}
	}
	return nil
}

func (p *Processor) activeHold(t float64, l game.Lane) *hold {
	for _, h := range p.holds {
		if h.sheet.Lane() == l && nil != h.head.result && nil == h.tail.result && t >= h.head.Time {
			return h
		}
	}
	return nil
}

func (p *Processor) judgeTail(t float64, h *hold, o game.Outcome) []*Result {
	headHit := h.head.result.Outcome.IsHit()
	if h.sheet.Kind() == game.KindNoteSheet && (h.broken || !headHit) && o > game.OutcomeMeh {
		o = game.OutcomeMeh
	}
	out := p.judge(t, h.tail, o, false)
	if nil != h.body {
		bo := game.OutcomeMiss
		if !h.broken && headHit {
			bo = game.OutcomeSmallBonus
		}
		out = append(out, p.judge(t, h.body, bo, false)...)
	}
	return out
}

func (p *Processor) judge(t float64, tg *Target, o game.Outcome, collided bool) []*Result {
	if nil != tg.result || o == game.OutcomeNone {
		return nil
	}
	e := p.push(t)
	r := &Result{
		Target:   tg,
		Outcome:  o,
		Offset:   t - tg.Time,
		Time:     t,
		Fever:    p.fever.progress,
		Collided: collided,
	}
	e.result = r
	tg.result = r
	p.apply(t, r)
	for p.low < len(p.targets) && nil != p.targets[p.low].result {
		p.low++
	}

	out := []*Result{r}
	if nil != tg.parent {
		out = append(out, p.complete(t, tg.parent)...)
	}
	if p.cfg.AutoFever {
		p.ActivateFever(t)
	}
	return out
}

func (p *Processor) apply(t float64, r *Result) {
	k := r.Target.Kind
	p.health = math.Max(0, math.Min(1, p.health+k.HealthDelta(r.Outcome, r.Collided)))
	switch {
	case k.AffectsCombo() && r.Outcome.IsHit():
		p.combo++
		if p.combo > p.maxCombo {
			p.maxCombo = p.combo
		}
	case k.AffectsCombo(), k == KindHazard && r.Collided:
		p.combo = 0
	}
	if !k.Ignorable() {
		p.fever.add(t, Numeric(r.Outcome), Numeric(k.MaxOutcome()))
	}
}

// complete judges a container once all of its children are judged.
func (p *Processor) complete(t float64, parent *Target) []*Result {
	hits, clean := 0, 0
	for _, c := range parent.children {
		if nil == c.result {
			return nil
		}
		if c.result.Outcome.IsHit() {
			hits++
			if c.result.Outcome != game.OutcomeMeh {
				clean++
			}
		}
	}
	n := len(parent.children)

	o := game.OutcomeMiss
	switch parent.Event.Kind() {
	case game.KindDualHit, game.KindDualOrb:
		o = game.OutcomePerfect
		for _, c := range parent.children {
			if c.result.Outcome < o {
				o = c.result.Outcome
			}
		}
	case game.KindNoteSheet, game.KindStarSheet:
		if clean == n && !parent.hold.broken {
			o = game.OutcomePerfect
		}
	case game.KindMiniBoss:
		switch {
		case hits == n:
			o = game.OutcomePerfect
		case 2*hits >= n:
			o = game.OutcomeGood
		}
	}
	return p.judge(t, parent, o, false)
}
