package judge

import (
	"sort"

	"git.lost.host/meutraa/rush/internal/game"
)

// Target is one judgeable thing: an event, or a part of a composite event.
type Target struct {
	Event *game.Event
	Part  int // index of the part, -1 for the event itself
	Kind  Kind
	Time  float64
	Lane  game.Lane
	Laned bool

	index    int
	result   *Result
	parent   *Target
	children []*Target
	hold     *hold
}

func (t *Target) Result() *Result {
	return t.result
}

func (t *Target) Judged() bool {
	return nil != t.result
}

type hold struct {
	sheet  *game.Event
	head   *Target
	body   *Target
	tail   *Target
	broken bool
}

type Result struct {
	Target   *Target
	Outcome  game.Outcome
	Offset   float64 // decision time minus nominal time
	Time     float64
	Fever    float64 // meter progress before this judgement applied
	Collided bool
}

// flatten builds the time ordered view over every event and part. Parents
// sort before their children at equal times.
func flatten(chart *game.Chart) ([]*Target, []*hold, []*Target) {
	targets := []*Target{}
	holds := []*hold{}
	bosses := []*Target{}
	for _, e := range chart.Events {
		switch e.Kind() {
		case game.KindMinion:
			targets = append(targets, &Target{Event: e, Part: -1, Kind: KindHit, Time: e.StartTime(), Lane: e.Lane(), Laned: true})
		case game.KindHeart:
			targets = append(targets, &Target{Event: e, Part: -1, Kind: KindHeart, Time: e.StartTime(), Lane: e.Lane(), Laned: true})
		case game.KindSawblade:
			targets = append(targets, &Target{Event: e, Part: -1, Kind: KindHazard, Time: e.StartTime(), Lane: e.Lane(), Laned: true})
		default:
			parent := &Target{Event: e, Part: -1, Kind: KindContainer, Time: e.StartTime(), Lane: e.Lane(), Laned: e.Kind().Laned()}
			targets = append(targets, parent)
			if e.Kind().IsSheet() {
				parent.hold = &hold{sheet: e}
				holds = append(holds, parent.hold)
			}
			if e.Kind() == game.KindMiniBoss {
				bosses = append(bosses, parent)
			}
			for i := 0; i < e.PartCount(); i++ {
				p := e.Part(i)
				c := &Target{Event: e, Part: i, Time: p.StartTime, Lane: p.Lane, Laned: true, parent: parent, hold: parent.hold}
				switch p.Kind {
				case game.PartDualHit, game.PartDualOrb:
					c.Kind = KindHit
				case game.PartHead:
					c.Kind = KindHit
					parent.hold.head = c
				case game.PartBody:
					c.Kind = KindBody
					parent.hold.body = c
				case game.PartTail:
					c.Kind = KindTail
					parent.hold.tail = c
				case game.PartTick:
					c.Kind = KindTick
					c.Laned = false
				}
				parent.children = append(parent.children, c)
				targets = append(targets, c)
			}
		}
	}
	sort.SliceStable(targets, func(i, j int) bool {
		return targets[i].Time < targets[j].Time
	})
	for i, t := range targets {
		t.index = i
	}
	return targets, holds, bosses
}
